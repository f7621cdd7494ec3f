package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/files"
)

var (
	exportToFile string
	exportFormat string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a document as canonical JSON or YAML",
		Long: `Export a document to stdout or a file.

JSON output uses two-space indentation and keeps key order. jsonl writes
one compact object per line. YAML output keeps key order as well. When --file has no extension, .json is added for
JSON output.

Examples:
  # Export to stdout
  jsoneditor export data.json

  # Export to a file
  jsoneditor export data.json --file out/users

  # One object per line, for streaming tools
  jsoneditor export data.json -o jsonl

  # Export as YAML
  jsoneditor export data.json -o yaml --file users.yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(exportFormat)
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")
	cmd.Flags().StringVarP(&exportFormat, "output", "o", "json", "Output format (json, jsonl, yaml)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := newCommandContext()
	root, err := loadDocument(ctx, args[0])
	if err != nil {
		return err
	}

	format := exportFormat

	if exportToFile == "" {
		return cli.OutputResults(cmd.OutOrStdout(), format, codec.EncodeRoot(root))
	}

	path := exportToFile
	if format == string(cli.FormatJSON) {
		if err := cli.ValidateExportName(path); err != nil {
			return err
		}
		path = files.ExportFilename(path)
		if err := files.WriteDocument(path, root); err != nil {
			return err
		}
	} else {
		var buf bytes.Buffer
		if err := cli.OutputResults(&buf, format, codec.EncodeRoot(root)); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		if err := files.WriteFile(path, buf.String()); err != nil {
			return err
		}
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	cli.PrintSuccess("Exported %s to %s (%s, %s)", cli.Pluralize(len(root), "item", "items"), path, format, cli.FormatBytes(size))
	return nil
}
