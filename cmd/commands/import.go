package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

var (
	importSummary bool
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a JSON document and print its canonical form",
		Long: `Import a JSON file the way the editor does and print the result.

The top-level value must be an array. Objects keep their key order; a key
that repeats within one object keeps its first position and its last value,
and a warning is printed for each one.

Examples:
  # Validate and normalize a document
  jsoneditor import data.json

  # Show one line per root item
  jsoneditor import data.json --summary`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolVar(&importSummary, "summary", false, "Print a table of root items instead of the document")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := newCommandContext()
	root, err := loadDocument(ctx, args[0])
	if err != nil {
		return err
	}

	if importSummary {
		table := cli.NewTableFormatter(cmd.OutOrStdout())
		table.Header("#", "TYPE", "CONTENT")
		for i, item := range root {
			table.Row(strconv.Itoa(i+1), item.Kind.String(), cli.TruncateString(summarize(item), 60))
		}
		table.Flush()
		cli.PrintInfo("%s in %s", cli.Pluralize(len(root), "item", "items"), args[0])
		return nil
	}

	text, err := codec.FormatRoot(root)
	if err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// summarize describes a root item in one line.
func summarize(n *models.Node) string {
	switch n.Kind {
	case models.KindObject:
		keys := make([]string, len(n.Properties))
		for i, p := range n.Properties {
			keys[i] = p.Key
		}
		return strings.Join(keys, ", ")
	case models.KindArray:
		return cli.Pluralize(len(n.Elements), "element", "elements")
	}
	return n.Value.Text()
}
