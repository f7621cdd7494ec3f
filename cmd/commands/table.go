package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/richtext"
)

var (
	tableCopy bool
)

// NewTableCommand creates the table command
func NewTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <file>",
		Short: "Render a document as an HTML table fragment",
		Long: `Render the root items of a document as an HTML table for pasting into a
rich-text editor. Columns come from the keys of the first object; cells
are HTML-escaped. Missing values are left empty.

Examples:
  jsoneditor table users.json > users.html
  jsoneditor table users.json --copy`,
		Args: cobra.ExactArgs(1),
		RunE: runTable,
	}

	cmd.Flags().BoolVar(&tableCopy, "copy", false, "Copy the fragment to the clipboard instead of printing it")

	return cmd
}

func runTable(cmd *cobra.Command, args []string) error {
	ctx := newCommandContext()
	root, err := loadDocument(ctx, args[0])
	if err != nil {
		return err
	}

	var surface richtext.Surface
	var sink richtext.Inserter = &surface
	sink.Insert(richtext.TableFragment(root))

	if tableCopy {
		if err := writeClipboard(surface.HTML()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied a table of %s to clipboard", cli.Pluralize(len(root), "row", "rows"))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), surface.HTML())
	return nil
}
