package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/preview"
)

var (
	previewColor bool
	previewHTML  bool
)

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the live preview of a document",
		Long: `Print a document exactly as the editor's preview pane shows it.

--color highlights keys, strings, numbers, booleans and null for the
terminal. --html emits the highlighted preview as HTML spans.

Examples:
  jsoneditor preview data.json --color
  jsoneditor preview data.json --html > preview.html`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if previewColor && previewHTML {
				return errors.New("choose one of --color or --html")
			}
			return nil
		},
		RunE: runPreview,
	}

	cmd.Flags().BoolVar(&previewColor, "color", false, "Highlight the preview for the terminal")
	cmd.Flags().BoolVar(&previewHTML, "html", false, "Emit highlighted HTML")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := newCommandContext()
	root, err := loadDocument(ctx, args[0])
	if err != nil {
		return err
	}

	text := preview.Render(root)
	switch {
	case previewHTML:
		text = `<pre class="font-mono text-sm">` + preview.HighlightHTML(text) + "</pre>"
	case previewColor && !cli.NoColor():
		text = preview.HighlightANSI(text, preview.DefaultTheme(nil))
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
