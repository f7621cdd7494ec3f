package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/preview"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/utils"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <file>",
		Short: "Copy a document's canonical JSON to the clipboard",
		Long: `Copy the canonical JSON of a document to the system clipboard, ready to
be pasted into another tool. The estimated token count is shown so the
payload can be checked against a model's context window.

Examples:
  jsoneditor clipboard data.json
  jsoneditor copy data.json`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx := newCommandContext()
	root, err := loadDocument(ctx, args[0])
	if err != nil {
		return err
	}

	content := preview.Render(root)
	if err := writeClipboard(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	tokens := utils.EstimateTokens(content)
	cli.PrintSuccess("Copied %s to clipboard (%s, ~%s tokens)",
		cli.Pluralize(len(root), "item", "items"),
		cli.FormatBytes(int64(len(content))),
		utils.FormatTokenCount(tokens))

	percentage, status := utils.GetTokenLimitStatus(tokens, 0)
	if status != "good" {
		cli.PrintWarning("Content uses %d%% of a %s token context window", percentage, utils.FormatTokenCount(utils.ContextLimit))
	}
	return nil
}
