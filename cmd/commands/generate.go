package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/files"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/generation"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/preview"
)

var (
	generatePrompt  string
	generateFile    string
	generateDiff    bool
	generateText    bool
	generateContext string
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a JSON document (or free text) with AI",
		Long: `Ask the configured model for a JSON array of objects matching a
description. The reply must be an array; anything else is rejected and no
file is written.

With --file the document is written there, replacing its content after
confirmation. --diff shows how the new document differs from the file's
current content.

With --text the model answers in free text instead, optionally given the
content of --context as background.

The API key is read from the environment variable named by ai.api_key_env
in .jsoneditor/settings.yaml (default API_KEY), falling back to
GEMINI_API_KEY.

Examples:
  jsoneditor generate --prompt "five users with name, email and age"
  jsoneditor generate --prompt "ten products" --file products.json --diff
  jsoneditor generate --text --prompt "Summarize this data" --context data.json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(generatePrompt) == "" {
				return errors.New("--prompt is required")
			}
			if generateDiff && generateFile == "" {
				return errors.New("--diff needs --file")
			}
			if generateContext != "" && !generateText {
				return errors.New("--context is only used with --text")
			}
			return nil
		},
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "Description of the data to generate")
	cmd.Flags().StringVarP(&generateFile, "file", "f", "", "Write the generated document to this file")
	cmd.Flags().BoolVar(&generateDiff, "diff", false, "Show changes against the current content of --file")
	cmd.Flags().BoolVar(&generateText, "text", false, "Ask for free text instead of a JSON document")
	cmd.Flags().StringVar(&generateContext, "context", "", "File whose content is sent as background with --text")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := newCommandContext()
	settings := ctx.LoadSettingsWithDefault()

	bridge, err := ctx.NewBridge()
	if err != nil {
		return err
	}

	reqCtx := cmd.Context()
	if reqCtx == nil {
		reqCtx = context.Background()
	}
	if settings.AI.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, time.Duration(settings.AI.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	if generateText {
		var background string
		if generateContext != "" {
			content, err := os.ReadFile(generateContext)
			if err != nil {
				return fmt.Errorf("failed to read context: %w", err)
			}
			background = string(content)
		}
		fmt.Fprintln(cmd.OutOrStdout(), bridge.GenerateText(reqCtx, generatePrompt, background))
		return nil
	}

	root, err := bridge.GenerateRoot(reqCtx, generatePrompt)
	if err != nil {
		if errors.Is(err, generation.ErrNotAnArray) {
			return fmt.Errorf("the model did not return a JSON array: %w", err)
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	text, err := codec.FormatRoot(root)
	if err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}

	if generateFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	path := files.ExportFilename(generateFile)
	if existing, err := os.ReadFile(path); err == nil {
		if generateDiff {
			diff, stats := preview.Diff(strings.TrimSuffix(string(existing), "\n"), text)
			fmt.Fprint(cmd.OutOrStdout(), diff)
			cli.PrintInfo("%d lines added, %d removed", stats.Added, stats.Removed)
		}
		ok, err := cli.Confirm(fmt.Sprintf("Replace %s?", path), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Kept %s unchanged", path)
			return nil
		}
	}

	if err := files.WriteDocument(path, root); err != nil {
		return err
	}
	cli.PrintSuccess("Generated %s into %s", cli.Pluralize(len(root), "item", "items"), path)
	return nil
}
