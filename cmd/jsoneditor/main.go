package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/cmd/commands"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/editor"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/files"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

var rootCmd = &cobra.Command{
	Use:   "jsoneditor [file]",
	Short: "Terminal editor for JSON arrays of objects",
	Long: `jsoneditor edits JSON documents whose top-level value is an array of
objects. The TUI shows the document as a tree next to a live, highlighted
preview, and can generate whole documents from a description with AI.

Run it with a file to edit that file, or without one to start empty.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cli.NewCommandContext()
		settings := ctx.LoadSettingsWithDefault()

		var root models.Root
		var filename string
		if len(args) == 1 {
			filename = args[0]
			if _, err := os.Stat(filename); err == nil {
				loaded, dups, err := ctx.LoadDocument(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: Failed to open %s: %v\n", filename, err)
					os.Exit(1)
				}
				if len(dups) > 0 {
					cli.PrintWarning("%d duplicate keys in %s were collapsed; the last value of each wins", len(dups), filename)
				}
				root = loaded
			}
		}
		switch {
		case len(args) == 0:
			root = editor.Sample()
		case root == nil:
			root = editor.Clear()
		}

		// A missing API key disables generation but not editing.
		var gen tui.RootGenerator
		bridge, setupErr := ctx.NewBridge()
		if setupErr == nil {
			gen = bridge
		}
		timeout := time.Duration(settings.AI.TimeoutSeconds) * time.Second

		// Launch TUI
		app := tui.NewApp(root, tui.EditorConfig{
			Settings:   settings,
			Filename:   filename,
			Generation: tui.NewGenerationState(gen, setupErr, timeout),
		})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		if app.Editor().Dirty() {
			cli.PrintWarning("Unsaved changes were discarded (press 's' in the editor to export)")
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a jsoneditor project",
	Long:  `Creates the .jsoneditor folder with default settings in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		cli.PrintInfo("Initializing jsoneditor project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		cli.PrintSuccess("Created %s", files.SettingsPath())
		cli.PrintInfo("Set the API key environment variable named in the settings to enable AI generation.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jsoneditor",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jsoneditor version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewTableCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
