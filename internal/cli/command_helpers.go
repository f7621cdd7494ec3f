package cli

import (
	"fmt"
	"os"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/files"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/generation"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// DuplicateKey is an object key that appeared more than once in an imported
// document. Only its last value survives.
type DuplicateKey struct {
	Path string // JSON Pointer of the object holding the key
	Key  string
}

// CommandContext carries settings and collaborators shared by commands
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	// Client replaces the Gemini client when set.
	Client generation.Client
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.ProjectDir,
	}
}

// HasProject reports whether the current directory was initialized.
func (c *CommandContext) HasProject() bool {
	_, err := os.Stat(c.ProjectPath)
	return err == nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LoadDocument imports the JSON document at path and reports keys that
// collapsed because they repeated within an object.
func (c *CommandContext) LoadDocument(path string) (models.Root, []DuplicateKey, error) {
	if err := ValidateFilePath(path); err != nil {
		return nil, nil, err
	}

	var dups []DuplicateKey
	root, err := files.ReadDocument(path, codec.WithDuplicateKeyHandler(func(pointer, key string) {
		dups = append(dups, DuplicateKey{Path: pointer, Key: key})
	}))
	if err != nil {
		return nil, nil, err
	}
	return root, dups, nil
}

// NewBridge builds the generation bridge from settings. Failures the bridge
// swallows are reported as warnings.
func (c *CommandContext) NewBridge() (*generation.Bridge, error) {
	settings := c.LoadSettingsWithDefault()
	if c.Client != nil {
		return generation.NewBridge(c.Client,
			generation.WithModel(settings.AI.Model),
			generation.WithLogf(PrintWarning),
		), nil
	}

	bridge, err := generation.NewGeminiBridge(settings.AI, generation.WithLogf(PrintWarning))
	if err != nil {
		return nil, fmt.Errorf("AI generation unavailable: %w", err)
	}
	return bridge, nil
}
