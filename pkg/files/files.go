package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	ProjectDir   = ".jsoneditor"
	SettingsFile = "settings.yaml"
	ExportsDir   = "exports"

	// MIMEType is the media type of exported documents.
	MIMEType = "application/json"
	// Extension is appended to export names that lack it.
	Extension = ".json"
)

// InitProjectStructure creates the project directory and writes default
// settings unless a settings file already exists.
func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(SettingsPath()); errors.Is(err, fs.ErrNotExist) {
		return WriteSettings(models.DefaultSettings())
	}
	return nil
}

// SettingsPath returns the location of the settings file.
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// ReadSettings loads the settings file. A missing file yields the defaults;
// fields absent from the file keep their default values.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	return settings, nil
}

// WriteSettings saves settings to the project directory.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// ReadDocument loads a JSON document whose top-level value is an array.
// Parse failures wrap models.ErrInvalidJSON and other shapes wrap
// models.ErrInvalidRootShape.
func ReadDocument(path string, opts ...codec.ParseOption) (models.Root, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	root, err := codec.ImportRoot(content, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return root, nil
}

// WriteDocument writes the canonical text of root followed by a newline.
func WriteDocument(path string, root models.Root) error {
	text, err := codec.FormatRoot(root)
	if err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}
	return WriteFile(path, text+"\n")
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ExportFilename returns name with a .json extension. An empty name falls
// back to the default from settings.
func ExportFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = models.DefaultSettings().Output.DefaultFilename
	}
	if !strings.EqualFold(filepath.Ext(name), Extension) {
		name += Extension
	}
	return name
}

// ExportPath joins the configured export directory and the export file name.
// Absolute names are returned as is.
func ExportPath(settings *models.Settings, name string) string {
	name = ExportFilename(name)
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(settings.Output.ExportPath, name)
}
