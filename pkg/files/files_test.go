package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/editor"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	return tempDir
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	err := InitProjectStructure()
	if err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	expected := []string{
		ProjectDir,
		filepath.Join(ProjectDir, ExportsDir),
		SettingsPath(),
	}

	for _, path := range expected {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected %s to exist", path)
		}
	}
}

func TestInitKeepsExistingSettings(t *testing.T) {
	chdirTemp(t)

	custom := models.DefaultSettings()
	custom.AI.Model = "custom-model"
	if err := WriteSettings(custom); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.AI.Model != "custom-model" {
		t.Errorf("Expected existing settings to survive init, got model %q", settings.AI.Model)
	}
}

func TestReadSettingsDefaults(t *testing.T) {
	chdirTemp(t)

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if *settings != *models.DefaultSettings() {
		t.Errorf("Expected defaults without a settings file, got %+v", settings)
	}

	partial := "ui:\n  highlight: false\n"
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(SettingsPath(), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}
	settings, err = ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.UI.Highlight {
		t.Error("Expected highlight to be disabled by the settings file")
	}
	if settings.Output.DefaultFilename != "data.json" || settings.AI.TimeoutSeconds != 60 {
		t.Errorf("Expected unspecified fields to keep defaults, got %+v", settings)
	}

	if err := os.WriteFile(SettingsPath(), []byte("ui: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSettings(); err == nil {
		t.Error("Expected error for malformed settings")
	}
}

func TestReadWriteDocument(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "out", "doc.json")

	root := editor.AddRootObject(editor.Clear())
	if err := WriteDocument(path, root); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := "[\n  {\n    \"new_key\": \"\"\n  }\n]\n"
	if string(content) != want {
		t.Errorf("Expected %q, got %q", want, content)
	}

	read, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	if len(read) != 1 || read[0].Properties[0].Key != "new_key" {
		t.Errorf("Unexpected document %+v", read)
	}
}

func TestReadDocumentErrors(t *testing.T) {
	dir := chdirTemp(t)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"object root", `{"x":1}`, models.ErrInvalidRootShape},
		{"invalid json", `[1,`, models.ErrInvalidJSON},
		{"empty file", ``, models.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			root, err := ReadDocument(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if root != nil {
				t.Errorf("Expected no root on failure, got %v", root)
			}
		})
	}

	if _, err := ReadDocument(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error when reading a missing document")
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data", "data.json"},
		{"data.json", "data.json"},
		{"DATA.JSON", "DATA.JSON"},
		{"report.v2", "report.v2.json"},
		{"  ", "data.json"},
	}

	for _, tt := range tests {
		if got := ExportFilename(tt.in); got != tt.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportPath(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Output.ExportPath = "exports"

	if got := ExportPath(settings, "items"); got != filepath.Join("exports", "items.json") {
		t.Errorf("Unexpected export path %q", got)
	}
	nested := filepath.Join("other", "items.json")
	if got := ExportPath(settings, nested); got != nested {
		t.Errorf("Expected explicit path to be kept, got %q", got)
	}
}
