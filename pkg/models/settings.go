package models

// Settings represents the application configuration
type Settings struct {
	Output OutputSettings `yaml:"output"`
	UI     UISettings     `yaml:"ui"`
	AI     AISettings     `yaml:"ai"`
}

// OutputSettings controls export behavior
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool `yaml:"show_preview"`
	Highlight   bool `yaml:"highlight"`
}

// AISettings configures the generation service
type AISettings struct {
	Model          string `yaml:"model"`
	Endpoint       string `yaml:"endpoint"`
	APIKeyEnv      string `yaml:"api_key_env"` // name of the env var holding the credential
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "data.json",
			ExportPath:      "./",
		},
		UI: UISettings{
			ShowPreview: true,
			Highlight:   true,
		},
		AI: AISettings{
			Model:          "gemini-3-flash-preview",
			Endpoint:       "https://generativelanguage.googleapis.com/v1beta",
			APIKeyEnv:      "API_KEY",
			TimeoutSeconds: 60,
		},
	}
}
