package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps token classes to terminal styles. Classes without a style are
// written unchanged.
type Theme map[Class]lipgloss.Style

// DefaultTheme returns the editor's dark theme bound to renderer r. A nil r
// uses the default lipgloss renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Key:     r.NewStyle().Foreground(lipgloss.Color("#9cdcfe")),
		String:  r.NewStyle().Foreground(lipgloss.Color("#ce9178")),
		Number:  r.NewStyle().Foreground(lipgloss.Color("#b5cea8")),
		Boolean: r.NewStyle().Foreground(lipgloss.Color("#569cd6")),
		Null:    r.NewStyle().Foreground(lipgloss.Color("#569cd6")).Italic(true),
		Punct:   r.NewStyle().Foreground(lipgloss.Color("#808080")),
	}
}

// HighlightANSI styles text for a terminal. Whitespace is never styled so
// line structure is preserved.
func HighlightANSI(text string, theme Theme) string {
	var b strings.Builder
	for _, tok := range Tokenize(text) {
		style, ok := theme[tok.Class]
		if !ok || tok.Class == Space || tok.Class == Text {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(style.Render(tok.Text))
	}
	return b.String()
}
