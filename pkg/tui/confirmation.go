package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Simple inline message
	ConfirmTypeDialog                         // Bordered box with title and details
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string   // shown in orange
	Details     []string // optional detail lines
	Destructive bool     // Yes is red, No is green
	Type        ConfirmationType
	Width       int // dialog width
}

// ConfirmationModel handles yes/no prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// IsDialog reports whether the prompt renders as a bordered dialog rather
// than a single line.
func (m *ConfirmationModel) IsDialog() bool {
	return m.config.Type == ConfirmTypeDialog
}

// Update handles key events for the confirmation. Keys other than y, n and
// esc are swallowed while it is active.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))
}

func (m *ConfirmationModel) renderDialog() string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))
	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))

	width := m.config.Width
	if width == 0 {
		width = 50
	}

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(titleStyle.Render(m.config.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.config.Message)
	b.WriteString("\n")
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(m.config.Warning))
		b.WriteString("\n")
	}
	for _, detail := range m.config.Details {
		b.WriteString(DescriptionStyle.Render("  • " + detail))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(formatConfirmOptions(m.config.Destructive))

	return borderStyle.Width(width).Render(b.String())
}

// ShowInline shows a one-line confirmation.
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Bold(true)
	no := lipgloss.NewStyle().Bold(true)
	if destructive {
		yes = yes.Foreground(lipgloss.Color(ColorDanger))
		no = no.Foreground(lipgloss.Color(ColorSuccess))
	} else {
		yes = yes.Foreground(lipgloss.Color(ColorSuccess))
		no = no.Foreground(lipgloss.Color(ColorDanger))
	}
	return "[" + yes.Render("y") + "/" + no.Render("n") + "]"
}
