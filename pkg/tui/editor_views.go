package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/utils"
)

func (m *EditorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth, rightWidth, contentHeight := m.layout()
	contentStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	var s strings.Builder
	s.WriteString(renderHeader(m.width, m.title(), len(m.root)))
	s.WriteString("\n")

	if m.confirm.Active() && m.confirm.IsDialog() {
		dialog := lipgloss.Place(m.width-2, contentHeight+2, lipgloss.Center, lipgloss.Center, m.confirm.View())
		s.WriteString(contentStyle.Render(dialog))
	} else {
		left := m.renderTreePane(leftWidth, contentHeight)
		right := m.renderPreviewPane(rightWidth, contentHeight)
		s.WriteString(contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)))
	}

	switch m.mode {
	case modeEditKey, modeEditValue, modeExport, modeImport:
		s.WriteString("\n")
		s.WriteString(contentStyle.Render(m.renderInput()))
	case modePrompt:
		s.WriteString("\n")
		s.WriteString(contentStyle.Render(m.renderPrompt()))
	}

	helpBorderStyle := HelpBorderStyle.
		Width(m.width-4).
		Padding(0, 1)
	help := formatHelpText(m.helpItems(), m.width-8)
	if m.confirm.Active() && !m.confirm.IsDialog() {
		help = m.confirm.View()
	}
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(helpBorderStyle.Render(help)))

	return s.String()
}

func (m *EditorModel) title() string {
	title := "untitled.json"
	if m.filename != "" {
		title = filepath.Base(m.filename)
	}
	if m.dirty {
		title += " •"
	}
	return title
}

// renderPaneHeading renders a heading followed by a rule of colons, with an
// optional badge at the right edge.
func renderPaneHeading(heading string, active bool, width int, badge string) string {
	colonSpace := width - len(heading) - 5
	if badge != "" {
		colonSpace -= lipgloss.Width(badge) + 1
	}
	if colonSpace < 3 {
		colonSpace = 3
	}
	line := GetActiveHeaderStyle(active).Render(heading) + " " + ColonStyle.Render(strings.Repeat(":", colonSpace))
	if badge != "" {
		line += " " + badge
	}
	return HeaderPaddingStyle.Render(line)
}

func (m *EditorModel) renderTreePane(width, height int) string {
	active := m.activePane == treePane

	var content strings.Builder
	content.WriteString(renderPaneHeading("DOCUMENT", active, width, ""))
	content.WriteString("\n\n")

	viewportPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	if len(m.rows) == 0 {
		content.WriteString(viewportPadding.Render(EmptyStyle.Render("No items. Press 'a' to add an object or 'g' to generate.")))
	} else {
		content.WriteString(viewportPadding.Render(m.treeViewport.View()))
	}

	style := InactiveBorderStyle
	if active {
		style = ActiveBorderStyle
	}
	return style.Width(width).Height(height).Render(content.String())
}

func (m *EditorModel) renderRows() string {
	width := m.treeViewport.Width - 2
	lines := make([]string, len(m.rows))
	for i, row := range m.rows {
		label := RowLabel(row, m.expansion, width)
		if i == m.cursor {
			style := NormalStyle
			if m.activePane == treePane {
				style = SelectedStyle
			}
			lines[i] = style.Render("▶ " + label)
			continue
		}
		style := KindStyle(row.Node.Kind)
		if row.IsProperty() && row.Node.Key == "" {
			style = PlaceholderStyle
		}
		lines[i] = "  " + style.Render(label)
	}
	return strings.Join(lines, "\n")
}

func (m *EditorModel) renderPreviewPane(width, height int) string {
	active := m.activePane == previewPane

	tokenCount := utils.EstimateTokens(m.previewText)
	badge := GetTokenBadgeStyle(tokenCount).Render(utils.FormatTokenCount(tokenCount))
	if m.generation.IsGenerating() {
		badge = m.generation.Spinner.View() + " generating " + badge
	}

	var content strings.Builder
	content.WriteString(renderPaneHeading("JSON PREVIEW", active, width, badge))
	content.WriteString("\n\n")

	previewPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	content.WriteString(previewPadding.Render(m.previewViewport.View()))

	style := InactiveBorderStyle
	if active {
		style = ActiveBorderStyle
	}
	return style.Width(width).Height(height).Render(content.String())
}

func (m *EditorModel) renderInput() string {
	label := "Edit " + m.input.Placeholder
	switch m.mode {
	case modeExport:
		label = "Export as"
	case modeImport:
		label = "Import from"
	}
	line := HeaderStyle.Render(label+":") + " " + m.input.View()
	return InputStyle.Width(m.width - 6).Render(line)
}

func (m *EditorModel) renderPrompt() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Generate JSON"))
	b.WriteString(" ")
	b.WriteString(DescriptionStyle.Render("(replaces the whole document)"))
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	return InputStyle.Width(m.width - 6).Render(b.String())
}

func (m *EditorModel) helpItems() []string {
	switch m.mode {
	case modeEditKey, modeEditValue:
		return []string{"enter done", "esc cancel"}
	case modeExport:
		return []string{"enter export", "esc cancel"}
	case modeImport:
		return []string{"enter import", "esc cancel"}
	case modePrompt:
		return []string{"ctrl+s generate", "esc cancel"}
	}
	if m.confirm.Active() {
		return []string{"y confirm", "n/esc cancel"}
	}
	if m.activePane == previewPane {
		return []string{
			"tab switch pane",
			"↑/↓ scroll",
			"y copy",
			"s export",
			"q quit",
		}
	}
	help := []string{
		"tab switch pane",
		"↑/↓ navigate",
		"enter expand",
		"a add object",
		"n add child",
		"x delete",
		"c duplicate",
		"t/T type",
		"e key",
		"v value",
		"K/J move",
		"y copy",
		"s export",
		"i import",
		"g generate",
		"C clear",
		"q quit",
	}
	if m.generation.IsGenerating() {
		help = append(help, "esc cancel generation")
	}
	return help
}

// formatHelpText packs help entries into lines no wider than width, two
// spaces apart. An entry is never split across lines unless it is wider
// than width on its own.
func formatHelpText(help []string, width int) string {
	if width <= 0 {
		return DescriptionStyle.Render(strings.Join(help, "  "))
	}
	var lines []string
	var line string
	for _, entry := range help {
		if lipgloss.Width(entry) > width {
			entry = wordwrap.String(entry, width)
		}
		switch {
		case line == "":
			line = entry
		case lipgloss.Width(line)+2+lipgloss.Width(entry) <= width:
			line += "  " + entry
		default:
			lines = append(lines, line)
			line = entry
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return DescriptionStyle.Render(strings.Join(lines, "\n"))
}
