package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/utils"
)

// Terminal palette (256-colour codes).
const (
	ColorActive   = "170"
	ColorInactive = "240"
	ColorSelected = "236"
	ColorNormal   = "245"
	ColorDim      = "241"
	ColorVeryDim  = "242"
	ColorWarning  = "214"
	ColorDanger   = "196"
	ColorSuccess  = "28"
	ColorWhite    = "255"
	ColorDark     = "235"
)

// kindColors matches the preview highlight palette so a row and its JSON
// text share a colour.
var kindColors = map[models.Kind]string{
	models.KindString:  "#ce9178",
	models.KindNumber:  "#b5cea8",
	models.KindBoolean: "#569cd6",
	models.KindNull:    "#569cd6",
	models.KindObject:  "#c586c0",
	models.KindArray:   "#dcdcaa",
}

func rounded(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color))
}

var (
	ActiveBorderStyle   = rounded(ColorActive)
	InactiveBorderStyle = rounded(ColorInactive)
	HelpBorderStyle     = rounded(ColorInactive)
	InputStyle          = rounded(ColorActive).Padding(0, 1)

	// SelectedStyle marks the cursor row while the tree has focus.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	ColonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	HeaderPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim)).
			Italic(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	// PlaceholderStyle dims properties with an empty key, which export skips.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// KindStyle returns the badge style for a node kind.
func KindStyle(k models.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(kindColors[k]))
}

// GetTokenBadgeStyle picks the badge colours for a token count: green while
// the preview fits comfortably in a model context, orange near the limit,
// red beyond it.
func GetTokenBadgeStyle(tokenCount int) lipgloss.Style {
	bg, fg := ColorDanger, ColorWhite
	switch _, status := utils.GetTokenLimitStatus(tokenCount, 0); status {
	case "good":
		bg = ColorSuccess
	case "warning":
		bg, fg = ColorWarning, ColorDark
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Bold(true)
}

// GetActiveHeaderStyle returns the pane heading style for the focus state.
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorWarning
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}
