package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const logo = `  ╻┏━┓┏━┓┏┓╻
  ┃┗━┓┃ ┃┃┗┫
┗━┛┗━┛┗━┛╹ ╹`

func renderHeader(width int, title string, itemCount int) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	noun := "items"
	if itemCount == 1 {
		noun = "item"
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		"",
		titleStyle.Render(title),
		countStyle.Render(fmt.Sprintf("%d %s", itemCount, noun)),
	)
	logoRendered := logoStyle.Render(logo)

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(logoRendered)
	if gap < 1 {
		return headerPadding.Render(left)
	}

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	))
}

// headerHeight is the number of lines renderHeader produces.
const headerHeight = 3
