package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmationKeys(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyMsg
		confirmed bool
		cancelled bool
		active    bool
	}{
		{"y confirms", runes("y"), true, false, false},
		{"Y confirms", runes("Y"), true, false, false},
		{"n cancels", runes("n"), false, true, false},
		{"esc cancels", keyEsc, false, true, false},
		{"other keys are swallowed", runes("x"), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var confirmed, cancelled bool
			c := NewConfirmation()
			c.ShowInline("Proceed?", false,
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil },
			)

			c.Update(tt.key)
			if confirmed != tt.confirmed || cancelled != tt.cancelled || c.Active() != tt.active {
				t.Errorf("confirmed=%v cancelled=%v active=%v", confirmed, cancelled, c.Active())
			}
		})
	}
}

func TestConfirmationView(t *testing.T) {
	c := NewConfirmation()
	if c.View() != "" {
		t.Error("inactive confirmation should render nothing")
	}

	c.ShowInline("Delete item?", true, nil, nil)
	if !strings.Contains(c.View(), "Delete item?") || c.IsDialog() {
		t.Errorf("inline view = %q", c.View())
	}

	c.Show(ConfirmationConfig{
		Title:   "Clear Document",
		Message: "Remove all 3 items?",
		Warning: "This cannot be undone.",
		Details: []string{"3 objects"},
		Type:    ConfirmTypeDialog,
	}, nil, nil)
	if !c.IsDialog() {
		t.Error("dialog type should render as a dialog")
	}
	view := c.View()
	for _, want := range []string{"Clear Document", "Remove all 3 items?", "This cannot be undone.", "3 objects"} {
		if !strings.Contains(view, want) {
			t.Errorf("dialog missing %q", want)
		}
	}

	// Nil callbacks are allowed.
	if cmd := c.Update(runes("y")); cmd != nil || c.Active() {
		t.Error("confirming without a callback should just close")
	}
}
