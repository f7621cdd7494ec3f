package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// statusDuration is how long a StatusMsg stays on screen.
const statusDuration = 3 * time.Second

type App struct {
	editor    *EditorModel
	width     int
	height    int
	statusMsg string
	statusSeq int
}

func NewApp(root models.Root, cfg EditorConfig) *App {
	return &App{
		editor: NewEditorModel(root, cfg),
	}
}

// Editor returns the document editor.
func (a *App) Editor() *EditorModel {
	return a.editor
}

func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// One line is reserved for the status bar.
		a.editor.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, nil

	case clearStatusMsg:
		// A newer message has replaced the one this timer was for.
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	m, cmd := a.editor.Update(msg)
	if em, ok := m.(*EditorModel); ok {
		a.editor = em
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.editor.View()

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusBar := StatusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views

// StatusMsg is shown in the status bar and cleared after statusDuration.
type StatusMsg string

// PersistentStatusMsg stays in the status bar until replaced.
type PersistentStatusMsg string

type clearStatusMsg struct {
	seq int
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}
