package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

type fakeGenerator struct {
	root  models.Root
	err   error
	calls int
	last  string
}

func (f *fakeGenerator) GenerateRoot(ctx context.Context, description string) (models.Root, error) {
	f.calls++
	f.last = description
	return f.root, f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func mustRoot(t *testing.T, text string) models.Root {
	t.Helper()
	root, err := codec.ImportRoot([]byte(text))
	if err != nil {
		t.Fatalf("ImportRoot(%s) error: %v", text, err)
	}
	return root
}

func compactJSON(t *testing.T, root models.Root) string {
	t.Helper()
	out, err := codec.Compact(codec.EncodeRoot(root))
	if err != nil {
		t.Fatalf("Compact error: %v", err)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keySpace     = tea.KeyMsg{Type: tea.KeySpace}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyCtrlS     = tea.KeyMsg{Type: tea.KeyCtrlS}
)

// press sends each message to m and returns the last command.
func press(m *EditorModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// typeText sends one key per rune.
func typeText(m *EditorModel, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// statusOf runs cmd and returns the status text it produces.
func statusOf(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		return ""
	}
	for _, msg := range collect(cmd) {
		if s, ok := msg.(StatusMsg); ok {
			return string(s)
		}
	}
	return ""
}

// collect runs cmd, expanding batches. Only immediate commands may be
// passed.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// doneMsg runs a generation command and returns its reply.
func doneMsg(t *testing.T, cmd tea.Cmd) generationDoneMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if d, ok := msg.(generationDoneMsg); ok {
			return d
		}
	}
	t.Fatal("command produced no generation reply")
	return generationDoneMsg{}
}

func newTestEditor(t *testing.T, text string, gen RootGenerator) (*EditorModel, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	settings := models.DefaultSettings()
	settings.Output.ExportPath = t.TempDir()
	settings.UI.Highlight = false

	var state *GenerationState
	if gen != nil {
		state = NewGenerationState(gen, nil, 0)
	}
	m := NewEditorModel(mustRoot(t, text), EditorConfig{
		Settings:   settings,
		Generation: state,
		Clipboard:  cb.write,
	})
	m.SetSize(120, 40)
	return m, cb
}
