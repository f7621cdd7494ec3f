package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/editor"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/preview"
)

type pane int

const (
	treePane pane = iota
	previewPane
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeEditKey
	modeEditValue
	modeExport
	modeImport
	modePrompt
)

// EditorConfig wires the editor to its surroundings.
type EditorConfig struct {
	Settings *models.Settings
	// Filename is the document path shown in the header and offered on export.
	Filename string
	// Generation is nil when AI generation is unavailable.
	Generation *GenerationState
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// EditorModel is the two-pane document editor: a tree of nodes on the left
// and the live JSON preview on the right.
type EditorModel struct {
	width  int
	height int

	root      models.Root
	expansion Expansion
	rows      []Row
	cursor    int
	dirty     bool

	activePane pane
	mode       inputMode
	input      textinput.Model
	prompt     textarea.Model
	editPath   editor.Path
	// snapshot and snapshotDirty hold the document before the current
	// key/value edit; esc restores both.
	snapshot      models.Root
	snapshotDirty bool

	treeViewport    viewport.Model
	previewViewport viewport.Model
	previewText     string
	theme           preview.Theme

	settings   *models.Settings
	filename   string
	confirm    *ConfirmationModel
	generation *GenerationState
	copyText   func(string) error
}

// NewEditorModel creates an editor over root.
func NewEditorModel(root models.Root, cfg EditorConfig) *EditorModel {
	if root == nil {
		root = editor.Clear()
	}
	settings := cfg.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	gen := cfg.Generation
	if gen == nil {
		gen = NewGenerationState(nil, nil, 0)
	}
	copyText := cfg.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.CharLimit = 0
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Describe the data to generate, e.g. five users with name, email and age"
	ta.ShowLineNumbers = false
	ta.Prompt = "  "
	ta.SetWidth(80)
	ta.SetHeight(4)

	m := &EditorModel{
		root:            root,
		expansion:       Expansion{},
		input:           ti,
		prompt:          ta,
		treeViewport:    viewport.New(40, 20),
		previewViewport: viewport.New(40, 20),
		theme:           preview.DefaultTheme(nil),
		settings:        settings,
		filename:        cfg.Filename,
		confirm:         NewConfirmation(),
		generation:      gen,
		copyText:        copyText,
	}
	m.refresh()
	return m
}

func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Root returns the current document.
func (m *EditorModel) Root() models.Root {
	return m.root
}

// Preview returns the current canonical JSON text.
func (m *EditorModel) Preview() string {
	return m.previewText
}

// Dirty reports whether the document changed since it was loaded or
// exported.
func (m *EditorModel) Dirty() bool {
	return m.dirty
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case generationDoneMsg:
		return m, m.handleGenerationDone(msg)

	case spinner.TickMsg:
		return m, m.generation.UpdateSpinner(msg)

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}
		switch m.mode {
		case modeEditKey, modeEditValue:
			return m, m.handleEditInput(msg)
		case modeExport:
			return m, m.handleExportInput(msg)
		case modeImport:
			return m, m.handleImportInput(msg)
		case modePrompt:
			return m, m.handlePromptInput(msg)
		}
		if m.activePane == previewPane {
			return m, m.handlePreviewKeys(msg)
		}
		return m, m.handleTreeKeys(msg)
	}
	return m, nil
}

// SetSize lays the panes out for a terminal of the given size.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateViewportSizes()
	m.refresh()
}

func (m *EditorModel) layout() (leftWidth, rightWidth, contentHeight int) {
	avail := m.width - 5 // outer padding and the gap between panes
	leftWidth = avail * 2 / 5
	if leftWidth < 30 {
		leftWidth = 30
	}
	rightWidth = avail - leftWidth
	if rightWidth < 20 {
		rightWidth = 20
	}

	contentHeight = m.height - headerHeight - 6 // help pane and spacing
	switch m.mode {
	case modeEditKey, modeEditValue, modeExport, modeImport:
		contentHeight -= 3
	case modePrompt:
		contentHeight -= m.prompt.Height() + 3
	}
	if contentHeight < 6 {
		contentHeight = 6
	}
	return leftWidth, rightWidth, contentHeight
}

func (m *EditorModel) updateViewportSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	leftWidth, rightWidth, contentHeight := m.layout()

	m.treeViewport.Width = leftWidth - 2
	m.treeViewport.Height = contentHeight - 2 // heading and spacing
	m.previewViewport.Width = rightWidth - 2
	m.previewViewport.Height = contentHeight - 2
	m.input.Width = m.width - 12
	m.prompt.SetWidth(m.width - 8)
}

// setRoot replaces the document after an edit.
func (m *EditorModel) setRoot(root models.Root) {
	m.root = root
	m.dirty = true
	m.expansion.Prune(root)
	m.refresh()
}

// refresh recomputes rows and the preview from the current document.
func (m *EditorModel) refresh() {
	m.rows = FlattenRows(m.root, m.expansion)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.previewText = preview.Render(m.root)
	content := m.previewText
	if m.settings.UI.Highlight {
		content = preview.HighlightANSI(content, m.theme)
	}
	if m.previewViewport.Width > 0 {
		content = wrap.String(content, m.previewViewport.Width)
	}
	m.previewViewport.SetContent(content)

	m.treeViewport.SetContent(m.renderRows())
	m.scrollToCursor()
}

func (m *EditorModel) scrollToCursor() {
	h := m.treeViewport.Height
	if h <= 0 {
		return
	}
	if m.cursor < m.treeViewport.YOffset {
		m.treeViewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.treeViewport.YOffset+h {
		m.treeViewport.SetYOffset(m.cursor - h + 1)
	}
}

func (m *EditorModel) currentRow() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}

// moveCursorTo selects the row at path when it is visible.
func (m *EditorModel) moveCursorTo(path editor.Path) {
	for i, row := range m.rows {
		if row.Path.String() == path.String() {
			m.cursor = i
			m.refresh()
			return
		}
	}
}
