package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/editor"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/files"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/generation"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/utils"
)

func (m *EditorModel) handleTreeKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return m.quit()

	case "tab":
		m.activePane = previewPane
		m.refresh()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.refresh()
		}

	case "home":
		m.cursor = 0
		m.refresh()

	case "end":
		m.cursor = len(m.rows) - 1
		m.refresh()

	case "enter", " ":
		if row, ok := m.currentRow(); ok && row.Node.Kind.IsContainer() {
			m.expansion.Toggle(row.Node.ID)
			m.refresh()
		}

	case "a":
		m.setRoot(editor.AddRootObject(m.root))
		m.moveCursorTo(editor.Path{len(m.root) - 1})
		return statusCmd(fmt.Sprintf("Added object #%d", len(m.root)))

	case "n":
		return m.addChild()

	case "x":
		return m.removeSelected()

	case "c":
		return m.duplicateSelected()

	case "t":
		return m.retypeSelected(models.Kind.Next)

	case "T":
		return m.retypeSelected(models.Kind.Prev)

	case "e":
		return m.beginKeyEdit()

	case "v":
		return m.beginValueEdit()

	case "K":
		return m.moveSelected(-1)

	case "J":
		return m.moveSelected(1)

	case "y":
		return m.copyPreview()

	case "s":
		return m.beginExport()

	case "i":
		return m.beginImport()

	case "g":
		return m.beginPrompt()

	case "C":
		return m.confirmClear()

	case "esc":
		if m.generation.IsGenerating() {
			m.generation.CancelGeneration()
			return statusCmd("Generation cancelled")
		}
	}
	return nil
}

func (m *EditorModel) handlePreviewKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return m.quit()
	case "tab":
		m.activePane = treePane
		m.refresh()
		return nil
	case "y":
		return m.copyPreview()
	case "s":
		return m.beginExport()
	}
	var cmd tea.Cmd
	m.previewViewport, cmd = m.previewViewport.Update(msg)
	return cmd
}

// apply runs a structural edit against the selected row.
func (m *EditorModel) apply(edit func(models.Root, editor.Path) (models.Root, error)) (editor.Path, bool, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return nil, false, nil
	}
	root, err := edit(m.root, row.Path)
	if err != nil {
		return nil, false, statusCmd("Error: " + err.Error())
	}
	m.setRoot(root)
	return row.Path, true, nil
}

func (m *EditorModel) addChild() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	if !row.Node.Kind.IsContainer() {
		return statusCmd("Only objects and arrays have children")
	}
	path, ok, cmd := m.apply(editor.AddChildAt)
	if !ok {
		return cmd
	}
	m.expansion.Expand(row.Node.ID)
	m.refresh()
	m.moveCursorTo(path.Child(len(row.Node.Children())))
	return nil
}

func (m *EditorModel) removeSelected() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	_, ok, cmd := m.apply(editor.RemovePath)
	if !ok {
		return cmd
	}
	return statusCmd("Deleted " + rowName(row))
}

func (m *EditorModel) duplicateSelected() tea.Cmd {
	path, ok, cmd := m.apply(editor.DuplicatePath)
	if !ok {
		return cmd
	}
	parent, index := path.Parent()
	m.moveCursorTo(parent.Child(index + 1))
	return nil
}

func (m *EditorModel) retypeSelected(step func(models.Kind) models.Kind) tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	k := step(row.Node.Kind)
	_, ok, cmd := m.apply(func(root models.Root, path editor.Path) (models.Root, error) {
		return editor.RetypePath(root, path, k)
	})
	if !ok {
		return cmd
	}
	return statusCmd(fmt.Sprintf("%s is now %s", rowName(row), k))
}

func (m *EditorModel) moveSelected(delta int) tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	// Moving past either end of the parent is a no-op.
	_, index := row.Path.Parent()
	if index+delta < 0 || index+delta >= m.siblingCount(row.Path) {
		return nil
	}
	path, ok, cmd := m.apply(func(root models.Root, path editor.Path) (models.Root, error) {
		return editor.MovePath(root, path, delta)
	})
	if !ok {
		return cmd
	}
	parent, index := path.Parent()
	m.moveCursorTo(parent.Child(index + delta))
	return nil
}

func (m *EditorModel) siblingCount(path editor.Path) int {
	parentPath, _ := path.Parent()
	if len(parentPath) == 0 {
		return len(m.root)
	}
	parent, err := editor.Get(m.root, parentPath)
	if err != nil {
		return 0
	}
	return len(parent.Children())
}

func (m *EditorModel) copyPreview() tea.Cmd {
	if err := m.copyText(m.previewText); err != nil {
		return statusCmd("Failed to copy: " + err.Error())
	}
	tokens := utils.FormatTokenCount(utils.EstimateTokens(m.previewText))
	return statusCmd(fmt.Sprintf("✓ Copied JSON to clipboard (~%s tokens)", tokens))
}

// quit exits at once for a saved document and asks first otherwise.
func (m *EditorModel) quit() tea.Cmd {
	if !m.dirty {
		return tea.Quit
	}
	m.confirm.ShowInline("Quit without exporting your changes?", true,
		func() tea.Cmd { return tea.Quit },
		nil,
	)
	return nil
}

func (m *EditorModel) confirmClear() tea.Cmd {
	if len(m.root) == 0 {
		return statusCmd("Document is already empty")
	}
	var objects, values int
	m.root.Walk(func(n *models.Node) bool {
		if n.Kind == models.KindObject {
			objects++
		}
		values++
		return true
	})
	m.confirm.Show(ConfirmationConfig{
		Title:       "Clear Document",
		Message:     fmt.Sprintf("Remove all %d items?", len(m.root)),
		Warning:     "This cannot be undone.",
		Details:     []string{fmt.Sprintf("%d objects, %d values in total", objects, values)},
		Destructive: true,
		Type:        ConfirmTypeDialog,
	},
		func() tea.Cmd {
			m.setRoot(editor.Clear())
			m.cursor = 0
			return statusCmd("Document cleared")
		},
		nil,
	)
	return nil
}

// beginKeyEdit starts editing the selected property's key.
func (m *EditorModel) beginKeyEdit() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	if !row.IsProperty() {
		return statusCmd("Only object properties have keys")
	}
	m.startInput(modeEditKey, row.Path, row.Node.Key, "key")
	return nil
}

// beginValueEdit toggles booleans and opens an input for strings and
// numbers.
func (m *EditorModel) beginValueEdit() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	switch row.Node.Kind {
	case models.KindBoolean:
		_, _, cmd := m.apply(func(root models.Root, path editor.Path) (models.Root, error) {
			return editor.Update(root, path, editor.ToggleBoolean)
		})
		return cmd
	case models.KindString, models.KindNumber:
		m.startInput(modeEditValue, row.Path, row.Node.Value.Text(), row.Node.Kind.String())
		return nil
	case models.KindNull:
		return statusCmd("null has no value to edit; press t to change its type")
	}
	return statusCmd("Containers have no value; press n to add a child")
}

func (m *EditorModel) startInput(mode inputMode, path editor.Path, value, label string) {
	m.mode = mode
	m.editPath = path
	m.snapshot = m.root
	m.snapshotDirty = m.dirty
	m.input.Placeholder = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.updateViewportSizes()
}

func (m *EditorModel) stopInput() {
	m.mode = modeNormal
	m.editPath = nil
	m.snapshot = nil
	m.input.Blur()
	m.input.SetValue("")
	m.updateViewportSizes()
	m.refresh()
}

// handleEditInput applies key and value edits live against the snapshot
// taken when the edit began.
func (m *EditorModel) handleEditInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.restoreSnapshot()
		m.stopInput()
		return statusCmd("Edit cancelled")
	case "enter":
		node, err := editor.Get(m.root, m.editPath)
		if err != nil || node.Value.Pending() == "" {
			m.stopInput()
			return nil
		}
		// Rejected number text never replaced the snapshot's value.
		pending := node.Value.Pending()
		kept, _ := node.Value.AsNumber()
		m.restoreSnapshot()
		m.stopInput()
		return statusCmd(fmt.Sprintf("%q is not a number; keeping %s", pending, kept))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	text := m.input.Value()
	root, err := editor.Update(m.snapshot, m.editPath, func(n *models.Node) (*models.Node, error) {
		if m.mode == modeEditKey {
			return editor.SetKey(n, text), nil
		}
		if n.Kind == models.KindNumber {
			return editor.SetNumberText(n, text)
		}
		return editor.SetScalarValue(n, models.StringValue(text))
	})
	if err != nil {
		return tea.Batch(cmd, statusCmd("Error: "+err.Error()))
	}
	m.setRoot(root)
	return cmd
}

func (m *EditorModel) beginExport() tea.Cmd {
	name := m.settings.Output.DefaultFilename
	if m.filename != "" {
		name = m.filename
	}
	m.startInput(modeExport, nil, name, "filename")
	return nil
}

func (m *EditorModel) handleExportInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.stopInput()
		return statusCmd("Export cancelled")
	case "enter":
		path := files.ExportPath(m.settings, m.input.Value())
		m.stopInput()
		if err := files.WriteDocument(path, m.root); err != nil {
			return statusCmd("Failed to export: " + err.Error())
		}
		m.filename = path
		m.dirty = false
		return statusCmd(fmt.Sprintf("✓ Exported %d items to %s", len(m.root), path))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *EditorModel) restoreSnapshot() {
	m.root = m.snapshot
	m.dirty = m.snapshotDirty
	m.expansion.Prune(m.root)
}

func (m *EditorModel) beginImport() tea.Cmd {
	m.startInput(modeImport, nil, m.filename, "path")
	return nil
}

// handleImportInput replaces the document with a file's content. A file
// that fails to read or import leaves the document as it was.
func (m *EditorModel) handleImportInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.stopInput()
		return statusCmd("Import cancelled")
	case "enter":
		path := strings.TrimSpace(m.input.Value())
		m.stopInput()
		if path == "" {
			return statusCmd("Enter a file to import")
		}
		root, err := files.ReadDocument(path)
		switch {
		case errors.Is(err, models.ErrInvalidRootShape):
			return statusCmd("Import failed: the file must contain a JSON array; document unchanged")
		case err != nil:
			return statusCmd("Import failed: " + err.Error())
		}
		m.setRoot(root)
		m.cursor = 0
		m.filename = path
		m.dirty = false
		return statusCmd(fmt.Sprintf("✓ Imported %d items from %s", len(root), path))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *EditorModel) beginPrompt() tea.Cmd {
	if !m.generation.Available() {
		if m.generation.SetupErr != nil {
			return statusCmd("AI generation unavailable: " + m.generation.SetupErr.Error())
		}
		return statusCmd("AI generation unavailable")
	}
	if m.generation.IsGenerating() {
		return statusCmd("A generation request is already running")
	}
	m.mode = modePrompt
	m.prompt.SetValue(m.generation.LastPrompt)
	m.prompt.Focus()
	m.updateViewportSizes()
	return nil
}

func (m *EditorModel) handlePromptInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return nil
	case "ctrl+s":
		description := strings.TrimSpace(m.prompt.Value())
		if description == "" {
			return statusCmd("Describe the data to generate first")
		}
		m.closePrompt()
		cmd := m.generation.StartGeneration(description)
		if cmd == nil {
			return statusCmd("A generation request is already running")
		}
		return cmd
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *EditorModel) closePrompt() {
	m.mode = modeNormal
	m.prompt.Blur()
	m.updateViewportSizes()
	m.refresh()
}

// handleGenerationDone installs a generated document. Replies to abandoned
// requests are dropped and failures leave the document untouched.
func (m *EditorModel) handleGenerationDone(msg generationDoneMsg) tea.Cmd {
	if !m.generation.CompleteGeneration(msg) {
		return nil
	}
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, generation.ErrNotAnArray):
			return statusCmd("AI reply was not a JSON array; document unchanged")
		case errors.Is(msg.err, models.ErrExternalService):
			return statusCmd("AI service error: " + msg.err.Error())
		}
		return statusCmd("Generation failed: " + msg.err.Error())
	}
	m.setRoot(msg.root)
	m.cursor = 0
	m.refresh()
	return statusCmd(fmt.Sprintf("✓ Generated %d items", len(msg.root)))
}
