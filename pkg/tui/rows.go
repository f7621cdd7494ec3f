package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/editor"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Expansion records which containers are collapsed, keyed by node identity.
// Containers are expanded unless recorded otherwise, so nodes created by
// edits, imports or generation open by default.
type Expansion map[models.ID]bool

// IsExpanded reports whether the node with id shows its children.
func (e Expansion) IsExpanded(id models.ID) bool {
	return !e[id]
}

// Toggle flips the node's expansion.
func (e Expansion) Toggle(id models.ID) {
	if e[id] {
		delete(e, id)
		return
	}
	e[id] = true
}

// Expand makes the node show its children.
func (e Expansion) Expand(id models.ID) {
	delete(e, id)
}

// Prune forgets identities that are no longer reachable from root.
func (e Expansion) Prune(root models.Root) {
	live := make(map[models.ID]bool, len(e))
	root.Walk(func(n *models.Node) bool {
		if e[n.ID] {
			live[n.ID] = true
		}
		return true
	})
	for id := range e {
		if !live[id] {
			delete(e, id)
		}
	}
}

// Row is one visible line of the tree pane.
type Row struct {
	Path   editor.Path
	Node   *models.Node
	Depth  int
	Parent models.Kind // KindArray for root items
}

// IsProperty reports whether the row's key is editable.
func (r Row) IsProperty() bool {
	return r.Parent == models.KindObject
}

// FlattenRows lists the visible nodes in document order.
func FlattenRows(root models.Root, expansion Expansion) []Row {
	var rows []Row
	var visit func(n *models.Node, path editor.Path, depth int, parent models.Kind)
	visit = func(n *models.Node, path editor.Path, depth int, parent models.Kind) {
		rows = append(rows, Row{Path: path, Node: n, Depth: depth, Parent: parent})
		if !n.Kind.IsContainer() || !expansion.IsExpanded(n.ID) {
			return
		}
		for i, child := range n.Children() {
			visit(child, path.Child(i), depth+1, n.Kind)
		}
	}
	for i, n := range root {
		visit(n, editor.Path{i}, 0, models.KindArray)
	}
	return rows
}

// RowLabel renders a row without styling, truncated to width when width is
// positive.
func RowLabel(r Row, expansion Expansion, width int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", r.Depth))

	switch {
	case !r.Node.Kind.IsContainer():
		b.WriteString("  ")
	case expansion.IsExpanded(r.Node.ID):
		b.WriteString("▾ ")
	default:
		b.WriteString("▸ ")
	}

	b.WriteString(rowName(r))
	b.WriteString(": ")
	b.WriteString(rowValue(r.Node))

	line := b.String()
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return line
}

func rowName(r Row) string {
	_, index := r.Path.Parent()
	switch {
	case r.Depth == 0:
		return "#" + strconv.Itoa(index+1)
	case r.Parent == models.KindArray:
		return "[" + strconv.Itoa(index) + "]"
	case r.Node.Key == "":
		return `""`
	}
	return r.Node.Key
}

func rowValue(n *models.Node) string {
	switch n.Kind {
	case models.KindObject:
		return fmt.Sprintf("{%d}", len(n.Properties))
	case models.KindArray:
		return fmt.Sprintf("[%d]", len(n.Elements))
	case models.KindString:
		return strconv.Quote(n.Value.Text())
	}
	return n.Value.Text()
}
