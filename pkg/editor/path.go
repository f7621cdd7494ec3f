package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Path addresses a node by child indexes, starting with its position in the
// root. The empty path addresses the root itself, which is not a node.
type Path []int

// String renders the path as dotted indexes, e.g. "0.2.1".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Parent returns the path of the containing node and the index within it.
func (p Path) Parent() (Path, int) {
	if len(p) == 0 {
		return nil, -1
	}
	return p[:len(p)-1], p[len(p)-1]
}

// Child returns the path of the i-th child of the addressed node.
func (p Path) Child(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, i)
}

// Get returns the node at path.
func Get(root models.Root, path Path) (*models.Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", models.ErrIndexOutOfRange)
	}
	seq := []*models.Node(root)
	var n *models.Node
	for depth, i := range path {
		if depth > 0 && !n.Kind.IsContainer() {
			return nil, fmt.Errorf("%w: %s node at %s has no children", models.ErrUnsupportedOperation, n.Kind, path[:depth])
		}
		if err := checkIndex(i, len(seq)); err != nil {
			return nil, fmt.Errorf("path %s: %w", path, err)
		}
		n = seq[i]
		seq = n.Children()
	}
	return n, nil
}

// Update replaces the node at path with fn's result. Only the nodes along the
// path are copied; everything else is shared with root.
func Update(root models.Root, path Path, fn func(*models.Node) (*models.Node, error)) (models.Root, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", models.ErrIndexOutOfRange)
	}
	seq, err := updateIn(root, path, path, fn)
	if err != nil {
		return nil, err
	}
	return seq, nil
}

func updateIn(seq []*models.Node, rest, full Path, fn func(*models.Node) (*models.Node, error)) ([]*models.Node, error) {
	i := rest[0]
	if err := checkIndex(i, len(seq)); err != nil {
		return nil, fmt.Errorf("path %s: %w", full, err)
	}
	cur := seq[i]
	var next *models.Node
	if len(rest) == 1 {
		n, err := fn(cur)
		if err != nil {
			return nil, err
		}
		next = n
	} else {
		if !cur.Kind.IsContainer() {
			return nil, fmt.Errorf("%w: %s node on path %s has no children", models.ErrUnsupportedOperation, cur.Kind, full)
		}
		children, err := updateIn(cur.Children(), rest[1:], full, fn)
		if err != nil {
			return nil, err
		}
		next = cur.WithChildren(children)
	}
	return ReplaceAt(seq, i, next)
}

// updateSequence applies fn to the sequence that contains the node at path:
// the root for top-level paths, otherwise the parent's children.
func updateSequence(root models.Root, path Path, fn func(seq []*models.Node, index int) ([]*models.Node, error)) (models.Root, error) {
	parent, index := path.Parent()
	if index < 0 {
		return nil, fmt.Errorf("%w: empty path", models.ErrIndexOutOfRange)
	}
	if len(parent) == 0 {
		seq, err := fn(root, index)
		if err != nil {
			return nil, err
		}
		return seq, nil
	}
	return Update(root, parent, func(n *models.Node) (*models.Node, error) {
		if !n.Kind.IsContainer() {
			return nil, fmt.Errorf("%w: %s node at %s has no children", models.ErrUnsupportedOperation, n.Kind, parent)
		}
		children, err := fn(n.Children(), index)
		if err != nil {
			return nil, err
		}
		return n.WithChildren(children), nil
	})
}

// RemovePath removes the node at path.
func RemovePath(root models.Root, path Path) (models.Root, error) {
	return updateSequence(root, path, RemoveAt)
}

// DuplicatePath inserts a clone of the node at path right after it.
func DuplicatePath(root models.Root, path Path) (models.Root, error) {
	return updateSequence(root, path, DuplicateAt)
}

// MovePath moves the node at path by delta positions within its parent.
func MovePath(root models.Root, path Path, delta int) (models.Root, error) {
	return updateSequence(root, path, func(seq []*models.Node, index int) ([]*models.Node, error) {
		return MoveAt(seq, index, index+delta)
	})
}

// AddChildAt appends a default child to the container at path.
func AddChildAt(root models.Root, path Path) (models.Root, error) {
	return Update(root, path, AddChild)
}

// RetypePath switches the node at path to kind k.
func RetypePath(root models.Root, path Path, k models.Kind) (models.Root, error) {
	return Update(root, path, func(n *models.Node) (*models.Node, error) {
		return RetypeField(n, k), nil
	})
}
