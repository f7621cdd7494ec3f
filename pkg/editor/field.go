package editor

import (
	"fmt"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// ChildKey is the key given to properties added to an object.
const ChildKey = "new"

// RetypeField switches n to kind k. Scalars get their default value; objects
// and arrays are seeded with one default child so the new container is
// immediately editable.
func RetypeField(n *models.Node, k models.Kind) *models.Node {
	c := models.Retype(n, k)
	if k.IsContainer() {
		c = c.WithChildren([]*models.Node{defaultChild(k)})
	}
	return c
}

// SetKey returns a copy of n with a new key. Keys are not validated; an empty
// key drops the property when the document is encoded.
func SetKey(n *models.Node, key string) *models.Node {
	c := n.Clone()
	c.Key = key
	return c
}

// SetScalarValue assigns v to a scalar node. The payload kind must match the
// node kind.
func SetScalarValue(n *models.Node, v models.Scalar) (*models.Node, error) {
	if !n.Kind.IsScalar() || v.Kind() != n.Kind {
		return nil, fmt.Errorf("%w: cannot assign %s to %s node", models.ErrTypeMismatch, v.Kind(), n.Kind)
	}
	c := n.Clone()
	c.Value = v
	return c, nil
}

// SetNumberText applies text typed into a number field. Valid literals
// replace the value. Anything else is held as pending input while the node
// keeps encoding its last valid number.
func SetNumberText(n *models.Node, text string) (*models.Node, error) {
	if n.Kind != models.KindNumber {
		return nil, fmt.Errorf("%w: %s node does not hold a number", models.ErrTypeMismatch, n.Kind)
	}
	c := n.Clone()
	if v, err := models.NumberLiteral(text); err == nil {
		c.Value = v
	} else {
		c.Value = n.Value.WithPending(text)
	}
	return c, nil
}

// ToggleBoolean flips a boolean node.
func ToggleBoolean(n *models.Node) (*models.Node, error) {
	b, ok := n.Value.AsBool()
	if n.Kind != models.KindBoolean || !ok {
		return nil, fmt.Errorf("%w: %s node is not a boolean", models.ErrTypeMismatch, n.Kind)
	}
	c := n.Clone()
	c.Value = models.BoolValue(!b)
	return c, nil
}

// AddChild appends a default child to an object (property "new") or an array
// (empty string item).
func AddChild(n *models.Node) (*models.Node, error) {
	if !n.Kind.IsContainer() {
		return nil, unsupported("add a child to", n)
	}
	children := make([]*models.Node, 0, len(n.Children())+1)
	children = append(children, n.Children()...)
	return n.WithChildren(append(children, defaultChild(n.Kind))), nil
}

// RemoveChild removes the child at index from an object or array.
func RemoveChild(n *models.Node, index int) (*models.Node, error) {
	if !n.Kind.IsContainer() {
		return nil, unsupported("remove a child from", n)
	}
	children, err := RemoveAt(n.Children(), index)
	if err != nil {
		return nil, err
	}
	return n.WithChildren(children), nil
}

func defaultChild(parent models.Kind) *models.Node {
	if parent == models.KindObject {
		return models.NewString(ChildKey, "")
	}
	return models.NewString("", "")
}

func unsupported(action string, n *models.Node) error {
	return fmt.Errorf("%w: cannot %s a %s node", models.ErrUnsupportedOperation, action, n.Kind)
}
