package models

// Node is one JSON value in the document tree together with its key and
// identity. Kind decides which payload field is meaningful:
//
//   - scalar kinds use Value
//   - KindObject uses Properties, each child carrying its own Key
//   - KindArray uses Elements, whose keys are ignored
//
// Nodes carry no presentation state. Each node is owned by exactly one parent
// sequence (or the Root).
type Node struct {
	ID         ID
	Key        string
	Kind       Kind
	Value      Scalar
	Properties []*Node
	Elements   []*Node
}

// Root is the top-level sequence of a document. It always serializes as a
// JSON array.
type Root []*Node

// NewNode returns a node of kind k with the default payload for that kind and
// a fresh identity.
func NewNode(k Kind, key string) *Node {
	n := &Node{ID: NextID(), Key: key, Kind: k}
	resetPayload(n)
	return n
}

// NewString returns a String node.
func NewString(key, value string) *Node {
	return &Node{ID: NextID(), Key: key, Kind: KindString, Value: StringValue(value)}
}

// NewNumber returns a Number node.
func NewNumber(key string, value float64) *Node {
	return &Node{ID: NextID(), Key: key, Kind: KindNumber, Value: NumberValue(value)}
}

// NewBoolean returns a Boolean node.
func NewBoolean(key string, value bool) *Node {
	return &Node{ID: NextID(), Key: key, Kind: KindBoolean, Value: BoolValue(value)}
}

// NewNull returns a Null node.
func NewNull(key string) *Node {
	return &Node{ID: NextID(), Key: key, Kind: KindNull, Value: NullValue()}
}

// NewObject returns an Object node owning the given properties.
func NewObject(key string, properties ...*Node) *Node {
	if properties == nil {
		properties = []*Node{}
	}
	return &Node{ID: NextID(), Key: key, Kind: KindObject, Properties: properties}
}

// NewArray returns an Array node owning the given elements.
func NewArray(key string, elements ...*Node) *Node {
	if elements == nil {
		elements = []*Node{}
	}
	return &Node{ID: NextID(), Key: key, Kind: KindArray, Elements: elements}
}

// Children returns the child sequence owned by the node's kind, or nil for
// scalars.
func (n *Node) Children() []*Node {
	switch n.Kind {
	case KindObject:
		return n.Properties
	case KindArray:
		return n.Elements
	}
	return nil
}

// Clone returns a shallow copy of n: same identity, key and payload, and a
// fresh copy of the child slice so appends on the copy never alias n.
func (n *Node) Clone() *Node {
	c := *n
	if n.Properties != nil {
		c.Properties = append([]*Node{}, n.Properties...)
	}
	if n.Elements != nil {
		c.Elements = append([]*Node{}, n.Elements...)
	}
	return &c
}

// WithChildren returns a copy of n whose child sequence is replaced by
// children. Scalars are returned unchanged.
func (n *Node) WithChildren(children []*Node) *Node {
	if !n.Kind.IsContainer() {
		return n
	}
	c := *n
	if children == nil {
		children = []*Node{}
	}
	if n.Kind == KindObject {
		c.Properties = children
	} else {
		c.Elements = children
	}
	return &c
}

// Walk visits n and every descendant in document order. Returning false from
// fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children() {
		child.Walk(fn)
	}
}

// Retype returns a copy of n switched to kind k. Key and identity are kept;
// the payload is reset to the defaults for k (empty child sequence for
// containers), even when k is the current kind.
func Retype(n *Node, k Kind) *Node {
	c := &Node{ID: n.ID, Key: n.Key, Kind: k}
	resetPayload(c)
	return c
}

func resetPayload(n *Node) {
	n.Value = DefaultScalar(n.Kind)
	n.Properties = nil
	n.Elements = nil
	switch n.Kind {
	case KindObject:
		n.Properties = []*Node{}
	case KindArray:
		n.Elements = []*Node{}
	}
}

// Len returns the number of root elements.
func (r Root) Len() int { return len(r) }

// Walk visits every node reachable from the root in document order.
func (r Root) Walk(fn func(*Node) bool) {
	for _, n := range r {
		n.Walk(fn)
	}
}
