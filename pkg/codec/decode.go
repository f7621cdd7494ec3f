package codec

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Decode builds a node tree for v. key is carried by the returned node; array
// elements always receive an empty key. Every node gets a fresh identity.
//
// Decode panics when v is not a JSON value, which can only happen when a
// caller hands it a Go value that no parser produces.
func Decode(v any, key string) *models.Node {
	switch x := v.(type) {
	case nil:
		return models.NewNull(key)
	case bool:
		return models.NewBoolean(key, x)
	case string:
		return models.NewString(key, x)
	case json.Number:
		return numberNode(key, string(x))
	case []any:
		elements := make([]*models.Node, len(x))
		for i, item := range x {
			elements[i] = Decode(item, "")
		}
		return models.NewArray(key, elements...)
	case *Object:
		props := make([]*models.Node, 0, x.Len())
		for _, m := range x.Members() {
			props = append(props, Decode(m.Value, m.Key))
		}
		return models.NewObject(key, props...)
	case map[string]any:
		props := make([]*models.Node, 0, len(x))
		for _, m := range sortedMembers(x) {
			props = append(props, Decode(m.Value, m.Key))
		}
		return models.NewObject(key, props...)
	}
	if n, ok := numberFromGo(v); ok {
		return numberNode(key, string(n))
	}
	panic(fmt.Sprintf("codec: cannot decode %T as a JSON value", v))
}

func numberNode(key, literal string) *models.Node {
	s, err := models.NumberLiteral(literal)
	if err != nil {
		panic(fmt.Sprintf("codec: %v", err))
	}
	return &models.Node{ID: models.NextID(), Key: key, Kind: models.KindNumber, Value: s}
}

// DecodeRoot decodes a top-level array into a root collection. Any other
// value fails with models.ErrInvalidRootShape.
func DecodeRoot(v any) (models.Root, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", models.ErrInvalidRootShape, Describe(v))
	}
	root := make(models.Root, len(items))
	for i, item := range items {
		root[i] = Decode(item, "")
	}
	return root, nil
}

// ImportRoot parses JSON text and decodes it as a root collection.
func ImportRoot(data []byte, opts ...ParseOption) (models.Root, error) {
	v, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeRoot(v)
}

// Clone returns a semantic copy of n: the subtree is encoded and decoded
// again, so every node of the copy has a fresh identity and no structure is
// shared with n. The copy keeps n's key.
func Clone(n *models.Node) *models.Node {
	return Decode(Encode(n), n.Key)
}

// Describe names the JSON type of v for error messages.
func Describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case *Object, map[string]any:
		return "object"
	}
	if _, ok := numberFromGo(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
