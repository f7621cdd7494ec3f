package codec

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Encode converts a node tree back into a JSON value.
//
// Object properties with an empty key are skipped. When two properties share
// a key the later one wins and the key stays at its first position. Encode
// never looks at identities.
func Encode(n *models.Node) any {
	switch n.Kind {
	case models.KindArray:
		out := make([]any, len(n.Elements))
		for i, el := range n.Elements {
			out[i] = Encode(el)
		}
		return out
	case models.KindObject:
		obj := NewObject()
		for _, child := range n.Properties {
			if child.Key == "" {
				continue
			}
			obj.Set(child.Key, Encode(child))
		}
		return obj
	case models.KindString:
		s, _ := n.Value.AsString()
		return s
	case models.KindNumber:
		lit, ok := n.Value.AsNumber()
		if !ok {
			lit = "0"
		}
		return json.Number(lit)
	case models.KindBoolean:
		b, _ := n.Value.AsBool()
		return b
	case models.KindNull:
		return nil
	}
	panic(fmt.Sprintf("codec: node %v has unknown kind %v", n.ID, n.Kind))
}

// EncodeRoot encodes every root element. The result is never nil, so an
// empty root encodes as an empty array.
func EncodeRoot(root models.Root) []any {
	out := make([]any, len(root))
	for i, n := range root {
		out[i] = Encode(n)
	}
	return out
}
