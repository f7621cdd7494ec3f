package models

import (
	"fmt"
	"strings"
)

// Kind identifies which JSON value a Node holds.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindNull
	KindObject
	KindArray
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindNull:    "null",
	KindObject:  "object",
	KindArray:   "array",
}

// Kinds returns every kind in the order the editor offers them.
func Kinds() []Kind {
	return []Kind{KindString, KindNumber, KindBoolean, KindObject, KindArray, KindNull}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsContainer reports whether nodes of this kind own a child sequence.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}

// IsScalar reports whether nodes of this kind carry a Scalar payload.
func (k Kind) IsScalar() bool {
	_, known := kindNames[k]
	return known && !k.IsContainer()
}

// Next returns the kind following k in Kinds order, wrapping around.
func (k Kind) Next() Kind {
	all := Kinds()
	for i, c := range all {
		if c == k {
			return all[(i+1)%len(all)]
		}
	}
	return KindString
}

// Prev returns the kind preceding k in Kinds order, wrapping around.
func (k Kind) Prev() Kind {
	all := Kinds()
	for i, c := range all {
		if c == k {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return KindString
}

// ParseKind converts a kind name (case-insensitive) back into a Kind.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "bool" {
		normalized = "boolean"
	}
	for k, name := range kindNames {
		if name == normalized {
			return k, nil
		}
	}
	return KindString, fmt.Errorf("unknown kind: %s (must be: string, number, boolean, null, object, or array)", s)
}
