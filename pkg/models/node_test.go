package models

import (
	"testing"
)

func TestNewNodeDefaults(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		wantText string
	}{
		{name: "string defaults to empty", kind: KindString, wantText: ""},
		{name: "number defaults to zero", kind: KindNumber, wantText: "0"},
		{name: "boolean defaults to false", kind: KindBoolean, wantText: "false"},
		{name: "null has null payload", kind: KindNull, wantText: "null"},
		{name: "object has no payload", kind: KindObject, wantText: ""},
		{name: "array has no payload", kind: KindArray, wantText: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode(tt.kind, "k")
			if n.Kind != tt.kind {
				t.Fatalf("Expected kind %v, got %v", tt.kind, n.Kind)
			}
			if n.ID == 0 {
				t.Error("Expected a non-zero identity")
			}
			if got := n.Value.Text(); got != tt.wantText {
				t.Errorf("Expected payload text %q, got %q", tt.wantText, got)
			}
			switch tt.kind {
			case KindObject:
				if n.Properties == nil || len(n.Properties) != 0 {
					t.Errorf("Expected empty non-nil properties, got %#v", n.Properties)
				}
				if n.Elements != nil {
					t.Error("Expected object node to have no elements")
				}
			case KindArray:
				if n.Elements == nil || len(n.Elements) != 0 {
					t.Errorf("Expected empty non-nil elements, got %#v", n.Elements)
				}
				if n.Properties != nil {
					t.Error("Expected array node to have no properties")
				}
			default:
				if n.Children() != nil {
					t.Error("Expected scalar node to have no children")
				}
			}
		})
	}
}

func TestRetypeResetsPayload(t *testing.T) {
	sources := []*Node{
		NewString("name", "Example Item"),
		NewNumber("id", 42),
		NewBoolean("active", true),
		NewNull("missing"),
		NewObject("obj", NewString("a", "b")),
		NewArray("arr", NewNumber("", 1), NewNumber("", 2)),
	}

	for _, src := range sources {
		for _, k := range Kinds() {
			t.Run(src.Kind.String()+"->"+k.String(), func(t *testing.T) {
				got := Retype(src, k)
				if got.ID != src.ID {
					t.Errorf("Expected identity %v to be kept, got %v", src.ID, got.ID)
				}
				if got.Key != src.Key {
					t.Errorf("Expected key %q to be kept, got %q", src.Key, got.Key)
				}
				if got.Kind != k {
					t.Fatalf("Expected kind %v, got %v", k, got.Kind)
				}
				switch k {
				case KindObject:
					if len(got.Properties) != 0 || got.Elements != nil {
						t.Errorf("Expected empty object, got props=%v elems=%v", got.Properties, got.Elements)
					}
				case KindArray:
					if len(got.Elements) != 0 || got.Properties != nil {
						t.Errorf("Expected empty array, got props=%v elems=%v", got.Properties, got.Elements)
					}
				case KindNumber:
					if lit, ok := got.Value.AsNumber(); !ok || lit != "0" {
						t.Errorf("Expected number payload 0, got %q", lit)
					}
				}
			})
		}
	}
}

func TestRetypeDoesNotMutateSource(t *testing.T) {
	src := NewObject("", NewString("a", "1"))
	_ = Retype(src, KindArray)

	if src.Kind != KindObject || len(src.Properties) != 1 {
		t.Errorf("Expected source node to be untouched, got kind=%v props=%d", src.Kind, len(src.Properties))
	}
}

func TestIdentityAllocatorIsMonotonic(t *testing.T) {
	var alloc IDAllocator
	seen := map[ID]bool{}
	prev := ID(0)
	for i := 0; i < 100; i++ {
		id := alloc.Next()
		if id <= prev {
			t.Fatalf("Expected increasing ids, got %v after %v", id, prev)
		}
		if seen[id] {
			t.Fatalf("Identity %v allocated twice", id)
		}
		seen[id] = true
		prev = id
	}
}

func TestCloneDoesNotAliasChildren(t *testing.T) {
	orig := NewObject("", NewString("a", "x"))
	c := orig.Clone()
	c.Properties = append(c.Properties, NewString("b", "y"))
	c.Properties[0] = NewString("z", "z")

	if len(orig.Properties) != 1 || orig.Properties[0].Key != "a" {
		t.Errorf("Expected original properties untouched, got %+v", orig.Properties)
	}
	if c.ID != orig.ID {
		t.Error("Expected clone to keep identity")
	}
}

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	root := Root{
		NewObject("", NewString("a", "1"), NewArray("b", NewNumber("", 2))),
		NewObject("", NewNull("c")),
	}
	var keys []string
	root.Walk(func(n *Node) bool {
		keys = append(keys, n.Kind.String()+":"+n.Key)
		return true
	})

	want := []string{"object:", "string:a", "array:b", "number:", "object:", "null:c"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d visits, got %d (%v)", len(want), len(keys), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Visit %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}
