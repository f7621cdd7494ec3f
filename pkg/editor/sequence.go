// Package editor implements the structural editing operations on a document
// tree. Every operation is pure: the input tree is never modified, untouched
// subtrees are shared with the result and surviving nodes keep their
// identities.
package editor

import (
	"fmt"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// RootObjectKey is the key of the property seeded into a new root object.
const RootObjectKey = "new_key"

// AddRootObject appends a new object holding one empty string property.
func AddRootObject(root models.Root) models.Root {
	obj := models.NewObject("", models.NewString(RootObjectKey, ""))
	out := make(models.Root, 0, len(root)+1)
	out = append(out, root...)
	return append(out, obj)
}

// Sample returns the starting document of a new session: one object with an
// id and a name.
func Sample() models.Root {
	return models.Root{
		models.NewObject("",
			models.NewNumber("id", 1),
			models.NewString("name", "Example Item"),
		),
	}
}

// Clear returns an empty root.
func Clear() models.Root {
	return models.Root{}
}

// RemoveAt returns seq without the element at index.
func RemoveAt(seq []*models.Node, index int) ([]*models.Node, error) {
	if err := checkIndex(index, len(seq)); err != nil {
		return nil, err
	}
	out := make([]*models.Node, 0, len(seq)-1)
	out = append(out, seq[:index]...)
	return append(out, seq[index+1:]...), nil
}

// ReplaceAt returns seq with the element at index replaced by n.
func ReplaceAt(seq []*models.Node, index int, n *models.Node) ([]*models.Node, error) {
	if err := checkIndex(index, len(seq)); err != nil {
		return nil, err
	}
	out := append([]*models.Node{}, seq...)
	out[index] = n
	return out, nil
}

// DuplicateAt inserts a semantic clone of seq[index] right after it. The
// clone keeps the original key and gets fresh identities throughout.
func DuplicateAt(seq []*models.Node, index int) ([]*models.Node, error) {
	if err := checkIndex(index, len(seq)); err != nil {
		return nil, err
	}
	clone := codec.Clone(seq[index])
	out := make([]*models.Node, 0, len(seq)+1)
	out = append(out, seq[:index+1]...)
	out = append(out, clone)
	return append(out, seq[index+1:]...), nil
}

// MoveAt moves the element at from so that it ends up at index to.
func MoveAt(seq []*models.Node, from, to int) ([]*models.Node, error) {
	if err := checkIndex(from, len(seq)); err != nil {
		return nil, err
	}
	if err := checkIndex(to, len(seq)); err != nil {
		return nil, err
	}
	out := append([]*models.Node{}, seq...)
	if from == to {
		return out, nil
	}
	n := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = n
	return out, nil
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: index %d, length %d", models.ErrIndexOutOfRange, index, length)
	}
	return nil
}
