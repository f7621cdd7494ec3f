package codec

import (
	"bytes"
)

// Member is one key/value entry of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is an ordered JSON object. Setting an existing key replaces its
// value but keeps the key at its first position, the way a JavaScript object
// literal behaves.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an object holding the given members, applied in order
// with Set semantics.
func NewObject(members ...Member) *Object {
	o := &Object{index: make(map[string]int, len(members))}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Set stores v under key. A repeated key keeps its original position and the
// last value written.
func (o *Object) Set(key string, v any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members in order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return append([]Member(nil), o.members...)
}

// MarshalJSON renders the object compactly with its members in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, o, "", 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
