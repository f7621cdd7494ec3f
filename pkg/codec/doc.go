// Package codec converts between JSON values and the document tree.
//
// JSON values are represented with a closed set of Go types: nil, bool,
// json.Number, string, []any and *Object. Object keeps its members in
// insertion order so documents round-trip without reordering keys; plain
// map[string]any values are also accepted on the decode side and are read in
// sorted key order.
//
// Typical usage:
//
//	root, err := codec.ImportRoot(data)   // text -> tree, array root enforced
//	text, err := codec.FormatRoot(root)   // tree -> canonical 2-space JSON
//	dup := codec.Clone(root[0])           // semantic copy with fresh identities
package codec
