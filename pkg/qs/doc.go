// Package qs decodes URL query strings and form fields into nested values
// using bracket notation.
//
//	a=1&a=2            {"a": ["1", "2"]}
//	a[]=1&a[]=2        {"a": ["1", "2"]}
//	a[b][c]=x          {"a": {"b": {"c": "x"}}}
//	a[1]=x&a[5]=y      {"a": ["x", "y"]}
//	a[21]=x            {"a": {"21": "x"}}
//
// Keys are expanded up to Options.Depth bracket levels; deeper brackets are
// kept as a single literal key. Explicit indices above Options.ArrayLimit
// become map keys. Sparse indices are compacted in index order.
//
// When one key is used with incompatible shapes, both values are kept: a
// scalar followed by a nested key produces a sequence holding the scalar and
// the mapping. A sequence that later receives a non-numeric key becomes a
// mapping keyed by the former indices.
//
// Decoding never fails. Invalid percent escapes are kept as typed, and pairs
// without "=" decode to the empty string. All leaves are strings; typing is
// left to the coerce package.
package qs
