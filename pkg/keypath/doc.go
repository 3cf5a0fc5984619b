// Package keypath resolves parameter keys against decoded request data.
//
// A plain key ("page") is a single map lookup. A dotted key ("filter.status")
// walks nested mappings one segment at a time; numeric segments index into
// sequences ("items.0.id"). Resolution stops at the first missing segment and
// reports Missing, which callers treat exactly like an absent key.
package keypath
