// Package jsondoc models the save-game JSON documents: a parsed tree in which
// any object may declare an identifier ($id) and any object may stand in for
// another through a reference stub ($ref).
//
// The package exposes three layers:
//
//   - Pointer and Identifier: opaque addressing values
//   - Get, Value, Array, Object: typed read helpers over any parsed tree
//   - Document and Patch: an identifier-indexed tree and the value
//     replacements that can be applied to it
//
// # Index Validity
//
// A Document indexes identifiers once, when it is constructed. Patches only
// ever replace the value found at an existing node and are rejected when they
// would add or remove identifiers, so the index stays exact for the whole
// lifetime of the Document.
//
// # Tree Representation
//
// Trees are decoded with json.Decoder.UseNumber, so numbers are held as
// json.Number and re-serialised with their original text. Objects are
// map[string]any and arrays are []any.
package jsondoc
