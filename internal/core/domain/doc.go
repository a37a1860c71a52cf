// Package domain defines the core entities of the save editor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Header, Party, Player: records projected from a save's JSON documents
//   - LoadStage, SaveStage: progress tags emitted by the pipelines
//   - SaveError: the failure reported by a load or save
//   - SaveRecord: one completed save, as kept in the history
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
