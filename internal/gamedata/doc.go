// Package gamedata translates the save's indexed JSON documents into domain
// records, and domain edits back into jsondoc patches.
//
// Readers follow $ref stubs one level wherever the game is known to share
// objects (party units, stats, kingdom resource pools). Patch builders
// address the object that owns a field by its identifier, so edits stay
// valid however the owning object is reached in the tree.
package gamedata
