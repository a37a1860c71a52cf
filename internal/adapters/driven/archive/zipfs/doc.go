// Package zipfs implements the save archive ports over ZIP files on the local
// filesystem.
//
// Archives are read fully into memory. Rewritten archives copy untouched
// members as raw compressed bytes, so their data, compression method,
// modification time and mode bits come out exactly as they went in.
package zipfs
