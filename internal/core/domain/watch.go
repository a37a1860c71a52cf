package domain

import "time"

// SaveFileOp describes what happened to a save file.
type SaveFileOp string

const (
	SaveFileCreated SaveFileOp = "created"
	SaveFileWritten SaveFileOp = "written"
	SaveFileRemoved SaveFileOp = "removed"
)

// SaveFileEvent reports a change to a save file in a watched directory.
type SaveFileEvent struct {
	Path string
	Op   SaveFileOp
	At   time.Time
}
