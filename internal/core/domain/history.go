package domain

import "time"

// SaveRecord describes one completed save.
type SaveRecord struct {
	ID            string
	SourcePath    string
	OutputPath    string
	SaveName      string
	PlayerPatches int
	PartyPatches  int
	SavedAt       time.Time
}
