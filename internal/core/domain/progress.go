package domain

import "fmt"

// LoadStage tags a step of the load pipeline.
type LoadStage int

const (
	LoadInitializing LoadStage = iota
	LoadReadingFile
	LoadReadingParty
	LoadReadingPlayer
	LoadDone
	LoadFailed
)

// Percentage returns the completion reported while in the stage.
func (s LoadStage) Percentage() int {
	switch s {
	case LoadReadingFile:
		return 33
	case LoadReadingParty:
		return 55
	case LoadReadingPlayer:
		return 77
	case LoadDone:
		return 100
	default:
		return 0
	}
}

// Terminal reports whether no stage follows s.
func (s LoadStage) Terminal() bool {
	return s == LoadDone || s == LoadFailed
}

// String returns the stage name.
func (s LoadStage) String() string {
	switch s {
	case LoadInitializing:
		return "initializing"
	case LoadReadingFile:
		return "reading_file"
	case LoadReadingParty:
		return "reading_party"
	case LoadReadingPlayer:
		return "reading_player"
	case LoadDone:
		return "done"
	case LoadFailed:
		return "error"
	default:
		return "unknown"
	}
}

// LoadProgress is one event of the load progress stream. Result is set on
// LoadDone only and Err on LoadFailed only.
type LoadProgress struct {
	Stage  LoadStage
	Result *LoadResult
	Err    error
}

// Percentage returns the completion of the stage.
func (p LoadProgress) Percentage() int {
	return p.Stage.Percentage()
}

// Description returns a short human-readable label.
func (p LoadProgress) Description() string {
	switch p.Stage {
	case LoadInitializing:
		return "Initialized"
	case LoadReadingFile:
		return "Reading file from disk"
	case LoadReadingParty:
		return "Parsing the party information"
	case LoadReadingPlayer:
		return "Parsing the player information"
	case LoadDone:
		return "All done !"
	case LoadFailed:
		return fmt.Sprintf("Error: %v", p.Err)
	default:
		return ""
	}
}

// SaveStage tags a step of the save pipeline.
type SaveStage int

const (
	SaveLoadingArchive SaveStage = iota
	SaveExtractingPlayer
	SaveExtractingParty
	SaveExtractingHeader
	SaveApplyingPatches
	SaveSerializingJSON
	SaveWritingArchive
	SaveWritingCustomFiles
	SaveFinishingArchive
	SaveWritingToDisk
)

// SaveStageCount is the number of save stages. Progress displays use it as
// the upper bound, which is reached only once the last stage completes.
const SaveStageCount = 10

// Number returns the zero-based position of the stage.
func (s SaveStage) Number() int {
	return int(s)
}

// String returns the stage name.
func (s SaveStage) String() string {
	switch s {
	case SaveLoadingArchive:
		return "loading_archive"
	case SaveExtractingPlayer:
		return "extracting_player"
	case SaveExtractingParty:
		return "extracting_party"
	case SaveExtractingHeader:
		return "extracting_header"
	case SaveApplyingPatches:
		return "applying_patches"
	case SaveSerializingJSON:
		return "serializing_json"
	case SaveWritingArchive:
		return "writing_archive"
	case SaveWritingCustomFiles:
		return "writing_custom_files"
	case SaveFinishingArchive:
		return "finishing_archive"
	case SaveWritingToDisk:
		return "writing_to_disk"
	default:
		return "unknown"
	}
}

// Description returns a short human-readable label.
func (s SaveStage) Description() string {
	switch s {
	case SaveLoadingArchive:
		return "Loading the original archive"
	case SaveExtractingPlayer:
		return "Extracting the player information"
	case SaveExtractingParty:
		return "Extracting the party information"
	case SaveExtractingHeader:
		return "Extracting the save information"
	case SaveApplyingPatches:
		return "Applying changes"
	case SaveSerializingJSON:
		return "Serializing documents"
	case SaveWritingArchive:
		return "Copying unchanged files"
	case SaveWritingCustomFiles:
		return "Writing edited files"
	case SaveFinishingArchive:
		return "Finishing the archive"
	case SaveWritingToDisk:
		return "Writing to disk"
	default:
		return ""
	}
}

// Percentage returns the completion when entering the stage.
func (s SaveStage) Percentage() int {
	return s.Number() * 100 / SaveStageCount
}
