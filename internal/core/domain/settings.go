package domain

// ProgressMode selects how the CLI renders pipeline progress.
type ProgressMode string

const (
	// ProgressAuto renders a bar on terminals and plain lines otherwise.
	ProgressAuto ProgressMode = "auto"
	// ProgressBar always renders an interactive bar.
	ProgressBar ProgressMode = "bar"
	// ProgressPlain renders one line per stage.
	ProgressPlain ProgressMode = "plain"
)

// IsValid reports whether m is a known mode.
func (m ProgressMode) IsValid() bool {
	switch m {
	case ProgressAuto, ProgressBar, ProgressPlain:
		return true
	default:
		return false
	}
}

// AppSettings holds user configuration.
type AppSettings struct {
	// SavesDirectory is the default directory for inspect and watch.
	SavesDirectory string
	// CopySuffix is appended to the original file stem for the output archive.
	CopySuffix string
	// EditedSuffix is appended to the header display name of an edited save.
	EditedSuffix string
	// MaxCopies bounds the numbered output names tried before giving up.
	MaxCopies int
	// HistoryEnabled turns save history recording on.
	HistoryEnabled bool
	Progress       ProgressMode
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		CopySuffix:     " - Copy",
		EditedSuffix:   " - Edited",
		MaxCopies:      10,
		HistoryEnabled: true,
		Progress:       ProgressAuto,
	}
}
