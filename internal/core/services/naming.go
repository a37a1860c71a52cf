package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

const (
	// SaveExtension is the extension of every archive the editor writes.
	SaveExtension = ".zks"

	// UnknownSaveName stands in for a stem that cannot be determined.
	UnknownSaveName = "Unknown Save Name"
)

// Naming controls the names given to edited saves.
type Naming struct {
	CopySuffix   string
	EditedSuffix string
	MaxCopies    int
}

// DefaultNaming returns the naming of a default configuration.
func DefaultNaming() Naming {
	return NamingFromSettings(domain.DefaultAppSettings())
}

// NamingFromSettings extracts the naming settings.
func NamingFromSettings(s domain.AppSettings) Naming {
	n := Naming{CopySuffix: s.CopySuffix, EditedSuffix: s.EditedSuffix, MaxCopies: s.MaxCopies}
	if n.MaxCopies < 1 {
		n.MaxCopies = 1
	}
	return n
}

// OutputPath returns the sibling path an edited copy of original is written
// to with the default suffix, e.g. "/tmp/Save Game - Copy.zks".
func OutputPath(original string) string {
	return DefaultNaming().Candidate(original, 1)
}

// Candidate returns the n-th output path for original, counting from 1.
// Later candidates carry a number: "Save Game - Copy 2.zks".
func (n Naming) Candidate(original string, attempt int) string {
	dir := filepath.Dir(original)

	var name string
	if stem := fileStem(original); stem != "" {
		name = stem + n.CopySuffix
	} else {
		name = UnknownSaveName
	}
	if attempt > 1 {
		name = fmt.Sprintf("%s %d", name, attempt)
	}
	return filepath.Join(dir, name+SaveExtension)
}

// EditedName returns the display name of the n-th copy of a save named name.
func (n Naming) EditedName(name string, attempt int) string {
	edited := name + n.EditedSuffix
	if attempt > 1 {
		edited = fmt.Sprintf("%s %d", edited, attempt)
	}
	return edited
}

// findOutput returns the first candidate path that does not exist yet.
func (n Naming) findOutput(exists func(string) (bool, error), original string) (string, int, error) {
	for attempt := 1; attempt <= n.MaxCopies; attempt++ {
		path := n.Candidate(original, attempt)
		taken, err := exists(path)
		if err != nil {
			return "", 0, domain.NewSaveError(domain.ErrorKindIO, "", err)
		}
		if !taken {
			return path, attempt, nil
		}
	}
	return "", 0, domain.NewSaveError(domain.ErrorKindIO, "",
		fmt.Errorf("%w: %d copies of %s exist", domain.ErrNoAvailableName, n.MaxCopies, filepath.Base(original)))
}

func fileStem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
