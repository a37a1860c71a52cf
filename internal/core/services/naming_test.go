package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		original string
		expected string
	}{
		{"/tmp/Save Game.zks", "/tmp/Save Game - Copy.zks"},
		{"/saves/Quick.Save.zks", "/saves/Quick.Save - Copy.zks"},
		{"/saves/noext", "/saves/noext - Copy.zks"},
		{"relative.zks", "relative - Copy.zks"},
		{"", "Unknown Save Name.zks"},
		{"/", "/Unknown Save Name.zks"},
		{"/saves/.zks", "/saves/Unknown Save Name.zks"},
	}

	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.expected), OutputPath(filepath.FromSlash(tt.original)))
		})
	}
}

func TestNaming_Candidate(t *testing.T) {
	n := Naming{CopySuffix: " - Copy", EditedSuffix: " - Edited", MaxCopies: 3}

	assert.Equal(t, filepath.FromSlash("/tmp/Save Game - Copy.zks"), n.Candidate("/tmp/Save Game.zks", 1))
	assert.Equal(t, filepath.FromSlash("/tmp/Save Game - Copy 2.zks"), n.Candidate("/tmp/Save Game.zks", 2))
	assert.Equal(t, "Unknown Save Name 3.zks", n.Candidate("", 3))
}

func TestNaming_EditedName(t *testing.T) {
	n := DefaultNaming()

	assert.Equal(t, "Drezen - Edited", n.EditedName("Drezen", 1))
	assert.Equal(t, "Drezen - Edited 4", n.EditedName("Drezen", 4))
}

func TestNaming_FindOutput(t *testing.T) {
	n := Naming{CopySuffix: " - Copy", MaxCopies: 3}
	taken := map[string]bool{
		filepath.FromSlash("/s/a - Copy.zks"): true,
	}
	exists := func(p string) (bool, error) { return taken[p], nil }

	path, attempt, err := n.findOutput(exists, filepath.FromSlash("/s/a.zks"))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/s/a - Copy 2.zks"), path)
	assert.Equal(t, 2, attempt)
}

func TestNaming_FindOutput_Exhausted(t *testing.T) {
	n := Naming{CopySuffix: " - Copy", MaxCopies: 2}
	exists := func(string) (bool, error) { return true, nil }

	_, _, err := n.findOutput(exists, "/s/a.zks")

	assert.ErrorIs(t, err, domain.ErrNoAvailableName)
	assert.True(t, domain.IsKind(err, domain.ErrorKindIO))
}

func TestNaming_FindOutput_StatError(t *testing.T) {
	n := DefaultNaming()
	exists := func(string) (bool, error) { return false, errors.New("permission denied") }

	_, _, err := n.findOutput(exists, "/s/a.zks")

	assert.True(t, domain.IsKind(err, domain.ErrorKindIO))
}

func TestNamingFromSettings(t *testing.T) {
	s := domain.DefaultAppSettings()
	s.CopySuffix = " (edited)"
	s.MaxCopies = 0

	n := NamingFromSettings(s)

	assert.Equal(t, " (edited)", n.CopySuffix)
	assert.Equal(t, 1, n.MaxCopies)
}
