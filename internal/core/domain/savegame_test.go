package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacter_FindStat(t *testing.T) {
	base := uint64(14)
	c := Character{
		Stats: []Stat{
			{ID: "1", Type: "Strength", BaseValue: &base},
			{ID: "2", Type: "AC"},
		},
	}

	s := c.FindStat("Strength")
	require.NotNil(t, s)
	assert.Equal(t, "1", s.ID)

	assert.Nil(t, c.FindStat("Charisma"))
}

func TestIsRequiredMember(t *testing.T) {
	for _, name := range RequiredMembers {
		assert.True(t, IsRequiredMember(name))
	}
	assert.False(t, IsRequiredMember("area_state.json"))
	assert.False(t, IsRequiredMember("Player.json"))
}

func TestProgressMode_IsValid(t *testing.T) {
	assert.True(t, ProgressAuto.IsValid())
	assert.True(t, ProgressBar.IsValid())
	assert.True(t, ProgressPlain.IsValid())
	assert.False(t, ProgressMode("fancy").IsValid())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, " - Copy", s.CopySuffix)
	assert.Equal(t, " - Edited", s.EditedSuffix)
	assert.Equal(t, 10, s.MaxCopies)
	assert.True(t, s.HistoryEnabled)
	assert.Equal(t, ProgressAuto, s.Progress)
}
