package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

func TestSetCmd_Use(t *testing.T) {
	assert.Equal(t, "set <save>", setCmd.Use)
}

func TestSetCmd_BuildsPatches(t *testing.T) {
	env := setupCLITest(t)

	out, err := execute(t, "set", "/saves/Quick.zks",
		"--money", "99999",
		"--resource", "Finances=500",
		"--resource-per-turn", "mana=7",
		"--xp", "Seelah=250000",
		"--mythic-xp", "2=40",
		"--stat", "Seelah:Strength=18",
	)

	require.NoError(t, err)
	require.Len(t, env.writer.requests, 1)
	req := env.writer.requests[0]
	assert.Equal(t, "/saves/Quick.zks", req.ArchivePath)

	require.Len(t, req.PlayerPatches, 3)
	assert.Equal(t, "set /Money under object 1", req.PlayerPatches[0].String())
	assert.Equal(t, "set /m_Finances under object 41", req.PlayerPatches[1].String())
	assert.Equal(t, "set /m_Mana under object 42", req.PlayerPatches[2].String())

	require.Len(t, req.PartyPatches, 3)
	assert.Equal(t, "set /Descriptor/Progression/Experience under object 2", req.PartyPatches[0].String())
	assert.Equal(t, "set /Descriptor/Progression/MythicExperience under object 2", req.PartyPatches[1].String())
	assert.Equal(t, "set /m_BaseValue under object 6", req.PartyPatches[2].String())

	assert.Contains(t, out, `Saved "Drezen Siege - Edited" to /saves/Quick - Copy.zks`)
	assert.Contains(t, out, "[ 40%] Applying changes")
}

func TestSetCmd_PrintsHistoryRecord(t *testing.T) {
	env := setupCLITest(t)
	env.writer.result.RecordID = "rec-1"

	out, err := execute(t, "set", "/saves/Quick.zks", "--money", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "History record: rec-1")
}

func TestSetCmd_ZeroMoneyIsAnEdit(t *testing.T) {
	env := setupCLITest(t)

	_, err := execute(t, "set", "/saves/Quick.zks", "--money", "0")

	require.NoError(t, err)
	require.Len(t, env.writer.requests, 1)
	assert.Len(t, env.writer.requests[0].PlayerPatches, 1)
}

func TestSetCmd_NothingToChange(t *testing.T) {
	env := setupCLITest(t)

	_, err := execute(t, "set", "/saves/Quick.zks")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.writer.requests)
}

func TestSetCmd_UnknownCharacter(t *testing.T) {
	env := setupCLITest(t)

	_, err := execute(t, "set", "/saves/Quick.zks", "--xp", "Arueshalae=5")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, env.writer.requests)
}

func TestSetCmd_UnknownResource(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "set", "/saves/Quick.zks", "--resource", "gold=5")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetCmd_NoMythicProgression(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "set", "/saves/Quick.zks", "--mythic-xp", "9=5")

	assert.ErrorIs(t, err, domain.ErrUnsupportedField)
}

func TestSetCmd_SaveError(t *testing.T) {
	env := setupCLITest(t)
	env.writer.err = domain.NewSaveError(domain.ErrorKindIO, "", errors.New("disk full"))

	_, err := execute(t, "set", "/saves/Quick.zks", "--money", "5")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrorKindIO))
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in      string
		key     string
		value   uint64
		wantErr bool
	}{
		{in: "Seelah=100", key: "Seelah", value: 100},
		{in: " Seelah = 7 ", key: "Seelah", value: 7},
		{in: "a=b=3", key: "a=b", value: 3},
		{in: "=3", wantErr: true},
		{in: "Seelah", wantErr: true},
		{in: "Seelah=-1", wantErr: true},
		{in: "Seelah=lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, value, err := parseAssignment(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestStatEdit_BadFormat(t *testing.T) {
	party := testLoadResult().Party

	for _, in := range []string{"Strength=3", ":Strength=3", "Seelah:=3"} {
		_, err := statEdit(party, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}

func TestStatEdit_UnknownStat(t *testing.T) {
	party := testLoadResult().Party

	_, err := statEdit(party, "Seelah:Charisma=3")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
