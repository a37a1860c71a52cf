package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrMissingMember", ErrMissingMember},
		{"ErrNotificationsClosed", ErrNotificationsClosed},
		{"ErrNoAvailableName", ErrNoAvailableName},
		{"ErrUnsupportedField", ErrUnsupportedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrMissingMember,
		ErrNotificationsClosed,
		ErrNoAvailableName,
		ErrUnsupportedField,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

func TestSaveError_Message(t *testing.T) {
	err := &SaveError{Kind: ErrorKindArchive, File: "player.json", Err: ErrMissingMember}
	assert.Equal(t, "archive error in player.json: file not found in archive", err.Error())

	err = &SaveError{Kind: ErrorKindIO, Err: errors.New("disk full")}
	assert.Equal(t, "io error: disk full", err.Error())
}

func TestNewSaveError(t *testing.T) {
	assert.Nil(t, NewSaveError(ErrorKindIO, "", nil))

	err := NewSaveError(ErrorKindArchive, "party.json", ErrMissingMember)
	assert.ErrorIs(t, err, ErrMissingMember)
	assert.True(t, IsKind(err, ErrorKindArchive))
	assert.False(t, IsKind(err, ErrorKindIO))

	// An existing SaveError keeps its original classification.
	rewrapped := NewSaveError(ErrorKindIO, "", err)
	assert.Same(t, err, rewrapped)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "io", ErrorKindIO.String())
	assert.Equal(t, "archive", ErrorKindArchive.String())
	assert.Equal(t, "deserialization", ErrorKindDeserialization.String())
	assert.Equal(t, "json", ErrorKindJSON.String())
	assert.Equal(t, "notifications", ErrorKindNotifications.String())
	assert.Equal(t, "canceled", ErrorKindCanceled.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
