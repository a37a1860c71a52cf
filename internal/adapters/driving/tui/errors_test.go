package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingUpdates_Message(t *testing.T) {
	assert.Contains(t, ErrMissingUpdates.Error(), "update stream")
}
