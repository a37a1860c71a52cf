package tui

import "errors"

// ErrMissingUpdates is returned when no update stream is provided.
var ErrMissingUpdates = errors.New("tui: update stream is required")
