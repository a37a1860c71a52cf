package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pipeline failure by the layer it came from.
type ErrorKind int

const (
	// ErrorKindIO covers reading or writing files on disk.
	ErrorKindIO ErrorKind = iota + 1
	// ErrorKindArchive covers opening the container or missing members.
	ErrorKindArchive
	// ErrorKindDeserialization covers member bytes that are not valid JSON.
	ErrorKindDeserialization
	// ErrorKindJSON covers addressing failures: pointers, identifiers, references, shapes.
	ErrorKindJSON
	// ErrorKindNotifications covers a progress observer that went away.
	ErrorKindNotifications
	// ErrorKindCanceled covers a context cancelled between stages.
	ErrorKindCanceled
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindIO:
		return "io"
	case ErrorKindArchive:
		return "archive"
	case ErrorKindDeserialization:
		return "deserialization"
	case ErrorKindJSON:
		return "json"
	case ErrorKindNotifications:
		return "notifications"
	case ErrorKindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// SaveError is the terminal failure of a load or save.
type SaveError struct {
	Kind ErrorKind
	// File is the archive member involved, when there is one.
	File string
	Err  error
}

// NewSaveError wraps err. It returns nil when err is nil.
func NewSaveError(kind ErrorKind, file string, err error) error {
	if err == nil {
		return nil
	}
	var existing *SaveError
	if errors.As(err, &existing) {
		return err
	}
	return &SaveError{Kind: kind, File: file, Err: err}
}

func (e *SaveError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s error in %s: %v", e.Kind, e.File, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a *SaveError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *SaveError
	return errors.As(err, &se) && se.Kind == kind
}
