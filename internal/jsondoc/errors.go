package jsondoc

import (
	"fmt"
	"strings"
)

// Code classifies a jsondoc failure.
type Code int

const (
	CodeInvalidPointer Code = iota + 1
	CodePointerNotFound
	CodeTypeMismatch
	CodeDeserialization
	CodeUnknownIdentifier
	CodeReferenceTargetMissing
	CodeReferenceChain
	CodeObjectExpected
	CodeArrayExpected
	CodeIdentifierMismatch
	CodeSerialization
)

// String returns the name of the code.
func (c Code) String() string {
	switch c {
	case CodeInvalidPointer:
		return "invalid pointer"
	case CodePointerNotFound:
		return "pointer not found"
	case CodeTypeMismatch:
		return "type mismatch"
	case CodeDeserialization:
		return "deserialization"
	case CodeUnknownIdentifier:
		return "unknown identifier"
	case CodeReferenceTargetMissing:
		return "reference target missing"
	case CodeReferenceChain:
		return "reference chain"
	case CodeObjectExpected:
		return "object expected"
	case CodeArrayExpected:
		return "array expected"
	case CodeIdentifierMismatch:
		return "identifier mismatch"
	case CodeSerialization:
		return "serialization"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is matching on the failure code.
var (
	ErrInvalidPointer         = &Error{Code: CodeInvalidPointer}
	ErrPointerNotFound        = &Error{Code: CodePointerNotFound}
	ErrTypeMismatch           = &Error{Code: CodeTypeMismatch}
	ErrDeserialization        = &Error{Code: CodeDeserialization}
	ErrUnknownIdentifier      = &Error{Code: CodeUnknownIdentifier}
	ErrReferenceTargetMissing = &Error{Code: CodeReferenceTargetMissing}
	ErrReferenceChain         = &Error{Code: CodeReferenceChain}
	ErrObjectExpected         = &Error{Code: CodeObjectExpected}
	ErrArrayExpected          = &Error{Code: CodeArrayExpected}
	ErrIdentifierMismatch     = &Error{Code: CodeIdentifierMismatch}
	ErrSerialization          = &Error{Code: CodeSerialization}
)

// Error describes a failed read, dereference or patch.
type Error struct {
	Code       Code
	Pointer    Pointer
	Identifier Identifier
	// Actual is the kind of the node found, for shape errors.
	Actual Kind
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.String())
	if e.Pointer != "" {
		fmt.Fprintf(&b, " at %q", e.Pointer)
	}
	if e.Identifier != "" {
		fmt.Fprintf(&b, " (id %q)", e.Identifier)
	}
	if e.Actual != KindUnknown {
		fmt.Fprintf(&b, ": found %s", e.Actual)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
