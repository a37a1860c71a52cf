package jsondoc

import (
	"strings"

	"github.com/go-openapi/jsonpointer"
)

// Root points at the top-level node of a tree.
const Root Pointer = ""

// Pointer is a JSON pointer (RFC 6901) into one specific tree.
type Pointer string

// Identifier is the value of an object's $id field. It is unique within the
// document that declares it.
type Identifier string

// String returns the pointer text.
func (p Pointer) String() string {
	return string(p)
}

// IsRoot reports whether p addresses the top-level node.
func (p Pointer) IsRoot() bool {
	return p == Root
}

// Child returns the pointer to the member named token below p.
func (p Pointer) Child(token string) Pointer {
	return p + "/" + Pointer(jsonpointer.Escape(token))
}

// Join appends the relative pointer rel to p. A leading slash on rel is
// optional.
func (p Pointer) Join(rel Pointer) Pointer {
	if rel == Root {
		return p
	}
	if !strings.HasPrefix(string(rel), "/") {
		rel = "/" + rel
	}
	return p + rel
}

// Tokens returns the decoded reference tokens of p.
func (p Pointer) Tokens() ([]string, error) {
	parsed, err := p.parse()
	if err != nil {
		return nil, err
	}
	return parsed.DecodedTokens(), nil
}

func (p Pointer) parse() (jsonpointer.Pointer, error) {
	parsed, err := jsonpointer.New(string(p))
	if err != nil {
		return jsonpointer.Pointer{}, &Error{Code: CodeInvalidPointer, Pointer: p, Err: err}
	}
	return parsed, nil
}

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}
