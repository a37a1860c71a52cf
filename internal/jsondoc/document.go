package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"slices"
	"strconv"
)

const (
	// IDField names the member declaring an object's identifier.
	IDField = "$id"
	// RefField names the member of a reference stub.
	RefField = "$ref"
)

// Document is a parsed JSON tree plus an index from every declared
// identifier to the pointer of the object declaring it.
//
// A Document is not safe for concurrent use.
type Document struct {
	root  any
	index map[Identifier]Pointer
}

// New indexes root with a single depth-first walk. The tree is not copied;
// the Document takes ownership of it.
func New(root any) *Document {
	d := &Document{
		root:  root,
		index: make(map[Identifier]Pointer),
	}
	buildIndex(root, Root, d.index)
	return d
}

// Parse decodes data and indexes the resulting tree.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &Error{Code: CodeDeserialization, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &Error{Code: CodeDeserialization, Err: errors.New("unexpected data after top-level value")}
	}
	return New(root), nil
}

// Root returns the live tree. Callers must not change its shape.
func (d *Document) Root() any {
	return d.root
}

// Len returns the number of indexed identifiers.
func (d *Document) Len() int {
	return len(d.index)
}

// Identifiers returns the indexed identifiers in ascending order.
func (d *Document) Identifiers() []Identifier {
	return slices.Sorted(maps.Keys(d.index))
}

// PointerFor returns the pointer of the object declaring id.
func (d *Document) PointerFor(id Identifier) (Pointer, error) {
	p, ok := d.index[id]
	if !ok {
		return "", &Error{Code: CodeUnknownIdentifier, Identifier: id}
	}
	return p, nil
}

// Dereference returns the node a reference stub stands for, or node itself
// when it is an object without a $ref member. at is the location node was
// read from and is only used to label errors.
//
// Resolution is one level deep: a stub whose target is itself a stub fails
// with ErrReferenceChain.
func (d *Document) Dereference(node any, at Pointer) (any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, &Error{Code: CodeObjectExpected, Pointer: at, Actual: KindOf(node)}
	}

	ref, ok := obj[RefField].(string)
	if !ok {
		return node, nil
	}

	id := Identifier(ref)
	target, ok := d.index[id]
	if !ok {
		return nil, &Error{Code: CodeReferenceTargetMissing, Pointer: at, Identifier: id}
	}

	resolved, err := lookup(d.root, target)
	if err != nil {
		return nil, &Error{Code: CodeReferenceTargetMissing, Pointer: at, Identifier: id, Err: err}
	}
	if isStub(resolved) {
		return nil, &Error{Code: CodeReferenceChain, Pointer: target, Identifier: id}
	}
	return resolved, nil
}

// Resolve reads the node at p and dereferences it.
func (d *Document) Resolve(p Pointer) (any, error) {
	node, err := lookup(d.root, p)
	if err != nil {
		return nil, err
	}
	return d.Dereference(node, p)
}

// Patch applies one patch. A nil patch is a no-op.
func (d *Document) Patch(p Patch) error {
	if p == nil {
		return nil
	}
	return p.apply(d)
}

// Bytes serialises the current tree.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.root); err != nil {
		return nil, &Error{Code: CodeSerialization, Err: err}
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// replace swaps the node at p for value. The identifiers declared below p,
// and where they sit relative to p, must be the same before and after.
func (d *Document) replace(p Pointer, value any) error {
	tokens, err := p.Tokens()
	if err != nil {
		return err
	}

	current, ok := walk(d.root, tokens)
	if !ok {
		return &Error{Code: CodePointerNotFound, Pointer: p}
	}
	if len(tokens) > 0 && tokens[len(tokens)-1] == IDField {
		return &Error{Code: CodeIdentifierMismatch, Pointer: p, Err: errors.New("identifier members cannot be patched")}
	}
	if !maps.Equal(identifiersBelow(current), identifiersBelow(value)) {
		return &Error{Code: CodeIdentifierMismatch, Pointer: p}
	}

	if len(tokens) == 0 {
		d.root = value
		return nil
	}

	parent, _ := walk(d.root, tokens[:len(tokens)-1])
	last := tokens[len(tokens)-1]
	switch node := parent.(type) {
	case map[string]any:
		node[last] = value
	case []any:
		idx, _ := arrayIndex(node, last)
		node[idx] = value
	}
	return nil
}

func buildIndex(node any, at Pointer, index map[Identifier]Pointer) {
	switch n := node.(type) {
	case []any:
		for i, v := range n {
			buildIndex(v, at.Child(strconv.Itoa(i)), index)
		}
	case map[string]any:
		if id, ok := n[IDField].(string); ok {
			index[Identifier(id)] = at
		}
		for _, key := range slices.Sorted(maps.Keys(n)) {
			if key == IDField {
				continue
			}
			buildIndex(n[key], at.Child(key), index)
		}
	}
}

func walk(node any, tokens []string) (any, bool) {
	for _, tok := range tokens {
		switch n := node.(type) {
		case map[string]any:
			v, ok := n[tok]
			if !ok {
				return nil, false
			}
			node = v
		case []any:
			idx, ok := arrayIndex(n, tok)
			if !ok {
				return nil, false
			}
			node = n[idx]
		default:
			return nil, false
		}
	}
	return node, true
}

func arrayIndex(arr []any, tok string) (int, bool) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(tok)
	if err != nil || idx >= len(arr) {
		return 0, false
	}
	return idx, true
}

func isStub(node any) bool {
	obj, ok := node.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj[RefField].(string)
	return ok
}

// identifiersBelow maps every identifier declared in node to its pointer
// relative to node.
func identifiersBelow(node any) map[Identifier]Pointer {
	ids := make(map[Identifier]Pointer)
	buildIndex(node, Root, ids)
	return ids
}

// normalize deep-copies v into the tree representation produced by Parse.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
