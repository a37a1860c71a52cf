package jsondoc

import (
	"errors"
	"fmt"
)

// Patch is one value replacement to apply to a Document. The concrete kinds
// are created with NoChange, AtPointer, ByIdentifier and AtIdentifierPointer.
//
// Patches never insert or remove container slots, and never add or remove
// identifiers, so a Document's index stays valid after any successful patch.
type Patch interface {
	fmt.Stringer
	apply(d *Document) error
}

type noChange struct{}

// NoChange returns a patch that leaves the document untouched. It stands in
// for disabled or unchanged fields so callers can build uniform lists.
func NoChange() Patch {
	return noChange{}
}

func (noChange) apply(*Document) error { return nil }

// IsNoChange reports whether p is the no-op patch.
func IsNoChange(p Patch) bool {
	_, ok := p.(noChange)
	return ok
}

func (noChange) String() string { return "no change" }

type pointerPatch struct {
	pointer Pointer
	value   any
}

// AtPointer returns a patch writing value at p. The node at p must exist.
func AtPointer(p Pointer, value any) Patch {
	return pointerPatch{pointer: p, value: value}
}

func (pp pointerPatch) apply(d *Document) error {
	value, err := normalize(pp.value)
	if err != nil {
		return &Error{Code: CodeDeserialization, Pointer: pp.pointer, Err: err}
	}
	return d.replace(pp.pointer, value)
}

func (pp pointerPatch) String() string {
	return fmt.Sprintf("set %s", displayPointer(pp.pointer))
}

type identifierPatch struct {
	id    Identifier
	value map[string]any
}

// ByIdentifier returns a patch replacing the object declaring id with value.
//
// value must encode as a JSON object. When it has no $id member one is
// injected; when it declares a different identifier the patch is refused
// with ErrIdentifierMismatch.
func ByIdentifier(id Identifier, value any) (Patch, error) {
	normalized, err := normalize(value)
	if err != nil {
		return nil, &Error{Code: CodeDeserialization, Identifier: id, Err: err}
	}

	obj, ok := normalized.(map[string]any)
	if !ok {
		return nil, &Error{Code: CodeObjectExpected, Identifier: id, Actual: KindOf(normalized)}
	}

	switch declared := obj[IDField].(type) {
	case nil:
		obj[IDField] = string(id)
	case string:
		if Identifier(declared) != id {
			return nil, &Error{
				Code:       CodeIdentifierMismatch,
				Identifier: id,
				Err:        fmt.Errorf("payload declares %q", declared),
			}
		}
	default:
		return nil, &Error{Code: CodeIdentifierMismatch, Identifier: id, Actual: KindOf(declared)}
	}

	return identifierPatch{id: id, value: obj}, nil
}

func (ip identifierPatch) apply(d *Document) error {
	p, err := d.PointerFor(ip.id)
	if err != nil {
		return err
	}
	// Copy so the same patch can be applied to more than one document.
	value, err := normalize(ip.value)
	if err != nil {
		return &Error{Code: CodeDeserialization, Pointer: p, Identifier: ip.id, Err: err}
	}
	if err := d.replace(p, value); err != nil {
		return withIdentifier(err, ip.id)
	}
	return nil
}

func (ip identifierPatch) String() string {
	return fmt.Sprintf("replace object %s", ip.id)
}

type identifierPointerPatch struct {
	id      Identifier
	pointer Pointer
	value   any
}

// AtIdentifierPointer returns a patch writing value at rel, a pointer
// relative to the object declaring id.
func AtIdentifierPointer(id Identifier, rel Pointer, value any) Patch {
	return identifierPointerPatch{id: id, pointer: rel, value: value}
}

func (ipp identifierPointerPatch) apply(d *Document) error {
	base, err := d.PointerFor(ipp.id)
	if err != nil {
		return err
	}
	target := base.Join(ipp.pointer)

	value, err := normalize(ipp.value)
	if err != nil {
		return &Error{Code: CodeDeserialization, Pointer: target, Identifier: ipp.id, Err: err}
	}
	if err := d.replace(target, value); err != nil {
		return withIdentifier(err, ipp.id)
	}
	return nil
}

func (ipp identifierPointerPatch) String() string {
	return fmt.Sprintf("set %s under object %s", displayPointer(ipp.pointer), ipp.id)
}

func withIdentifier(err error, id Identifier) error {
	var e *Error
	if errors.As(err, &e) && e.Identifier == "" {
		e.Identifier = id
	}
	return err
}

func displayPointer(p Pointer) string {
	if p.IsRoot() {
		return "(root)"
	}
	return string(p)
}
