package gamedata

import (
	"errors"

	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

// canonical returns the pointer of the object found at p, following a
// reference stub to the object it stands for.
func canonical(doc *jsondoc.Document, p jsondoc.Pointer) (jsondoc.Pointer, error) {
	obj, err := jsondoc.Object(doc.Root(), p)
	if err != nil {
		return "", err
	}
	ref, ok := obj[jsondoc.RefField].(string)
	if !ok {
		return p, nil
	}
	if _, err := doc.Dereference(obj, p); err != nil {
		return "", err
	}
	return doc.PointerFor(jsondoc.Identifier(ref))
}

// optional reads an optional field: a missing member or null yields nil.
func optional[T any](doc *jsondoc.Document, p jsondoc.Pointer) (*T, error) {
	v, err := jsondoc.Get[*T](doc.Root(), p)
	if errors.Is(err, jsondoc.ErrPointerNotFound) {
		return nil, nil
	}
	return v, err
}

func identifierAt(doc *jsondoc.Document, p jsondoc.Pointer) (string, error) {
	id, err := optional[string](doc, p.Child(jsondoc.IDField))
	if err != nil || id == nil {
		return "", err
	}
	return *id, nil
}
