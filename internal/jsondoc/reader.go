package jsondoc

import (
	"encoding/json"
	"reflect"
)

// Get decodes the node at p into a freshly allocated T.
//
// Fails with ErrPointerNotFound when p does not resolve, ErrTypeMismatch when
// the node's kind cannot hold a T and ErrDeserialization when the shape
// matches but a field does not decode.
func Get[T any](root any, p Pointer) (T, error) {
	var out T

	node, err := lookup(root, p)
	if err != nil {
		return out, err
	}

	if !accepts(reflect.TypeOf(&out).Elem(), KindOf(node)) {
		return out, &Error{Code: CodeTypeMismatch, Pointer: p, Actual: KindOf(node)}
	}

	raw, err := json.Marshal(node)
	if err != nil {
		return out, &Error{Code: CodeDeserialization, Pointer: p, Err: err}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &Error{Code: CodeDeserialization, Pointer: p, Err: err}
	}
	return out, nil
}

// Value returns a deep copy of the node at p.
func Value(root any, p Pointer) (any, error) {
	node, err := lookup(root, p)
	if err != nil {
		return nil, err
	}
	copied, err := normalize(node)
	if err != nil {
		return nil, &Error{Code: CodeDeserialization, Pointer: p, Err: err}
	}
	return copied, nil
}

// Array returns the array at p without copying it.
func Array(root any, p Pointer) ([]any, error) {
	node, err := lookup(root, p)
	if err != nil {
		return nil, err
	}
	arr, ok := node.([]any)
	if !ok {
		return nil, &Error{Code: CodeArrayExpected, Pointer: p, Actual: KindOf(node)}
	}
	return arr, nil
}

// Object returns the object at p without copying it.
func Object(root any, p Pointer) (map[string]any, error) {
	node, err := lookup(root, p)
	if err != nil {
		return nil, err
	}
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, &Error{Code: CodeObjectExpected, Pointer: p, Actual: KindOf(node)}
	}
	return obj, nil
}

func lookup(root any, p Pointer) (any, error) {
	parsed, err := p.parse()
	if err != nil {
		return nil, err
	}
	node, _, err := parsed.Get(root)
	if err != nil {
		return nil, &Error{Code: CodePointerNotFound, Pointer: p, Err: err}
	}
	return node, nil
}

// accepts reports whether a node of kind k can decode into t.
func accepts(t reflect.Type, k Kind) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Pointer:
		return k == KindNull || accepts(t.Elem(), k)
	}

	if t == numberType {
		return k == KindNumber || k == KindString
	}
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return true
	}

	switch t.Kind() {
	case reflect.Bool:
		return k == KindBool
	case reflect.String:
		return k == KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return k == KindNumber
	case reflect.Slice, reflect.Array:
		return k == KindArray || (k == KindNull && t.Kind() == reflect.Slice)
	case reflect.Map:
		return k == KindObject || k == KindNull
	case reflect.Struct:
		return k == KindObject
	default:
		return false
	}
}

var (
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	numberType      = reflect.TypeOf(json.Number(""))
)
