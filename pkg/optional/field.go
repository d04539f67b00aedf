// Package optional tracks whether a JSON field was present in a request body.
//
// A Field distinguishes "absent" from "present with the zero value". Nullable
// columns are modelled as Field[*T]: a JSON null is present with a nil value.
// For non-pointer T a JSON null is rejected.
package optional

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// ErrNullNotAllowed is returned when null is decoded into a non-nullable Field.
var ErrNullNotAllowed = errors.New("null is not allowed for this field")

type Field[T any] struct {
	value T
	set   bool
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Absent returns a field that was not supplied.
func Absent[T any]() Field[T] {
	return Field[T]{}
}

func (f Field[T]) IsSet() bool {
	return f.set
}

// Get returns the value and whether it was supplied.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// Value returns the held value; the zero value when absent.
func (f Field[T]) Value() T {
	return f.value
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		if reflect.TypeFor[T]().Kind() != reflect.Pointer {
			return ErrNullNotAllowed
		}
		var zero T
		f.value = zero
		f.set = true
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

// MarshalJSON writes the value, or null when absent. Use it only where
// absence and null are equivalent on the wire.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
