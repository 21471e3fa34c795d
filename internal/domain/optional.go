package domain

import (
	"bytes"
	"encoding/json"
)

// Optional carries a value together with whether the caller supplied it.
// A JSON null is recorded as present-but-null and treated like an absent field
// when applied.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Get returns the value and true when it was supplied and non-null.
func (o Optional[T]) Get() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// IsSet reports whether a non-null value was supplied.
func (o Optional[T]) IsSet() bool {
	return o.present && !o.null
}

// Present reports whether the field appeared in the input at all, null included.
func (o Optional[T]) Present() bool {
	return o.present
}

// IsNull reports whether the field was explicitly null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// UnmarshalJSON implements json.Unmarshaler. It only runs for keys present in
// the payload, which is what makes absence observable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
