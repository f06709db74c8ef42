package domain

import (
	"bytes"
	"encoding/json"
)

// Optional holds a value that may be absent. The zero value is absent.
// JSON null and a missing key both decode to absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr maps nil to absent and anything else to present.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
