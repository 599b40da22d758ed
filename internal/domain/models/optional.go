package models

import "encoding/json"

// Optional is a tri-state JSON field for partial updates: the zero value means
// the key was absent, Defined with a nil Value means the key held an explicit
// null, and Defined with a non-nil Value means the key held a value. A plain
// pointer field cannot express this because encoding/json sets the pointer to
// nil for both null and absent keys.
type Optional[T any] struct {
	Defined bool
	Value   *T
}

// UnmarshalJSON is only invoked when the key is present in the document, which
// is what records the Defined flag.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Defined = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON renders the value, or null when unset.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	if !o.Defined || o.Value == nil {
		var zero T
		return zero, false
	}
	return *o.Value, true
}
