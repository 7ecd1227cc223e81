// Package value holds the shared JSON value representation (spec.md
// §3.1) used by both the structural parsers (internal/node) and the
// public jsonstream package, so the type can live below both without
// creating an import cycle between them.
package value

import segjson "github.com/segmentio/encoding/json"

// Object is an insertion-order-preserving string-to-value mapping.
// Parsed JSON objects are represented this way rather than as a Go map,
// because spec.md §3.1 requires "mapping from string to JsonValue with
// insertion order preserved" — key/value pairs are materialized in the
// order they were parsed.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty Object ready to accept Set calls.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set assigns value to key, appending key to the insertion order the
// first time it is seen. Re-setting an existing key updates its value in
// place without moving it.
func (o *Object) Set(key string, val any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = val
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys in the object.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the object's keys in insertion order. The returned slice
// must not be mutated by the caller.
func (o *Object) Keys() []string { return o.keys }

// Range calls fn for each key/value pair in insertion order, stopping
// early if fn returns false.
func (o *Object) Range(fn func(key string, val any) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	for i, k := range o.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		encoded, err := segjson.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf = append(buf, encoded...)
		buf = append(buf, ':')
		encoded, err = segjson.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf = append(buf, encoded...)
	}
	buf = append(buf, '}')
	return buf, nil
}
