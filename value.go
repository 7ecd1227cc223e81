package jsonstream

import "github.com/streampath/jsonstream/internal/value"

// Object is an insertion-order-preserving string-to-value mapping: the
// representation this package uses for every parsed JSON object (spec.md
// §3.1). Object satisfies json.Marshaler, re-serializing with its
// original key order.
type Object = value.Object

// NewObject returns an empty Object.
func NewObject() *Object { return value.NewObject() }
