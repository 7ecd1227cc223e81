// Package hostjson is the single JSON-decoding boundary jsonstream uses
// for everything spec.md §4.3/§4.7 delegates to "the host's JSON
// decoding": string-literal escape resolution (surrogate pairs,
// \uXXXX), and whole-subtree decoding for bulk-materialized values. It
// wraps github.com/segmentio/encoding/json, a drop-in faster
// replacement for encoding/json.
package hostjson

import (
	"bytes"
	"fmt"
	"io"

	segjson "github.com/segmentio/encoding/json"

	"github.com/streampath/jsonstream/internal/value"
)

// MarshalValue re-serializes a decoded value (nil, bool, float64,
// string, []any, or *value.Object) back to JSON text.
func MarshalValue(v any) ([]byte, error) {
	return segjson.Marshal(v)
}

// DecodeString decodes a complete JSON string literal, including its
// surrounding quotes, into Unicode text exactly as the JSON
// specification resolves surrogate pairs and \uXXXX escapes.
func DecodeString(lexeme []byte) (string, error) {
	var s string
	if err := segjson.Unmarshal(lexeme, &s); err != nil {
		return "", err
	}
	return s, nil
}

// DecodeJSON decodes a well-formed JSON text captured by a bulk parser
// into nil, bool, float64, string, []any, or *value.Object, preserving
// object key order via the decoder's token stream rather than its
// generic map[string]any unmarshaling (which would lose it).
func DecodeJSON(text []byte) (any, error) {
	dec := segjson.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *segjson.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeValueFromToken(dec, tok)
}

func decodeValueFromToken(dec *segjson.Decoder, tok segjson.Token) (any, error) {
	switch t := tok.(type) {
	case segjson.Delim:
		switch t {
		case '{':
			obj := value.NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("hostjson: expected object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil && err != io.EOF {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := make([]any, 0)
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil && err != io.EOF {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("hostjson: unexpected delimiter %v", t)
		}
	case segjson.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case nil, bool, string:
		return t, nil
	default:
		return nil, fmt.Errorf("hostjson: unexpected token %v (%T)", tok, tok)
	}
}
