// Package primitive implements the resumable value readers of spec.md
// §4.3 (string, number, literal) and the object-key reader of spec.md
// §4.4. None of these readers commit to partial consumption: if a
// complete lexeme is not yet available, they consume nothing and the
// caller re-drives them from the same unconsumed text once more bytes
// arrive.
package primitive

import (
	"fmt"
	"regexp"

	"github.com/streampath/jsonstream/internal/buffer"
)

// Progress reports whether a reader produced a value or needs more input.
type Progress int

const (
	// NeedMore means the lexeme is not yet complete; no bytes consumed.
	NeedMore Progress = iota
	// Done means the lexeme was recognized, decoded, and consumed.
	Done
)

var (
	stringPattern = regexp.MustCompile(`^"([^"\\]|\\.)*"`)
	numberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?`)
)

// isTerminator reports whether c can legally follow a number or literal
// lexeme: JSON whitespace, a comma, or a closing bracket.
func isTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '}', ']':
		return true
	default:
		return false
	}
}

// ReadString recognizes a complete `"([^"\\]|\\.)*"` lexeme and decodes
// it via decodeString.
func ReadString(buf *buffer.Buffer, decodeString func([]byte) (string, error)) (string, Progress, error) {
	loc := stringPattern.FindIndex(buf.Get())
	if loc == nil {
		return "", NeedMore, nil
	}
	lexeme := append([]byte(nil), buf.Get()[:loc[1]]...)
	s, err := decodeString(lexeme)
	if err != nil {
		return "", Done, err
	}
	buf.Consume(loc[1])
	return s, Done, nil
}

// ReadNumber recognizes a complete number lexeme followed by a
// JSON-structural terminator in lookahead, without consuming the
// terminator. The terminator guard is essential for streaming: without
// it, "12" followed by a not-yet-arrived digit could be committed
// prematurely. atEOF reports whether the caller has reached the end of
// input with no more bytes coming, in which case the end of text itself
// satisfies the lookahead — otherwise a root-level bare number (e.g. the
// whole document "42") could never complete.
func ReadNumber(buf *buffer.Buffer, atEOF bool) (float64, Progress, error) {
	text := buf.Get()
	loc := numberPattern.FindIndex(text)
	if loc == nil || loc[1] == 0 {
		return 0, NeedMore, nil
	}
	end := loc[1]
	if end >= len(text) {
		if !atEOF {
			// Could still be mid-digit-run; wait for more bytes.
			return 0, NeedMore, nil
		}
		value := parseFloat(text[:end])
		buf.Consume(end)
		return value, Done, nil
	}
	if !isTerminator(text[end]) {
		return 0, Done, fmt.Errorf("invalid number: unexpected character %q after numeric lexeme", text[end])
	}
	value := parseFloat(text[:end])
	buf.Consume(end)
	return value, Done, nil
}

// ReadLiteral recognizes "true", "false", or "null" given the already
// observed leading character, with the same terminator lookahead as
// ReadNumber — and the same atEOF end-of-input allowance.
func ReadLiteral(lead byte, buf *buffer.Buffer, atEOF bool) (any, Progress, error) {
	var word string
	var value any
	switch lead {
	case 't':
		word, value = "true", true
	case 'f':
		word, value = "false", false
	case 'n':
		word, value = "null", nil
	default:
		return nil, Done, fmt.Errorf("invalid literal lead character %q", lead)
	}

	text := buf.Get()
	if len(text) < len(word) {
		if !hasPrefixOf(text, word) {
			return nil, Done, fmt.Errorf("invalid literal: expected %q", word)
		}
		if atEOF {
			return nil, Done, fmt.Errorf("invalid literal: truncated %q", word)
		}
		return nil, NeedMore, nil
	}
	if string(text[:len(word)]) != word {
		return nil, Done, fmt.Errorf("invalid literal: expected %q", word)
	}
	if len(text) == len(word) {
		if !atEOF {
			return nil, NeedMore, nil
		}
		buf.Consume(len(word))
		return value, Done, nil
	}
	if !isTerminator(text[len(word)]) {
		return nil, Done, fmt.Errorf("invalid literal: unexpected character %q after %q", text[len(word)], word)
	}
	buf.Consume(len(word))
	return value, Done, nil
}

// hasPrefixOf reports whether word starts with the bytes already seen in
// partial, i.e. whether partial remains a viable prefix of word.
func hasPrefixOf(partial []byte, word string) bool {
	if len(partial) > len(word) {
		return false
	}
	return string(partial) == word[:len(partial)]
}

// ReadKey reads one JSON string followed by optional whitespace and a
// ':', atomically. It does not decode the full contract of ReadString's
// terminator handling because the terminator here is a fixed character
// rather than a class.
func ReadKey(buf *buffer.Buffer, decodeString func([]byte) (string, error)) (string, Progress, error) {
	text := buf.Get()
	strLoc := stringPattern.FindIndex(text)
	if strLoc == nil {
		return "", NeedMore, nil
	}
	pos := strLoc[1]
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
			continue
		case ':':
			lexeme := append([]byte(nil), text[:strLoc[1]]...)
			key, err := decodeString(lexeme)
			if err != nil {
				return "", Done, err
			}
			buf.Consume(pos + 1)
			return key, Done, nil
		default:
			return "", Done, fmt.Errorf("expected ':' after object key, got %q", text[pos])
		}
	}
	return "", NeedMore, nil
}
