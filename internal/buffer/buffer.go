// Package buffer implements the byte buffer component of spec.md §4.1: an
// append-only sequence of decoded UTF-8 text with a moving consumption
// head, fed by arbitrarily-sized byte chunks.
package buffer

import (
	"bytes"
	"regexp"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// growthChunk is the minimum amount the internal text buffer grows by
// when a Transform call reports ErrShortDst.
const growthChunk = 4096

// utf8BOM is the UTF-8 encoding of U+FEFF.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Buffer accumulates incoming bytes, decodes UTF-8 across chunk
// boundaries, and exposes peek/consume/scan operations over the
// resulting text. A Buffer is not safe for concurrent use; it is owned
// exclusively by one Engine for the duration of one parse session.
type Buffer struct {
	text        []byte
	head        int
	transformer transform.Transformer
	pending     []byte // raw bytes not yet decoded, retried on the next Push
	bomChecked  bool
}

// New returns an empty Buffer ready to accept Push calls.
func New() *Buffer {
	return &Buffer{
		transformer: unicode.UTF8.NewDecoder(),
	}
}

// Push appends raw bytes to the buffer. Streaming UTF-8 decoding means an
// incomplete multi-byte sequence at the tail is withheld in the Buffer
// until its continuation bytes arrive via a later Push; a leading UTF-8
// BOM is silently removed; invalid byte sequences decode to the Unicode
// replacement character rather than raising an error.
func (b *Buffer) Push(chunk []byte) error {
	src := append(b.pending, chunk...)
	b.pending = nil
	if !b.bomChecked {
		if len(src) < len(utf8BOM) && bytes.HasPrefix(utf8BOM, src) {
			// Could still be the start of a BOM; decide once more arrives.
			b.pending = src
			return nil
		}
		src = bytes.TrimPrefix(src, utf8BOM)
		b.bomChecked = true
	}
	for {
		if len(b.text) == 0 {
			b.text = make([]byte, 0, growthChunk)
		}
		dst := b.text[len(b.text):cap(b.text)]
		nDst, nSrc, err := b.transformer.Transform(dst, src, false)
		b.text = b.text[:len(b.text)+nDst]
		src = src[nSrc:]

		switch err {
		case nil:
			return nil
		case transform.ErrShortSrc:
			// Incomplete trailing multi-byte sequence: the transformer
			// leaves it unconsumed, so keep it for the next Push.
			b.pending = append([]byte(nil), src...)
			return nil
		case transform.ErrShortDst:
			grown := make([]byte, len(b.text), cap(b.text)+growthChunk)
			copy(grown, b.text)
			b.text = grown
			continue
		default:
			return err
		}
	}
}

// unconsumed returns the unconsumed region of decoded text.
func (b *Buffer) unconsumed() []byte {
	return b.text[b.head:]
}

// Get returns the current unconsumed text, used by the bulk/skip
// bracket-counting scanners.
func (b *Buffer) Get() []byte {
	return b.unconsumed()
}

// Len reports the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return len(b.text) - b.head
}

// PeekFirst returns the first unconsumed byte and true, or (0, false) if
// the buffer has no unconsumed content.
//
// JSON structural and lexical boundaries are all ASCII, so operating
// byte-wise here (rather than decoding a rune) is both sufficient and
// avoids a UTF-8 decode on every call.
func (b *Buffer) PeekFirst() (byte, bool) {
	u := b.unconsumed()
	if len(u) == 0 {
		return 0, false
	}
	return u[0], true
}

// PeekMatch returns the submatch index pairs of an anchored match of
// pattern against the unconsumed region, or nil if pattern does not match
// at the start. pattern must be anchored with a leading "^"; PeekMatch
// does not consume.
func (b *Buffer) PeekMatch(pattern *regexp.Regexp) []int {
	return pattern.FindSubmatchIndex(b.unconsumed())
}

// Consume removes the next n bytes of unconsumed text. The caller must
// have already observed those bytes (e.g. via PeekMatch or Get).
func (b *Buffer) Consume(n int) {
	b.head += n
	b.compact()
}

// ConsumeWhitespace removes the longest prefix of JSON whitespace: space,
// tab, line feed, carriage return.
func (b *Buffer) ConsumeWhitespace() {
	u := b.unconsumed()
	i := 0
	for i < len(u) {
		switch u[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			b.Consume(i)
			return
		}
	}
	b.Consume(i)
}

// ConsumeUntilMatch: if pattern (anchored with a leading "^") matches the
// unconsumed region, consumes through the end of the match and returns
// the consumed text and the submatch index pairs; otherwise consumes
// nothing and returns (nil, nil).
func (b *Buffer) ConsumeUntilMatch(pattern *regexp.Regexp) ([]byte, []int) {
	loc := pattern.FindSubmatchIndex(b.unconsumed())
	if loc == nil {
		return nil, nil
	}
	matchLen := loc[1]
	text := make([]byte, matchLen)
	copy(text, b.unconsumed()[:matchLen])
	b.Consume(matchLen)
	return text, loc
}

// compact discards consumed bytes once they account for a large enough
// share of the backing array, so a long-lived session doesn't retain
// every byte it has ever seen.
func (b *Buffer) compact() {
	if b.head == 0 {
		return
	}
	if b.head < len(b.text)/2 || b.head < growthChunk {
		return
	}
	remaining := len(b.text) - b.head
	copy(b.text, b.text[b.head:])
	b.text = b.text[:remaining]
	b.head = 0
}
