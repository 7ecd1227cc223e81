package node

import "github.com/streampath/jsonstream/internal/buffer"

// scanState is the persistent bracket-counting, string-aware scan state
// shared by bulk and skip nodes (spec.md §4.7-§4.8). depth, inString, and
// scanPos all survive across Advance calls so the scan resumes exactly
// where it left off once more bytes arrive.
type scanState struct {
	depth    int
	inString bool
	scanPos  int
}

// isOpenBracket and isCloseBracket treat '{'/'[' and '}'/']' uniformly:
// valid JSON guarantees proper nesting, so a single depth counter across
// both bracket kinds correctly finds the matching close regardless of
// what's nested inside.
func isOpenBracket(c byte) bool  { return c == '{' || c == '[' }
func isCloseBracket(c byte) bool { return c == '}' || c == ']' }

// scanToClose advances st over buf's unconsumed text (which must not be
// reconsumed between calls to keep scanPos valid) looking for the byte
// position at which depth returns to zero. depth must already be 1 when
// the scan begins (the caller having consumed the opening bracket before
// constructing st).
//
// Returns (closeIdx, true, nil) once found; the index is relative to
// buf.Get() at the time of the call. Returns (0, false, nil) if more
// data is needed. A malformed string (never closed within available
// buffer) is not itself an error here — it is indistinguishable from
// "need more data" until finalization proves otherwise.
func scanToClose(buf *buffer.Buffer, st *scanState) (int, bool, error) {
	text := buf.Get()
	pos := st.scanPos

	for {
		if st.inString {
			idx := indexByteFrom(text, pos, '"')
			if idx < 0 {
				st.scanPos = len(text)
				return 0, false, nil
			}
			if oddTrailingBackslashes(text, idx) {
				pos = idx + 1
				continue
			}
			st.inString = false
			pos = idx + 1
			continue
		}

		idx := indexAnyFrom(text, pos, '"', '{', '}', '[', ']')
		if idx < 0 {
			st.scanPos = len(text)
			return 0, false, nil
		}

		switch {
		case text[idx] == '"':
			st.inString = true
			pos = idx + 1
		case isOpenBracket(text[idx]):
			st.depth++
			pos = idx + 1
		case isCloseBracket(text[idx]):
			st.depth--
			if st.depth == 0 {
				st.scanPos = pos
				return idx, true, nil
			}
			pos = idx + 1
		}
	}
}

// oddTrailingBackslashes reports whether an odd number of '\' bytes
// immediately precede position idx, meaning the character at idx is
// escaped by the final one of them.
func oddTrailingBackslashes(text []byte, idx int) bool {
	count := 0
	for i := idx - 1; i >= 0 && text[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

func indexByteFrom(text []byte, from int, c byte) int {
	for i := from; i < len(text); i++ {
		if text[i] == c {
			return i
		}
	}
	return -1
}

func indexAnyFrom(text []byte, from int, chars ...byte) int {
	for i := from; i < len(text); i++ {
		for _, c := range chars {
			if text[i] == c {
				return i
			}
		}
	}
	return -1
}
