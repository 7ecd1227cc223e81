package node

import "github.com/streampath/jsonstream/internal/buffer"

// SkipNode scans to the matching closing bracket without capturing or
// decoding any text, implementing spec.md §4.8. Used when nothing at or
// below the current path could match any pattern.
type SkipNode struct {
	openConsumed bool
	st           scanState
}

func NewSkipNode() *SkipNode {
	return &SkipNode{}
}

func (n *SkipNode) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	if !n.openConsumed {
		_, ok := buf.PeekFirst()
		if !ok {
			return NeedMore, nil
		}
		buf.Consume(1)
		n.openConsumed = true
		n.st.depth = 1
	}

	closeIdx, done, err := scanToClose(buf, &n.st)
	if err != nil {
		return Done, err
	}
	if !done {
		return NeedMore, nil
	}
	buf.Consume(closeIdx + 1)
	return Done, nil
}

func (n *SkipNode) Result() any { return nil }
