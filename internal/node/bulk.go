package node

import (
	"github.com/streampath/jsonstream/internal/buffer"
	"github.com/streampath/jsonstream/internal/hostjson"
)

// BulkNode scans to the matching closing bracket (object or array) and
// decodes the captured text in one shot via the host JSON decoder,
// implementing spec.md §4.7. Used when the current path itself matches a
// pattern and no descendant of it can produce further matches.
type BulkNode struct {
	path         string
	emit         EmitFunc
	openConsumed bool
	openChar     byte
	st           scanState
	result       any
}

func NewBulkNode(path string, emit EmitFunc) *BulkNode {
	return &BulkNode{path: path, emit: emit}
}

func (n *BulkNode) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	if !n.openConsumed {
		c, ok := buf.PeekFirst()
		if !ok {
			return NeedMore, nil
		}
		n.openChar = c
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

	captured := make([]byte, 0, closeIdx+2)
	captured = append(captured, n.openChar)
	captured = append(captured, buf.Get()[:closeIdx+1]...)
	buf.Consume(closeIdx + 1)

	value, err := hostjson.DecodeJSON(captured)
	if err != nil {
		return Done, &Error{Kind: KindLexical, Path: n.path, Message: "bulk subtree failed to decode", Cause: err}
	}
	n.result = value
	n.emit(n.path, value)
	return Done, nil
}

func (n *BulkNode) Result() any { return n.result }
