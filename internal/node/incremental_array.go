package node

import (
	"github.com/streampath/jsonstream/internal/buffer"
	"github.com/streampath/jsonstream/internal/pathutil"
)

type arrayPhase int

const (
	arrExpectFirstOrClose arrayPhase = iota
	arrExpectValue
	arrExpectCommaOrClose
)

// IncrementalArray drives the element sequence of a JSON array, mirroring
// IncrementalObject (spec.md §4.6).
type IncrementalArray struct {
	path         string
	emit         EmitFunc
	createChild  CreateChild
	openConsumed bool
	phase        arrayPhase
	index        int
	child        Node
	elements     []any
	result       []any
}

func NewIncrementalArray(path string, emit EmitFunc, createChild CreateChild) *IncrementalArray {
	return &IncrementalArray{
		path:        path,
		emit:        emit,
		createChild: createChild,
		elements:    make([]any, 0),
	}
}

func (n *IncrementalArray) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	if !n.openConsumed {
		c, ok := buf.PeekFirst()
		if !ok {
			return NeedMore, nil
		}
		if c != '[' {
			return Done, &Error{Kind: KindStructure, Path: n.path, Char: c, Message: "expected '['"}
		}
		buf.Consume(1)
		n.openConsumed = true
		n.phase = arrExpectFirstOrClose
	}

	for {
		if n.child != nil {
			progress, err := n.child.Advance(buf, atEOF)
			if err != nil {
				return Done, err
			}
			if progress == NeedMore {
				return NeedMore, nil
			}
			n.elements = append(n.elements, n.child.Result())
			n.index++
			n.phase = arrExpectCommaOrClose
			n.child = nil
			continue
		}

		buf.ConsumeWhitespace()
		c, ok := buf.PeekFirst()
		if !ok {
			return NeedMore, nil
		}

		switch {
		case c == ']':
			if n.phase == arrExpectValue {
				return Done, &Error{Kind: KindStructure, Path: n.path, Message: "trailing comma before closing bracket"}
			}
			buf.Consume(1)
			n.result = n.elements
			n.emit(n.path, n.elements)
			return Done, nil

		case c == ',':
			if n.phase != arrExpectCommaOrClose {
				return Done, &Error{Kind: KindStructure, Path: n.path, Message: "unexpected comma"}
			}
			buf.Consume(1)
			n.phase = arrExpectValue
			continue

		case n.phase == arrExpectFirstOrClose || n.phase == arrExpectValue:
			pb := pathutil.Get()
			pb.Push(n.path)
			pb.PushIndex(n.index)
			childPath := pb.String()
			pathutil.Put(pb)
			child, progress, err := n.createChild(childPath, buf, atEOF)
			if err != nil {
				return Done, err
			}
			if progress == NeedMore {
				return NeedMore, nil
			}
			n.child = child
			continue

		default:
			return Done, &Error{Kind: KindStructure, Path: n.path, Char: c, Message: "unexpected character in array"}
		}
	}
}

func (n *IncrementalArray) Result() any { return n.result }
