package node

import (
	"github.com/streampath/jsonstream/internal/buffer"
	"github.com/streampath/jsonstream/internal/pathutil"
	"github.com/streampath/jsonstream/internal/value"
)

type objectPhase int

const (
	objExpectFirstKeyOrClose objectPhase = iota
	objExpectKey
	objExpectValue
	objExpectCommaOrClose
)

// IncrementalObject drives the key/value sequence of a JSON object,
// deciding per child what to do next by consulting createChild (spec.md
// §4.5).
type IncrementalObject struct {
	path         string
	emit         EmitFunc
	createChild  CreateChild
	openConsumed bool
	phase        objectPhase
	currentKey   string
	child        Node
	accumulator  *value.Object
	result       *value.Object
}

func NewIncrementalObject(path string, emit EmitFunc, createChild CreateChild) *IncrementalObject {
	return &IncrementalObject{
		path:        path,
		emit:        emit,
		createChild: createChild,
		accumulator: value.NewObject(),
	}
}

func (n *IncrementalObject) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	if !n.openConsumed {
		c, ok := buf.PeekFirst()
		if !ok {
			return NeedMore, nil
		}
		if c != '{' {
			return Done, &Error{Kind: KindStructure, Path: n.path, Char: c, Message: "expected '{'"}
		}
		buf.Consume(1)
		n.openConsumed = true
		n.phase = objExpectFirstKeyOrClose
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
			switch n.phase {
			case objExpectKey, objExpectFirstKeyOrClose:
				n.currentKey = n.child.Result().(string)
				n.phase = objExpectValue
			case objExpectValue:
				n.accumulator.Set(n.currentKey, n.child.Result())
				n.phase = objExpectCommaOrClose
			}
			n.child = nil
			continue
		}

		buf.ConsumeWhitespace()
		c, ok := buf.PeekFirst()
		if !ok {
			return NeedMore, nil
		}

		switch {
		case c == '}':
			if n.phase == objExpectKey {
				return Done, &Error{Kind: KindStructure, Path: n.path, Message: "trailing comma before closing brace"}
			}
			buf.Consume(1)
			n.result = n.accumulator
			n.emit(n.path, n.accumulator)
			return Done, nil

		case c == ',':
			if n.phase != objExpectCommaOrClose {
				return Done, &Error{Kind: KindStructure, Path: n.path, Message: "unexpected comma"}
			}
			buf.Consume(1)
			n.phase = objExpectKey
			continue

		case c == '"' && (n.phase == objExpectFirstKeyOrClose || n.phase == objExpectKey):
			n.child = NewKeyNode()
			continue

		case n.phase == objExpectValue:
			pb := pathutil.Get()
			pb.Push(n.path)
			pb.Push(n.currentKey)
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
			return Done, &Error{Kind: KindStructure, Path: n.path, Char: c, Message: "unexpected character in object"}
		}
	}
}

func (n *IncrementalObject) Result() any { return n.result }
