package node

import (
	"github.com/streampath/jsonstream/internal/buffer"
	"github.com/streampath/jsonstream/internal/hostjson"
	"github.com/streampath/jsonstream/internal/primitive"
)

// StringNode wraps primitive.ReadString and emits its result.
type StringNode struct {
	path   string
	emit   EmitFunc
	result string
}

func NewStringNode(path string, emit EmitFunc) *StringNode {
	return &StringNode{path: path, emit: emit}
}

func (n *StringNode) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	s, progress, err := primitive.ReadString(buf, hostjson.DecodeString)
	if err != nil {
		return Done, &Error{Kind: KindLexical, Path: n.path, Message: "invalid string literal", Cause: err}
	}
	if progress == primitive.NeedMore {
		return NeedMore, nil
	}
	n.result = s
	n.emit(n.path, s)
	return Done, nil
}

func (n *StringNode) Result() any { return n.result }

// NumberNode wraps primitive.ReadNumber and emits its result.
type NumberNode struct {
	path   string
	emit   EmitFunc
	result float64
}

func NewNumberNode(path string, emit EmitFunc) *NumberNode {
	return &NumberNode{path: path, emit: emit}
}

func (n *NumberNode) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	v, progress, err := primitive.ReadNumber(buf, atEOF)
	if err != nil {
		return Done, &Error{Kind: KindLexical, Path: n.path, Message: "invalid number literal", Cause: err}
	}
	if progress == primitive.NeedMore {
		return NeedMore, nil
	}
	n.result = v
	n.emit(n.path, v)
	return Done, nil
}

func (n *NumberNode) Result() any { return n.result }

// LiteralNode wraps primitive.ReadLiteral and emits its result.
type LiteralNode struct {
	path   string
	lead   byte
	emit   EmitFunc
	result any
}

func NewLiteralNode(path string, lead byte, emit EmitFunc) *LiteralNode {
	return &LiteralNode{path: path, lead: lead, emit: emit}
}

func (n *LiteralNode) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	v, progress, err := primitive.ReadLiteral(n.lead, buf, atEOF)
	if err != nil {
		return Done, &Error{Kind: KindLexical, Path: n.path, Message: "invalid literal", Cause: err}
	}
	if progress == primitive.NeedMore {
		return NeedMore, nil
	}
	n.result = v
	n.emit(n.path, v)
	return Done, nil
}

func (n *LiteralNode) Result() any { return n.result }

// KeyNode wraps primitive.ReadKey. Unlike the value readers, it never
// emits — keys are not emitted (spec.md §4.4).
type KeyNode struct {
	result string
}

func NewKeyNode() *KeyNode {
	return &KeyNode{}
}

func (n *KeyNode) Advance(buf *buffer.Buffer, atEOF bool) (Progress, error) {
	k, progress, err := primitive.ReadKey(buf, hostjson.DecodeString)
	if err != nil {
		return Done, &Error{Kind: KindStructure, Message: "invalid object key", Cause: err}
	}
	if progress == primitive.NeedMore {
		return NeedMore, nil
	}
	n.result = k
	return Done, nil
}

func (n *KeyNode) Result() any { return n.result }
