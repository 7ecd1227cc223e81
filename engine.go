// Package jsonstream implements a push-driven, incremental JSON parser
// that decodes only the subtrees a JSONPath pattern set asks for,
// emitting (path, value) pairs as soon as each is complete.
package jsonstream

import (
	"errors"

	"github.com/streampath/jsonstream/internal/buffer"
	"github.com/streampath/jsonstream/internal/node"
	"github.com/streampath/jsonstream/jsonpath"
)

// Emission is one (path, value) pair delivered to an EmitFunc.
type Emission struct {
	Path  string
	Value any
}

// EmitFunc receives one Emission at a time, in source order, as soon as
// the value at Path is complete and Path matches the Engine's pattern set.
type EmitFunc func(path string, value any)

// Engine drives one parse session. An Engine is not safe for concurrent
// use: one instance is owned by one caller for the lifetime of one
// document (spec.md §5).
type Engine struct {
	buf      *buffer.Buffer
	patterns *jsonpath.Set
	emit     EmitFunc
	logger   Logger

	root     node.Node
	rootDone bool
	closed   bool

	bytesIngested int64
	maxDepth      int
}

// New constructs an Engine that filters emissions through patterns.
// Every entry in patterns is parsed with jsonpath.Parse; an invalid
// pattern or an empty pattern list fails construction with a
// *ConfigError.
func New(patterns []string, emit EmitFunc, opts ...Option) (*Engine, error) {
	if len(patterns) == 0 {
		return nil, &ConfigError{Option: "patterns", Message: "at least one pattern is required"}
	}
	if emit == nil {
		return nil, &ConfigError{Option: "emit", Message: "emit function must not be nil"}
	}
	set, err := jsonpath.NewSet(patterns)
	if err != nil {
		return nil, &ConfigError{Option: "patterns", Message: "invalid pattern", Cause: err}
	}

	cfg := newEngineConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Engine{
		buf:      buffer.New(),
		patterns: set,
		emit:     emit,
		logger:   cfg.logger,
	}, nil
}

// Write feeds the next chunk of raw bytes to the engine, advancing as
// far as the currently-buffered text allows. Chunks may be any size,
// including a single byte, and may split multi-byte UTF-8 sequences or
// JSON lexemes at any boundary.
func (e *Engine) Write(chunk []byte) error {
	if e.closed {
		return &ConfigError{Option: "Write", Message: "engine is already closed"}
	}
	e.bytesIngested += int64(len(chunk))
	if err := e.buf.Push(chunk); err != nil {
		return &LexicalError{Message: "invalid byte sequence", Cause: err}
	}
	return e.advance(false)
}

// Close signals end of input and finalizes the parse. It returns
// *IncompleteError if the root value never completed (including empty
// or whitespace-only input), or *StructureError if non-whitespace text
// follows the completed root value.
func (e *Engine) Close() error {
	e.closed = true
	if err := e.advance(true); err != nil {
		return err
	}
	if e.root == nil || !e.rootDone {
		return &IncompleteError{Message: "input ended before a complete value was parsed"}
	}
	e.buf.ConsumeWhitespace()
	if e.buf.Len() > 0 {
		c, _ := e.buf.PeekFirst()
		return &StructureError{Char: c, Message: "unexpected trailing data after root value"}
	}
	return nil
}

// BytesConsumed reports the total number of bytes passed to Write so far.
func (e *Engine) BytesConsumed() int64 { return e.bytesIngested }

// Depth reports the deepest nesting level (root is depth 0) the engine
// has begun descending into, as a diagnostic for callers who want to
// log progress or bound memory externally (spec.md §5 leaves
// backpressure to the caller).
func (e *Engine) Depth() int { return e.maxDepth }

func (e *Engine) advance(atEOF bool) error {
	if e.rootDone {
		return nil
	}
	if e.root == nil {
		e.buf.ConsumeWhitespace()
		if _, ok := e.buf.PeekFirst(); !ok {
			return nil
		}
		child, progress, err := e.createChild("$", e.buf, atEOF)
		if err != nil {
			return e.translate(err)
		}
		if progress == node.NeedMore {
			return nil
		}
		e.root = child
	}

	progress, err := e.root.Advance(e.buf, atEOF)
	if err != nil {
		e.logger.Warn("parse failed", "path", "$", "error", err)
		return e.translate(err)
	}
	if progress == node.Done {
		e.rootDone = true
	}
	return nil
}

// createChild implements spec.md §4.9's dispatch: peek the next
// non-whitespace character and choose a leaf reader for scalars, or one
// of the incremental/bulk/skip strategies for structural values
// depending on whether the pattern set can still match at or below path.
func (e *Engine) createChild(path string, buf *buffer.Buffer, atEOF bool) (node.Node, node.Progress, error) {
	buf.ConsumeWhitespace()
	c, ok := buf.PeekFirst()
	if !ok {
		return nil, node.NeedMore, nil
	}
	e.trackDepth(path)

	switch {
	case c == '{':
		return e.createObject(path), node.Done, nil
	case c == '[':
		return e.createArray(path), node.Done, nil
	case c == '"':
		return node.NewStringNode(path, e.emitFiltered), node.Done, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return node.NewNumberNode(path, e.emitFiltered), node.Done, nil
	case c == 't' || c == 'f' || c == 'n':
		return node.NewLiteralNode(path, c, e.emitFiltered), node.Done, nil
	default:
		return nil, node.Done, &node.Error{Kind: node.KindStructure, Path: path, Char: c, Message: "unexpected character starting a value"}
	}
}

func (e *Engine) createObject(path string) node.Node {
	switch {
	case e.patterns.HasMatchingDescendants(path):
		e.logger.Debug("descending incrementally", "path", path)
		return node.NewIncrementalObject(path, e.emitFiltered, e.createChild)
	case e.patterns.Match(path):
		e.logger.Debug("materializing in bulk", "path", path)
		return node.NewBulkNode(path, e.emitFiltered)
	default:
		e.logger.Debug("skipping", "path", path)
		return node.NewSkipNode()
	}
}

func (e *Engine) createArray(path string) node.Node {
	switch {
	case e.patterns.HasMatchingDescendants(path):
		e.logger.Debug("descending incrementally", "path", path)
		return node.NewIncrementalArray(path, e.emitFiltered, e.createChild)
	case e.patterns.Match(path):
		e.logger.Debug("materializing in bulk", "path", path)
		return node.NewBulkNode(path, e.emitFiltered)
	default:
		e.logger.Debug("skipping", "path", path)
		return node.NewSkipNode()
	}
}

// emitFiltered is the EmitFunc threaded into every leaf/structural node.
// Every node calls this unconditionally when it completes; only paths
// that actually match a configured pattern are forwarded to the
// caller's EmitFunc (spec.md §4.10). Matching (rather than a plain
// Match check) is used so the debug log can name which pattern(s) fired,
// which also doubles as the production caller for its pooled scratch slice.
func (e *Engine) emitFiltered(path string, value any) {
	matched := e.patterns.Matching(path)
	if len(matched) == 0 {
		return
	}
	e.logger.Debug("emitting", "path", path, "patterns", matchedRaw(matched))
	e.emit(path, value)
}

func matchedRaw(patterns []*jsonpath.Pattern) []string {
	raw := make([]string, len(patterns))
	for i, p := range patterns {
		raw[i] = p.Raw()
	}
	return raw
}

func (e *Engine) trackDepth(path string) {
	depth := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' || path[i] == '[' {
			depth++
		}
	}
	if depth > e.maxDepth {
		e.maxDepth = depth
	}
}

func (e *Engine) translate(err error) error {
	var nerr *node.Error
	if errors.As(err, &nerr) {
		switch nerr.Kind {
		case node.KindStructure:
			return &StructureError{Path: nerr.Path, Char: nerr.Char, Message: nerr.Message}
		case node.KindLexical:
			return &LexicalError{Path: nerr.Path, Message: nerr.Message, Cause: nerr.Cause}
		}
	}
	return err
}
