// Package node implements the tagged-variant parser/consumer nodes of
// spec.md §3.5/§4.5-§4.9: string, number, literal, and key readers, the
// incremental/bulk/skip object and array nodes, and the shared
// bracket-counting scanner bulk and skip nodes drive.
//
// Every variant satisfies [Node] with a single Advance method (spec.md
// §9 "Child-node heterogeneity"), replacing source-language inheritance
// with a sum type. The cyclic dependency between structural parsers and
// the engine that creates them (spec.md §9 "Cyclic references among
// parser nodes") is broken by [CreateChild]: a closure owned by the
// engine and threaded into every structural node at construction,
// instead of nodes importing their peers or a registry.
package node

import "github.com/streampath/jsonstream/internal/buffer"

// Progress reports whether a node produced a result or needs more input.
type Progress int

const (
	// NeedMore means the node is not yet complete; callers resume it
	// after pushing more bytes.
	NeedMore Progress = iota
	// Done means the node has completed, whether or not it emitted.
	Done
)

// Node is satisfied by every parser/consumer variant.
type Node interface {
	// Advance drives the node with the buffer's current content. It may
	// be called any number of times before returning Done. atEOF reports
	// whether the caller has no more bytes to push after this call: a
	// scalar sitting at the very end of the input (e.g. a root-level bare
	// "42" with nothing following it) uses this to treat end-of-input as
	// satisfying its terminator lookahead instead of waiting forever.
	Advance(buf *buffer.Buffer, atEOF bool) (Progress, error)

	// Result returns the node's decoded value once Advance has returned
	// Done. Key nodes return a string; skip nodes return nil; every
	// other variant returns the value it emitted (or the accumulated
	// Object/[]any for structural nodes).
	Result() any
}

// EmitFunc delivers one (path, value) pair in source order.
type EmitFunc func(path string, value any)

// CreateChild creates the node responsible for parsing the value at
// path, inspecting buf's next non-whitespace character to select a
// strategy per spec.md §4.9. It returns (nil, NeedMore, nil) if no
// character is available yet.
type CreateChild func(path string, buf *buffer.Buffer, atEOF bool) (Node, Progress, error)

// Kind classifies the two error categories a node can fail with; the
// engine translates these into jsonstream's public error types.
type Kind int

const (
	KindStructure Kind = iota
	KindLexical
)

// Error is the error type every node in this package returns on failure.
type Error struct {
	Kind    Kind
	Path    string
	Char    byte
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }
