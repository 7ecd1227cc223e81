// Package jsonstream provides a push-driven, incremental JSON parser that
// emits a filtered sequence of (path, value) pairs from UTF-8 byte chunks.
//
// jsonstream never materializes the whole input. It advances through the
// JSON structure chunk by chunk and, for subtrees that cannot match any of
// the caller's JSONPath patterns, consumes bytes without building a value
// tree at all.
//
// # Overview
//
// The library consists of:
//
//   - jsonpath: a restricted JSONPath pattern language (exact paths, "[*]"
//     array wildcards, ".*" object wildcards) used to decide what to emit
//   - the root package (jsonstream): the Engine that drives parsing
//   - session: adapters from io.Reader / channels onto the Engine
//   - cmd/jsonstream: a CLI front end
//   - internal/mcpserver: a Model Context Protocol tool wrapping the engine
//
// # Quick Start
//
//	var emitted []jsonstream.Emission
//	eng, err := jsonstream.New(
//		[]string{"$.users[*]"},
//		func(path string, value any) {
//			emitted = append(emitted, jsonstream.Emission{Path: path, Value: value})
//		},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, chunk := range chunks {
//		if err := eng.Write(chunk); err != nil {
//			log.Fatal(err)
//		}
//	}
//	if err := eng.Close(); err != nil {
//		log.Fatal(err)
//	}
//
// # Pattern Grammar
//
// Patterns support exactly three shapes, rooted at "$":
//
//	$.field.nested      exact path
//	$.items[*]           array wildcard — matches $.items[0], $.items[1], ...
//	$.config.*           object wildcard — matches any single child of $.config
//
// Recursive descent ("..") and "**" are rejected at construction. Other
// syntactically valid but unsupported forms (e.g. "$.users[0]") are
// accepted as exact-path literals and will only ever match that literal
// path.
//
// # Strategy Selection
//
// For every object or array encountered, the engine picks one of three
// strategies by consulting the pattern set:
//
//   - incremental: some pattern could still match a descendant — descend
//     key by key / element by element
//   - bulk: the current path itself matches, and no pattern can match
//     anything below it — scan to the matching close bracket and decode
//     the captured text in one shot
//   - skip: nothing below or at this path could ever match — scan to the
//     matching close bracket without decoding anything
//
// # Errors
//
// All errors are terminal: after any error, the Engine is permanently
// failed and must be discarded. Errors fall into four kinds —
// [ConfigError], [StructureError], [LexicalError], and [IncompleteError]
// — each matched via errors.Is against its sentinel ([ErrConfig],
// [ErrStructure], [ErrLexical], [ErrIncomplete]).
//
// # Concurrency
//
// One Engine is driven by one goroutine at a time; reentrant use is
// undefined behavior. Constructing multiple Engines for concurrent,
// independent input streams is safe and is exactly how cmd/jsonstream
// processes several files at once.
package jsonstream
