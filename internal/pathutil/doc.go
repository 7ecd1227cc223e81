// Package pathutil provides efficient JSON path building utilities used by
// jsonstream's parsers while descending through a document.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// paths incrementally without allocating intermediate strings; the path is
// only materialized when String() is called. jsonstream's incremental
// parsers render one child path this way for every object key and array
// element they descend into.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("$")
//	path.Push("items")
//	path.PushIndex(0)
//	// ... descend ...
//	path.Pop()
//	path.Pop()
//
//	// Only call String() when needed (e.g., at Emit, or reporting an error)
//	if matched {
//	    emit(path.String(), value)
//	}
//
// Array indices are supported via [PathBuilder.PushIndex]:
//
//	path.Push("items")
//	path.PushIndex(0) // produces "items[0]"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for the CLI's
// --output flag. It rejects directory traversal ("..") and symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // path traversal or symlink detected
//	}
package pathutil
