// Package commands provides CLI command handlers for jsonstream.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/streampath/jsonstream/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Writef re-exports cliutil.Writef for command handlers.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// loadPatternsFile reads a YAML list of pattern strings from path.
func loadPatternsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}
	var patterns []string
	if err := yaml.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}
	return patterns, nil
}

// openInput opens path for reading, or stdin if path is StdinFilePath.
func openInput(path string) (io.ReadCloser, error) {
	if path == StdinFilePath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return f, nil
}
