package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	segjson "github.com/segmentio/encoding/json"
	"golang.org/x/sync/errgroup"

	"github.com/streampath/jsonstream/internal/pathutil"
	"github.com/streampath/jsonstream/session"
)

// maxConcurrentFiles bounds how many independently-constructed Engines
// run at once when filter is given multiple input files (spec.md §5:
// "one engine instance is driven by one caller" — each file gets its own).
const maxConcurrentFiles = 4

// stringSliceFlag is a custom flag type for collecting multiple string
// values; the flag may be repeated, each occurrence adding to the slice.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// FilterFlags contains flags for the filter command.
type FilterFlags struct {
	Patterns     stringSliceFlag
	PatternsFile string
	Output       string
}

// SetupFilterFlags creates and configures a FlagSet for the filter command.
func SetupFilterFlags() (*flag.FlagSet, *FilterFlags) {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	flags := &FilterFlags{}

	fs.Var(&flags.Patterns, "pattern", "JSONPath pattern to emit (repeatable)")
	fs.StringVar(&flags.PatternsFile, "patterns-file", "", "YAML file containing a list of pattern strings")
	fs.StringVar(&flags.Output, "output", "", "write matching lines to this file instead of stdout (single input file only)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonstream filter [flags] <file|-> [file...]\n\n")
		Writef(output, "Stream one or more JSON documents through a pattern set, printing each\n")
		Writef(output, "matching (path, value) pair as one JSON line.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonstream filter --pattern '$.users[*]' data.json\n")
		Writef(output, "  cat data.json | jsonstream filter --pattern '$.items[*]' -\n")
		Writef(output, "  jsonstream filter --patterns-file patterns.yaml a.json b.json\n")
		Writef(output, "  jsonstream filter --pattern '$.a' --output result.jsonl data.json\n")
	}

	return fs, flags
}

type filterLine struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// HandleFilter executes the filter command.
func HandleFilter(args []string) error {
	fs, flags := SetupFilterFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("filter command requires at least one file path or '-' for stdin")
	}

	patterns := []string(flags.Patterns)
	if flags.PatternsFile != "" {
		filePatterns, err := loadPatternsFile(flags.PatternsFile)
		if err != nil {
			return err
		}
		patterns = append(patterns, filePatterns...)
	}
	if len(patterns) == 0 {
		fs.Usage()
		return fmt.Errorf("at least one --pattern or --patterns-file is required")
	}

	paths := fs.Args()

	out := os.Stdout
	if flags.Output != "" {
		if len(paths) > 1 {
			return fmt.Errorf("--output cannot be combined with multiple input files")
		}
		safe, err := pathutil.SanitizeOutputPath(flags.Output)
		if err != nil {
			return err
		}
		f, err := os.Create(safe)
		if err != nil {
			return fmt.Errorf("creating %q: %w", safe, err)
		}
		defer f.Close()
		out = f
	}

	if len(paths) == 1 {
		return filterOne(paths[0], patterns, out)
	}

	var group errgroup.Group
	group.SetLimit(maxConcurrentFiles)
	for _, path := range paths {
		group.Go(func() error {
			return filterOne(path, patterns, out)
		})
	}
	return group.Wait()
}

func filterOne(path string, patterns []string, out *os.File) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	emissions, errs := session.DrainToChannel(patterns, in)
	for e := range emissions {
		line, err := segjson.Marshal(filterLine{Path: e.Path, Value: e.Value})
		if err != nil {
			return fmt.Errorf("marshaling emission for %q: %w", path, err)
		}
		if _, err := fmt.Fprintln(out, string(line)); err != nil {
			return fmt.Errorf("writing output for %q: %w", path, err)
		}
	}
	if err := <-errs; err != nil {
		return fmt.Errorf("filtering %q: %w", path, err)
	}
	return nil
}
