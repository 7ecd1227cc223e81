// Package session adapts jsonstream.Engine to the byte-stream and
// callback shapes spec.md §1 names as out-of-scope external
// collaborators ("the chunk-producing byte source... the emission
// sink... specified only by their contracts") without folding either
// into the core engine.
package session

import (
	"io"

	"github.com/streampath/jsonstream"
)

// ReadChunkSize is the default chunk size Drain reads from an io.Reader.
const ReadChunkSize = 4096

// Drain reads r to completion in fixed-size chunks, feeding each to eng
// via Write, then calls eng.Close. It is the "byte-stream pipe-through"
// adapter spec.md §1 leaves to external collaborators.
func Drain(eng *jsonstream.Engine, r io.Reader) error {
	buf := make([]byte, ReadChunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if err := eng.Write(buf[:n]); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return eng.Close()
		}
		if readErr != nil {
			return readErr
		}
	}
}

// Emission is one (path, value) pair delivered over a channel, mirroring
// jsonstream.Emission.
type Emission struct {
	Path  string
	Value any
}

// ChannelBufferSize is the default capacity of the channel DrainToChannel
// returns.
const ChannelBufferSize = 64

// DrainToChannel constructs an Engine over patterns, drains r through it
// in a background goroutine, and returns the resulting emissions as a
// channel the caller ranges over instead of supplying a callback
// directly. The emissions channel is closed once r is fully consumed or
// an error occurs; the error (nil on success) is sent once on the
// returned error channel right before emissions closes.
func DrainToChannel(patterns []string, r io.Reader, opts ...jsonstream.Option) (<-chan Emission, <-chan error) {
	emissions := make(chan Emission, ChannelBufferSize)
	errs := make(chan error, 1)

	emit := func(path string, value any) {
		emissions <- Emission{Path: path, Value: value}
	}

	eng, err := jsonstream.New(patterns, emit, opts...)
	if err != nil {
		go func() {
			errs <- err
			close(emissions)
		}()
		return emissions, errs
	}

	go func() {
		defer close(emissions)
		errs <- Drain(eng, r)
	}()
	return emissions, errs
}
