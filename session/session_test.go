package session

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streampath/jsonstream"
)

func TestDrainFeedsEngineAndCloses(t *testing.T) {
	var got []jsonstream.Emission
	emit := func(path string, value any) {
		got = append(got, jsonstream.Emission{Path: path, Value: value})
	}
	eng, err := jsonstream.New([]string{"$.a"}, emit)
	require.NoError(t, err)

	err = Drain(eng, strings.NewReader(`{"a":1,"b":2}`))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "$.a", got[0].Path)
}

func TestDrainPropagatesReadError(t *testing.T) {
	boom := errors.New("read boom")
	eng, err := jsonstream.New([]string{"$.a"}, func(string, any) {})
	require.NoError(t, err)

	err = Drain(eng, &failingReader{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestDrainPropagatesIncompleteInput(t *testing.T) {
	eng, err := jsonstream.New([]string{"$.a"}, func(string, any) {})
	require.NoError(t, err)

	err = Drain(eng, strings.NewReader(`{"a":`))
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonstream.ErrIncomplete)
}

func TestDrainToChannelDeliversEmissions(t *testing.T) {
	emissions, errs := DrainToChannel([]string{"$.items[*]"}, strings.NewReader(`{"items":[1,2,3]}`))

	var got []Emission
	for e := range emissions {
		got = append(got, e)
	}
	require.NoError(t, <-errs)
	require.Len(t, got, 3)
	assert.Equal(t, "$.items[0]", got[0].Path)
}

func TestDrainToChannelReportsConfigError(t *testing.T) {
	emissions, errs := DrainToChannel(nil, strings.NewReader(`{}`))

	for range emissions {
		t.Fatal("expected no emissions for a config error")
	}
	err := <-errs
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonstream.ErrConfig)
}

func TestDrainToChannelReportsParseError(t *testing.T) {
	emissions, errs := DrainToChannel([]string{"$.a"}, strings.NewReader(`{"a":1x}`))

	for range emissions {
	}
	err := <-errs
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonstream.ErrLexical)
}

type failingReader struct{ err error }

func (f *failingReader) Read(_ []byte) (int, error) { return 0, f.err }

var _ io.Reader = (*failingReader)(nil)
