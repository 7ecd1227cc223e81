package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streampath/jsonstream/internal/buffer"
)

func TestIncrementalArrayFlat(t *testing.T) {
	buf := buffer.New()
	require.NoError(t, buf.Push([]byte(`[1,"two",true],rest`)))

	emit, got := captureEmit()
	n := NewIncrementalArray("$", emit, testCreateChild(emit))
	advanceToCompletion(t, n, buf)

	assert.Equal(t, ",rest", string(buf.Get()))
	assert.Equal(t, []any{float64(1), "two", true}, n.Result())

	var paths []string
	for _, e := range *got {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "$[0]")
	assert.Contains(t, paths, "$[1]")
	assert.Contains(t, paths, "$[2]")
	assert.Contains(t, paths, "$")
}

func TestIncrementalArrayEmpty(t *testing.T) {
	buf := buffer.New()
	require.NoError(t, buf.Push([]byte(`[]`)))

	emit, _ := captureEmit()
	n := NewIncrementalArray("$", emit, testCreateChild(emit))
	advanceToCompletion(t, n, buf)

	assert.Equal(t, []any{}, n.Result())
}

func TestIncrementalArrayNested(t *testing.T) {
	buf := buffer.New()
	require.NoError(t, buf.Push([]byte(`[[1,2],{"a":3}]`)))

	emit, got := captureEmit()
	n := NewIncrementalArray("$.items", emit, testCreateChild(emit))
	advanceToCompletion(t, n, buf)

	var paths []string
	for _, e := range *got {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "$.items[0][0]")
	assert.Contains(t, paths, "$.items[0][1]")
	assert.Contains(t, paths, "$.items[1].a")
}

func TestIncrementalArrayAcrossPushes(t *testing.T) {
	buf := buffer.New()
	require.NoError(t, buf.Push([]byte(`[1`)))

	emit, _ := captureEmit()
	n := NewIncrementalArray("$", emit, testCreateChild(emit))
	progress, err := n.Advance(buf, false)
	require.NoError(t, err)
	assert.Equal(t, NeedMore, progress)

	require.NoError(t, buf.Push([]byte(`,2]`)))
	progress, err = n.Advance(buf, false)
	require.NoError(t, err)
	assert.Equal(t, Done, progress)
}

func TestIncrementalArrayTrailingCommaError(t *testing.T) {
	buf := buffer.New()
	require.NoError(t, buf.Push([]byte(`[1,]`)))

	emit, _ := captureEmit()
	n := NewIncrementalArray("$", emit, testCreateChild(emit))
	_, err := n.Advance(buf, false)
	assert.Error(t, err)
}

func TestIncrementalArrayUnexpectedCommaError(t *testing.T) {
	buf := buffer.New()
	require.NoError(t, buf.Push([]byte(`[,1]`)))

	emit, _ := captureEmit()
	n := NewIncrementalArray("$", emit, testCreateChild(emit))
	_, err := n.Advance(buf, false)
	assert.Error(t, err)
}
