package jsonstream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigErrorIsAndUnwrap(t *testing.T) {
	cause := errors.New("bad pattern")
	err := &ConfigError{Option: "patterns", Message: "invalid pattern", Cause: cause}

	assert.True(t, errors.Is(err, ErrConfig))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "patterns")
	assert.Contains(t, err.Error(), "invalid pattern")
	assert.Contains(t, err.Error(), "bad pattern")
}

func TestStructureErrorIsAndFormatting(t *testing.T) {
	err := &StructureError{Path: "$.a", Char: 'x', Message: "unexpected character"}

	assert.True(t, errors.Is(err, ErrStructure))
	assert.Contains(t, err.Error(), "$.a")
	assert.Contains(t, err.Error(), "unexpected character")
	assert.Contains(t, err.Error(), `'x'`)
}

func TestStructureErrorWithoutPathOrChar(t *testing.T) {
	err := &StructureError{Message: "trailing data"}
	assert.Equal(t, "structure error: trailing data", err.Error())
}

func TestLexicalErrorIsAndUnwrap(t *testing.T) {
	cause := errors.New("bad escape")
	err := &LexicalError{Path: "$.a", Message: "invalid escape", Cause: cause}

	assert.True(t, errors.Is(err, ErrLexical))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "$.a")
}

func TestIncompleteErrorIs(t *testing.T) {
	err := &IncompleteError{Message: "unfinished"}
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Contains(t, err.Error(), "unfinished")
}

func TestErrorKindsAreDistinct(t *testing.T) {
	var structErr error = &StructureError{Message: "x"}
	assert.False(t, errors.Is(structErr, ErrLexical))
	assert.False(t, errors.Is(structErr, ErrConfig))
	assert.False(t, errors.Is(structErr, ErrIncomplete))
}
