package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultString(t *testing.T) {
	assert.Equal(t, "12=2*6", Found(12, 2, 6).String())
	assert.Equal(t, "4=2*2", Found(4, 2, 2).String())
	assert.Equal(t, "", NotFound(13).String())
}

func TestNotFoundHasZeroPair(t *testing.T) {
	r := NotFound(17)
	assert.False(t, r.Found)
	assert.Equal(t, FactorPair{}, r.Pair)
	assert.Equal(t, int64(17), r.N)
}

func TestParseErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("reading input: %w", &ParseError{Line: 3, Text: "abc", Err: ErrInvalidNumber})

	assert.True(t, errors.Is(err, ErrInvalidNumber))

	var pe *ParseError
	if assert.True(t, errors.As(err, &pe)) {
		assert.Equal(t, 3, pe.Line)
		assert.Equal(t, "abc", pe.Text)
	}
	assert.Contains(t, err.Error(), `line 3: "abc"`)
}
