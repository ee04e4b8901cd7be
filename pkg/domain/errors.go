package domain

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when the input path is not an existing regular file.
var ErrFileNotFound = errors.New("file does not exist")

// ErrInvalidNumber is returned when a line of input is not a base-10 integer.
var ErrInvalidNumber = errors.New("invalid number")

// ErrNegativeNumber is returned for negative input. Trial division up to the square root
// is undefined for n < 0.
var ErrNegativeNumber = errors.New("negative numbers are not supported")

// ErrCacheMiss is returned by a ResultCache when no result is stored for a number.
var ErrCacheMiss = errors.New("result not cached")

// ParseError reports the input line that could not be used.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
