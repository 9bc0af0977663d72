package binbuf

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEndOfStream is returned when a fixed-size or counted read is attempted
// but insufficient bytes remain before the end of the stream. The bounds
// check runs before any bytes are consumed, so the cursor is left unmoved.
var ErrEndOfStream = errors.New("end of stream")

// ErrIOFailure is returned for write failures, malformed variable-length
// integer streams and invalid UTF-8 in a decoded string.
var ErrIOFailure = errors.New("i/o failure")

// IndexOutOfRangeError is returned when a seek request could not be
// satisfied by the underlying medium. Index carries the requested offset.
type IndexOutOfRangeError struct {
	Index int64
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %v", e.Index)
}

// ReadFailureError is returned when the underlying medium's read primitive
// failed despite sufficient declared length. The lower-level cause is
// preserved for diagnostics.
type ReadFailureError struct {
	Err error
}

func (e *ReadFailureError) Error() string {
	return "read failure: " + e.Err.Error()
}

// Cause returns the lower-level read error, for use with errors.Cause.
func (e *ReadFailureError) Cause() error { return e.Err }

// Unwrap returns the lower-level read error, for use with errors.Is/As.
func (e *ReadFailureError) Unwrap() error { return e.Err }
