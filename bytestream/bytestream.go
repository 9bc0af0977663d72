// Package bytestream implements seekable byte media for the binbuf codec.
//
// bytes.Buffer cannot serve here since it does not allow moving around in
// the buffer and always writes at the end. ByteStream keeps an explicit
// cursor so a caller can seek back and patch earlier bytes, which is the
// whole point of a positional codec.
package bytestream

import (
	"io"

	"github.com/pkg/errors"
)

// ByteStream is an in-memory byte medium implementing io.ReadWriteSeeker.
//
// A stream created with New owns its storage and grows on writes past the
// end. A stream created with NewSlice wraps the passed slice at a fixed
// size and fails writes that would run over it.
type ByteStream struct {
	pos   int
	buf   []byte
	fixed bool
}

// New creates a new empty growable ByteStream.
func New() *ByteStream {
	return &ByteStream{}
}

// NewSlice creates a fixed-size ByteStream over the passed slice.
func NewSlice(buf []byte) *ByteStream {
	return &ByteStream{
		buf:   buf,
		fixed: true,
	}
}

// Pos returns the current cursor position of the stream.
func (s *ByteStream) Pos() int { return s.pos }

// Len returns the current size of the stream in bytes.
func (s *ByteStream) Len() int { return len(s.buf) }

// Bytes returns the internal byte slice of the stream.
func (s *ByteStream) Bytes() []byte { return s.buf }

// Reset truncates a growable stream to zero length and rewinds the cursor.
// A fixed stream only rewinds.
func (s *ByteStream) Reset() {
	if !s.fixed {
		s.buf = s.buf[:0]
	}
	s.pos = 0
}

// Seek implements io.Seeker. The resolved position must land within
// [0, Len()]; anything outside fails rather than clamping.
func (s *ByteStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(s.pos) + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return int64(s.pos), errors.Errorf("invalid whence %v", whence)
	}

	if abs < 0 || abs > int64(len(s.buf)) {
		return int64(s.pos), errors.Errorf("seek position %v out of range [0, %v]", abs, len(s.buf))
	}

	s.pos = int(abs)
	return abs, nil
}

// Read implements io.Reader, reading from the cursor onward.
func (s *ByteStream) Read(p []byte) (int, error) {
	if s.pos >= len(s.buf) {
		return 0, io.EOF
	}

	n := copy(p, s.buf[s.pos:])
	s.pos += n
	return n, nil
}

// Write implements io.Writer, writing at the cursor and growing the stream
// as needed unless it is fixed-size.
func (s *ByteStream) Write(p []byte) (int, error) {
	n := len(p)

	if s.pos+n > len(s.buf) {
		if s.fixed {
			return 0, errors.Errorf("write of %v bytes at %v overflows fixed stream of %v bytes", n, s.pos, len(s.buf))
		}
		if s.pos+n > cap(s.buf) {
			b := s.buf
			s.buf = make([]byte, s.pos+n, 2*len(s.buf)+n)
			copy(s.buf, b)
		} else {
			s.buf = s.buf[:s.pos+n]
		}
	}

	s.pos += copy(s.buf[s.pos:], p)
	return n, nil
}
