package binbuf

import (
	"io"
	"unicode/utf8"
)

// Reader decodes primitive binary values from a seekable source. Every
// fixed-size or counted read verifies that enough bytes remain before
// touching the source, so a failed bounds check never consumes anything.
//
// A Reader owns its source exclusively for its lifetime and is not safe for
// concurrent use.
type Reader struct {
	source io.ReadSeeker
}

// NewReader returns a Reader decoding from the passed source.
func NewReader(source io.ReadSeeker) *Reader {
	return &Reader{source: source}
}

// Position returns the current byte offset within the stream.
func (r *Reader) Position() (uint64, error) {
	return r.Seek(0, Current)
}

// Len returns the length in bytes of the stream. It is computed by seeking
// to the end and restoring the prior position, never cached.
func (r *Reader) Len() (uint64, error) {
	oldPos, err := r.Position()
	if err != nil {
		return 0, err
	}

	length, err := r.Seek(0, End)
	if err != nil {
		return 0, err
	}

	if oldPos != length {
		if _, err = r.Seek(int64(oldPos), Begin); err != nil {
			return 0, err
		}
	}

	return length, nil
}

// Seek moves the cursor to offset relative to origin and returns the new
// absolute offset. Offsets the source cannot honor fail with
// IndexOutOfRangeError rather than clamping.
//
// Seek takes a SeekOrigin rather than an io.Seeker whence, so a Reader is
// deliberately not an io.Seeker; vet's stdmethods check flags the name.
func (r *Reader) Seek(offset int64, origin SeekOrigin) (uint64, error) {
	pos, err := r.source.Seek(offset, origin.whence())
	if err != nil {
		return 0, &IndexOutOfRangeError{Index: offset}
	}

	return uint64(pos), nil
}

// readExact bounds-checks that size bytes remain past the cursor, then reads
// exactly that many. An underlying read fault after a passing bounds check is
// distinct from running out of declared length and keeps its cause.
func (r *Reader) readExact(size uint64) ([]byte, error) {
	pos, err := r.Position()
	if err != nil {
		return nil, err
	}

	length, err := r.Len()
	if err != nil {
		return nil, err
	}

	// subtract instead of adding so an oversized count cannot wrap
	if pos > length || size > length-pos {
		return nil, ErrEndOfStream
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r.source, data); err != nil {
		return nil, &ReadFailureError{Err: err}
	}

	return data, nil
}

// ReadUint8 reads the next byte from the stream
// and advances the cursor by one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	data, err := r.readExact(1)
	if err != nil {
		return 0, err
	}

	return data[0], nil
}

// ReadUint16 reads a two-byte unsigned integer from the stream in
// little-endian and advances the cursor by two bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	data, err := r.readExact(2)
	if err != nil {
		return 0, err
	}

	return byteOrder.Uint16(data), nil
}

// ReadUint32 reads a four-byte unsigned integer from the stream
// and advances the cursor by four bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	data, err := r.readExact(4)
	if err != nil {
		return 0, err
	}

	return byteOrder.Uint32(data), nil
}

// ReadUint64 reads an eight-byte unsigned integer from the stream
// and advances the cursor by eight bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	data, err := r.readExact(8)
	if err != nil {
		return 0, err
	}

	return byteOrder.Uint64(data), nil
}

// ReadInt32 reads a four-byte signed integer from the stream
// and advances the cursor by four bytes.
func (r *Reader) ReadInt32() (int32, error) {
	data, err := r.readExact(4)
	if err != nil {
		return 0, err
	}

	return int32(byteOrder.Uint32(data)), nil
}

// Read7BitInt reads a 32-bit integer in the 7-bits-per-byte compressed
// format. A stream whose encoding would need a sixth byte is treated as
// corrupt and fails with ErrIOFailure.
func (r *Reader) Read7BitInt() (int32, error) {
	var count int32
	shift := uint(0)

	for {
		if shift == 5*7 {
			// 5 bytes max per int32, shift += 7
			return 0, ErrIOFailure
		}

		b, err := r.ReadUint8()
		if err != nil {
			return 0, err
		}

		count |= int32(b&0x7F) << shift
		shift += 7

		if b&0x80 == 0 {
			return count, nil
		}
	}
}

// ReadString reads a length-prefixed UTF-8 string from the stream. A
// negative decoded length or bytes that are not valid UTF-8 fail with
// ErrIOFailure.
func (r *Reader) ReadString() (string, error) {
	stringLength, err := r.Read7BitInt()
	if err != nil {
		return "", err
	}

	if stringLength < 0 {
		return "", ErrIOFailure
	}
	if stringLength == 0 {
		return "", nil
	}

	chars, err := r.ReadBytes(uint64(stringLength))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(chars) {
		return "", ErrIOFailure
	}

	return string(chars), nil
}

// ReadBytes reads the specified number of bytes from the stream
// and advances the cursor by that many bytes.
func (r *Reader) ReadBytes(count uint64) ([]byte, error) {
	return r.readExact(count)
}

// ReadBytesAt reads count bytes at the given offset without perturbing the
// caller's sequential cursor: the prior position is restored whether or not
// the read succeeded.
func (r *Reader) ReadBytesAt(offset, count uint64) ([]byte, error) {
	length, err := r.Len()
	if err != nil {
		return nil, err
	}

	if offset > length || count > length-offset {
		return nil, ErrEndOfStream
	}

	currentPos, err := r.Position()
	if err != nil {
		return nil, err
	}

	if _, err = r.Seek(int64(offset), Begin); err != nil {
		return nil, err
	}

	data, readErr := r.ReadBytes(count)

	if _, seekErr := r.Seek(int64(currentPos), Begin); seekErr != nil && readErr == nil {
		return nil, seekErr
	}
	if readErr != nil {
		return nil, readErr
	}

	return data, nil
}
