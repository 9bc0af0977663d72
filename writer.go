package binbuf

import (
	"encoding/binary"
	"io"

	"go.uber.org/zap"
)

// assumes Little Endian for every fixed-width layout, the only byte order
// the wire format defines
var byteOrder = binary.LittleEndian

// Writer encodes primitive values in binary into a seekable sink and
// supports writing strings in UTF-8. Every write advances the sink's cursor
// by the number of bytes it emits.
//
// A Writer owns its sink exclusively for its lifetime and is not safe for
// concurrent use.
type Writer struct {
	sink io.ReadWriteSeeker
}

// NewWriter returns a Writer encoding into the passed sink. The read
// capability of the sink is only exercised by Bytes.
func NewWriter(sink io.ReadWriteSeeker) *Writer {
	return &Writer{sink: sink}
}

// Position returns the current byte offset within the stream.
func (w *Writer) Position() (uint64, error) {
	return w.Seek(0, Current)
}

// Len returns the length in bytes of the stream. It is computed by seeking
// to the end and restoring the prior position, never cached.
func (w *Writer) Len() (uint64, error) {
	oldPos, err := w.Position()
	if err != nil {
		return 0, err
	}

	length, err := w.Seek(0, End)
	if err != nil {
		return 0, err
	}

	if oldPos != length {
		if _, err = w.Seek(int64(oldPos), Begin); err != nil {
			return 0, err
		}
	}

	return length, nil
}

// Seek moves the cursor to offset relative to origin and returns the new
// absolute offset. Offsets the sink cannot honor fail with
// IndexOutOfRangeError rather than clamping.
//
// Seek takes a SeekOrigin rather than an io.Seeker whence, so a Writer is
// deliberately not an io.Seeker; vet's stdmethods check flags the name.
func (w *Writer) Seek(offset int64, origin SeekOrigin) (uint64, error) {
	pos, err := w.sink.Seek(offset, origin.whence())
	if err != nil {
		return 0, &IndexOutOfRangeError{Index: offset}
	}

	return uint64(pos), nil
}

// Bytes materializes the entire sink's contents from offset 0 to the end,
// independent of the cursor's position at call time. It is intended as a
// terminal finish operation.
func (w *Writer) Bytes() ([]byte, error) {
	if _, err := w.Seek(0, Begin); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(w.sink)
	if err != nil {
		return nil, ErrIOFailure
	}

	if logging {
		logger.Info("materialized stream",
			zap.String("module", "writer"),
			zap.Int("bytes", len(data)),
		)
	}

	return data, nil
}

func (w *Writer) write(data []byte) (int, error) {
	n, err := w.sink.Write(data)
	if err != nil {
		return n, ErrIOFailure
	}

	return n, nil
}

// WriteUint8 writes an unsigned byte to the stream
// and advances the cursor by one byte.
func (w *Writer) WriteUint8(value uint8) (int, error) {
	return w.write([]byte{value})
}

// WriteUint16 writes a two-byte unsigned integer to the stream
// and advances the cursor by two bytes.
func (w *Writer) WriteUint16(value uint16) (int, error) {
	var data [2]byte
	byteOrder.PutUint16(data[:], value)
	return w.write(data[:])
}

// WriteUint32 writes a four-byte unsigned integer to the stream
// and advances the cursor by four bytes.
func (w *Writer) WriteUint32(value uint32) (int, error) {
	var data [4]byte
	byteOrder.PutUint32(data[:], value)
	return w.write(data[:])
}

// WriteUint64 writes an eight-byte unsigned integer to the stream
// and advances the cursor by eight bytes.
func (w *Writer) WriteUint64(value uint64) (int, error) {
	var data [8]byte
	byteOrder.PutUint64(data[:], value)
	return w.write(data[:])
}

// WriteInt32 writes a four-byte signed integer to the stream
// and advances the cursor by four bytes.
func (w *Writer) WriteInt32(value int32) (int, error) {
	var data [4]byte
	byteOrder.PutUint32(data[:], uint32(value))
	return w.write(data[:])
}

// Write7BitInt writes an int 7 bits at a time. The high bit of each byte,
// when on, tells the reader to continue reading more bytes. Negative inputs
// are encoded via their unsigned bit pattern.
func (w *Writer) Write7BitInt(value int32) (int, error) {
	n := 0

	v := uint32(value)
	for v >= 0x80 {
		c, err := w.WriteUint8(uint8(v) | 0x80)
		n += c
		if err != nil {
			return n, err
		}
		v >>= 7
	}

	c, err := w.WriteUint8(uint8(v))
	return n + c, err
}

// WriteString writes a length-prefixed string to the stream in UTF-8: the
// byte length in the 7-bit variable-length encoding, then the bytes
// verbatim. The empty string encodes as a single zero-valued length byte.
func (w *Writer) WriteString(value string) (int, error) {
	data := []byte(value)

	n, err := w.Write7BitInt(int32(len(data)))
	if err != nil {
		return n, err
	}

	c, err := w.write(data)
	return n + c, err
}

// WriteBytes writes the given bytes verbatim with no length prefix.
// Framing is the caller's responsibility.
func (w *Writer) WriteBytes(value []byte) (int, error) {
	return w.write(value)
}
