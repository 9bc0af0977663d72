package binbuf

import "io"

// SeekOrigin specifies the reference point in a stream to use for seeking.
type SeekOrigin int

// values for SeekOrigin
const (
	// Begin specifies the beginning of a stream.
	Begin SeekOrigin = iota
	// Current specifies the current position within a stream.
	Current
	// End specifies the end of a stream.
	End
)

func (o SeekOrigin) String() string {
	switch o {
	case Begin:
		return "Begin"
	case Current:
		return "Current"
	case End:
		return "End"
	}
	return "SeekOrigin(invalid)"
}

// whence converts a SeekOrigin into the whence value expected by io.Seeker.
func (o SeekOrigin) whence() int {
	switch o {
	case Current:
		return io.SeekCurrent
	case End:
		return io.SeekEnd
	}
	return io.SeekStart
}

// Endianness refers to the order of bytes within a binary representation of
// a number. Only LittleEndian is exercised by the fixed-width codecs.
type Endianness int

// values for Endianness
const (
	// LittleEndian places the least significant byte at the lowest address.
	LittleEndian Endianness = iota
	// BigEndian places the most significant byte at the lowest address.
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	}
	return "Endianness(invalid)"
}
