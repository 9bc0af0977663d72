package bytestream

import (
	"os"
	"path"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedStream is a fixed-size ByteStream backed by a shared memory
// mapping of a file, so everything the codec writes is visible to other
// processes reading the file.
type MemoryMappedStream struct {
	*ByteStream
	mapping mmap.MMap
	loc     string // location of the memory mapped file
	size    int    // size in bytes
}

// NewMemoryMappedStream will create and return a new instance of a
// MemoryMappedStream of the given size, replacing any file already at loc.
func NewMemoryMappedStream(loc string, size int) (*MemoryMappedStream, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, err
		}
	}

	// ensure destination directory exists
	dir := path.Dir(loc)
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create backing file")
	}

	l, err := f.Write(make([]byte, size))
	if err != nil {
		return nil, err
	}
	if l < size {
		return nil, errors.Errorf("could not initialize %d bytes", size)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot map backing file")
	}

	return &MemoryMappedStream{
		ByteStream: NewSlice(m),
		mapping:    m,
		loc:        loc,
		size:       size,
	}, nil
}

// Flush synchronizes the mapping with the backing file.
func (s *MemoryMappedStream) Flush() error {
	return s.mapping.Flush()
}

// Unmap will manually delete the memory mapping of a mapped stream
func (s *MemoryMappedStream) Unmap(removefile bool) error {
	if err := s.mapping.Unmap(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(s.loc); err != nil {
			return err
		}
	}

	return nil
}
