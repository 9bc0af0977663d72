package bytestream

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryMappedStream(t *testing.T) {
	filename := "bytestream_memorymappedstream_test.tmp"
	loc := filepath.Join(os.TempDir(), filename)

	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			t.Fatal("Cannot proceed with test as cannot remove stale file")
		}
	}

	s, err := NewMemoryMappedStream(loc, 10)
	if err != nil {
		t.Fatal("Cannot proceed with test as create stream failed:", err)
	}

	if _, err = os.Stat(loc); err != nil {
		t.Fatalf("No File created at %v despite the stream being initialized", loc)
	}

	if _, err = s.Seek(5, io.SeekStart); err != nil {
		t.Fatal("Cannot seek inside MemoryMappedStream")
	}

	if _, err = s.Write([]byte{'x'}); err != nil {
		t.Fatal("Cannot Write to MemoryMappedStream")
	}

	if err = s.Flush(); err != nil {
		t.Fatal("Cannot flush MemoryMappedStream")
	}

	reader, err := os.Open(loc)
	if err != nil {
		t.Fatal("Cannot open memory mapped file")
	}

	data := make([]byte, 10)
	_, err = reader.Read(data)
	if err != nil {
		t.Fatal("Cannot read data from memory mapped file")
	}

	if data[5] != 'x' {
		t.Error("Data Written in stream not getting reflected in file")
	}

	if err = reader.Close(); err != nil {
		t.Error("Cannot close file reader")
	}

	testUnmap(s, loc, t)
}

func testUnmap(s *MemoryMappedStream, loc string, t *testing.T) {
	if err := s.Unmap(true); err != nil {
		t.Error(err)
	}

	if _, err := os.Stat(loc); err == nil {
		t.Error("Memory Mapped File not getting deleted on Unmap")
	}
}
