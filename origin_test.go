package binbuf

import (
	"io"
	"testing"
)

func TestSeekOriginString(t *testing.T) {
	cases := []struct {
		origin   SeekOrigin
		expected string
	}{
		{Begin, "Begin"},
		{Current, "Current"},
		{End, "End"},
		{SeekOrigin(42), "SeekOrigin(invalid)"},
	}

	for _, c := range cases {
		if s := c.origin.String(); s != c.expected {
			t.Errorf("expected %v, got %v", c.expected, s)
		}
	}
}

func TestSeekOriginWhence(t *testing.T) {
	cases := []struct {
		origin   SeekOrigin
		expected int
	}{
		{Begin, io.SeekStart},
		{Current, io.SeekCurrent},
		{End, io.SeekEnd},
	}

	for _, c := range cases {
		if w := c.origin.whence(); w != c.expected {
			t.Errorf("%v: expected whence %v, got %v", c.origin, c.expected, w)
		}
	}
}

func TestEndiannessString(t *testing.T) {
	if LittleEndian.String() != "LittleEndian" || BigEndian.String() != "BigEndian" {
		t.Error("unexpected Endianness string values")
	}
}
