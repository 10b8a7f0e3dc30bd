package format

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestPackHeader_Layout(t *testing.T) {
	h, err := CreateHeaderVersion(258, 1, 3, 2)
	if err != nil {
		t.Fatalf("CreateHeaderVersion failed: %v", err)
	}

	packed := PackHeader(h)
	if len(packed) != HeaderSize {
		t.Fatalf("packed length: got %d, want %d", len(packed), HeaderSize)
	}

	// 258 = 0x0102 big-endian, so the width bytes are 0x01 0x02.
	want := []byte{'S', 'A', 'T', 'I', 0x01, 0x02, 0x00, 0x01, 3, 2}
	if !bytes.Equal(packed, want) {
		t.Errorf("packed bytes:\n got %v\nwant %v", packed, want)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		version       int
	}{
		{"minimal", 1, 1, 1},
		{"typical", 640, 480, 1},
		{"maximal", 65535, 65535, 255},
		{"asymmetric", 1, 65535, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := CreateHeaderVersion(tt.width, tt.height, 3, tt.version)
			if err != nil {
				t.Fatalf("CreateHeaderVersion failed: %v", err)
			}

			decoded, err := UnpackHeader(PackHeader(h))
			if err != nil {
				t.Fatalf("UnpackHeader failed: %v", err)
			}
			if decoded != h {
				t.Errorf("round trip: got %+v, want %+v", decoded, h)
			}
		})
	}
}

func TestUnpackHeader_TooShort(t *testing.T) {
	for _, n := range []int{0, 1, 4, 9} {
		data := bytes.Repeat([]byte{0xFF}, n)
		_, err := UnpackHeader(data)
		if err == nil {
			t.Fatalf("UnpackHeader should fail for %d bytes", n)
		}

		var ferr *InvalidFormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("error type: got %T, want *InvalidFormatError", err)
		}
		if !strings.Contains(err.Error(), "expected 10 bytes") {
			t.Errorf("message %q missing expected length", err.Error())
		}
		if !strings.Contains(err.Error(), fmt.Sprintf("got %d", n)) {
			t.Errorf("message %q missing actual length %d", err.Error(), n)
		}
	}
}

func TestUnpackHeader_BadMagic(t *testing.T) {
	h, _ := CreateHeader(10, 10, 3)
	data := PackHeader(h)
	copy(data[0:4], "JUNK")

	_, err := UnpackHeader(data)
	if err == nil {
		t.Fatal("UnpackHeader should fail on bad magic")
	}

	var ferr *InvalidFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error type: got %T, want *InvalidFormatError", err)
	}
	if ferr.Field != "magic" {
		t.Errorf("field: got %q, want magic", ferr.Field)
	}
	if !strings.Contains(err.Error(), "JUNK") {
		t.Errorf("message %q does not name the mismatched magic", err.Error())
	}
}

func TestUnpackHeader_SemanticallyInvalid(t *testing.T) {
	// Structurally well-formed bytes with invalid field values must be
	// rejected at unpack time, not left for the caller to discover.
	tests := []struct {
		name      string
		mutate    func([]byte)
		wantField string
	}{
		{"zero width", func(b []byte) { b[4], b[5] = 0, 0 }, "width"},
		{"zero height", func(b []byte) { b[6], b[7] = 0, 0 }, "height"},
		{"unsupported channels", func(b []byte) { b[8] = 4 }, "channels"},
		{"zero version", func(b []byte) { b[9] = 0 }, "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := CreateHeader(10, 10, 3)
			data := PackHeader(h)
			tt.mutate(data)

			_, err := UnpackHeader(data)
			if err == nil {
				t.Fatal("UnpackHeader should fail")
			}
			var ferr *InvalidFormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("error type: got %T, want *InvalidFormatError", err)
			}
			if ferr.Field != tt.wantField {
				t.Errorf("field: got %q, want %q", ferr.Field, tt.wantField)
			}
		})
	}
}

func TestUnpackHeader_IgnoresTrailingBytes(t *testing.T) {
	h, _ := CreateHeader(2, 2, 3)
	data := append(PackHeader(h), []byte("ff00aa")...)

	decoded, err := UnpackHeader(data)
	if err != nil {
		t.Fatalf("UnpackHeader failed: %v", err)
	}
	if decoded != h {
		t.Errorf("got %+v, want %+v", decoded, h)
	}
}
