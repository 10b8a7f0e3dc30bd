package encoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ben-blance/satish-image-format/internal/fileio"
	"github.com/ben-blance/satish-image-format/internal/format"
)

func createSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestEncode(t *testing.T) {
	img := createSolidImage(2, 2, color.NRGBA{R: 255, G: 0, B: 170, A: 255})

	data, err := Encode(img, Options{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	wantLen := format.HeaderSize + format.CalculatePixelDataSize(2, 2, 3)
	if len(data) != wantLen {
		t.Fatalf("length: got %d, want %d", len(data), wantLen)
	}

	header, err := format.UnpackHeader(data)
	if err != nil {
		t.Fatalf("UnpackHeader failed: %v", err)
	}
	if header.Width != 2 || header.Height != 2 || header.Channels != 3 {
		t.Errorf("header: %+v", header)
	}

	payload := data[format.HeaderSize:]
	if !bytes.Equal(payload, []byte("ff00aaff00aaff00aaff00aa")) {
		t.Errorf("payload: got %q", payload)
	}
}

func TestEncode_PixelOrder(t *testing.T) {
	// Row-major: (0,0) red, (1,0) green, (0,1) blue, (1,1) white.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})

	data, err := Encode(img, Options{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := "ff0000" + "00ff00" + "0000ff" + "ffffff"
	if got := string(data[format.HeaderSize:]); got != want {
		t.Errorf("payload: got %q, want %q", got, want)
	}
}

func TestEncode_Grayscale(t *testing.T) {
	img := createSolidImage(3, 3, color.NRGBA{R: 200, G: 40, B: 90, A: 255})

	data, err := Encode(img, Options{Grayscale: true})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	payload := data[format.HeaderSize:]
	r, g, b := payload[0:2], payload[2:4], payload[4:6]
	if !bytes.Equal(r, g) || !bytes.Equal(g, b) {
		t.Errorf("grayscale pixel has unequal channels: %s %s %s", r, g, b)
	}
}

func TestEncode_EmptyImage(t *testing.T) {
	// Zero-size images fail header validation.
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	_, err := Encode(img, Options{})
	if err == nil {
		t.Fatal("Encode should fail for an empty image")
	}
	var ferr *format.InvalidFormatError
	if !errors.As(err, &ferr) {
		t.Errorf("error type: got %T, want *format.InvalidFormatError", err)
	}
}

func TestEncodeImage(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	output := filepath.Join(dir, "out", "input.satish")
	writePNG(t, input, createSolidImage(4, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))

	if err := EncodeImage(input, output, Options{}); err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if !fileio.FileExists(output) {
		t.Fatal("output file not written")
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("readback: %v", err)
	}
	header, err := format.UnpackHeader(data)
	if err != nil {
		t.Fatalf("UnpackHeader failed: %v", err)
	}
	if header.Width != 4 || header.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", header.Width, header.Height)
	}
	if string(data[format.HeaderSize:format.HeaderSize+6]) != "010203" {
		t.Errorf("first pixel: got %q", data[format.HeaderSize:format.HeaderSize+6])
	}
}

func TestEncodeImage_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := EncodeImage(filepath.Join(dir, "ghost.png"), filepath.Join(dir, "out.satish"), Options{})
	if err == nil {
		t.Fatal("EncodeImage should fail for a missing input")
	}
	var ferr *fileio.FileOperationError
	if !errors.As(err, &ferr) {
		t.Errorf("error type: got %T, want *fileio.FileOperationError", err)
	}
}

func TestEncodeImage_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(input, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	err := EncodeImage(input, filepath.Join(dir, "out.satish"), Options{})
	if err == nil {
		t.Fatal("EncodeImage should fail for an unsupported extension")
	}
	var eerr *EncodingError
	if !errors.As(err, &eerr) {
		t.Errorf("error type: got %T, want *EncodingError", err)
	}
}

func TestEncodingInfo(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "probe.png")
	writePNG(t, input, createSolidImage(10, 5, color.NRGBA{A: 255}))

	info, err := EncodingInfo(input)
	if err != nil {
		t.Fatalf("EncodingInfo failed: %v", err)
	}
	if info.Width != 10 || info.Height != 5 {
		t.Errorf("dimensions: got %dx%d", info.Width, info.Height)
	}
	if info.PixelCount != 50 {
		t.Errorf("pixel count: got %d", info.PixelCount)
	}
	if info.PixelDataSize != 300 {
		t.Errorf("payload size: got %d, want 300", info.PixelDataSize)
	}
	if info.TotalFileSize != 310 {
		t.Errorf("total size: got %d, want 310", info.TotalFileSize)
	}
}
