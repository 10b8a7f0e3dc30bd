// Package encoder converts standard raster images into SATISH container
// files: load, optional pre-encode filtering, header construction, and
// hexadecimal payload emission.
package encoder

import (
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ben-blance/satish-image-format/internal/fileio"
	"github.com/ben-blance/satish-image-format/internal/format"
)

// Options controls optional pre-encode filtering. Filters apply in a fixed
// order: grayscale, sharpen, blur.
type Options struct {
	Grayscale  bool
	Sharpen    bool
	BlurRadius float64
}

// EncodingError reports a failed encode with its source identified.
type EncodingError struct {
	Source string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Source, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// EncodeImage converts the image at inputPath into a SATISH file at
// outputPath. The input must exist and carry a supported image extension;
// the output directory is created if needed.
func EncodeImage(inputPath, outputPath string, opts Options) error {
	if !fileio.FileExists(inputPath) {
		return &fileio.FileOperationError{Op: "encode missing input", Path: inputPath, Err: os.ErrNotExist}
	}
	if !fileio.IsSupportedImage(inputPath) {
		return &EncodingError{Source: inputPath, Err: fmt.Errorf("unsupported image extension %q", filepath.Ext(inputPath))}
	}

	img, err := imaging.Open(inputPath)
	if err != nil {
		return &EncodingError{Source: inputPath, Err: err}
	}

	data, err := Encode(img, opts)
	if err != nil {
		return &EncodingError{Source: inputPath, Err: err}
	}

	return fileio.WriteFileSafely(outputPath, data)
}

// Encode serializes an in-memory image into the SATISH byte layout: packed
// header followed by width*height pixels as lowercase RRGGBB hex. Alpha is
// dropped; the format is 3-channel RGB only.
func Encode(img image.Image, opts Options) ([]byte, error) {
	nrgba := imaging.Clone(applyFilters(img, opts))
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	header, err := format.CreateHeader(width, height, 3)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, format.HeaderSize+format.CalculatePixelDataSize(width, height, 3))
	out = append(out, format.PackHeader(header)...)

	var px [3]byte
	var encoded [format.HexCharsPerPixel]byte
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			px[0] = row[x*4]
			px[1] = row[x*4+1]
			px[2] = row[x*4+2]
			hex.Encode(encoded[:], px[:])
			out = append(out, encoded[:]...)
		}
	}
	return out, nil
}

func applyFilters(img image.Image, opts Options) image.Image {
	if opts.Grayscale {
		img = effect.Grayscale(img)
	}
	if opts.Sharpen {
		img = effect.Sharpen(img)
	}
	if opts.BlurRadius > 0 {
		img = blur.Gaussian(img, opts.BlurRadius)
	}
	return img
}

// Info describes what encoding an input would produce, without writing
// anything.
type Info struct {
	InputPath     string `json:"input_path"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	PixelCount    int    `json:"pixel_count"`
	Channels      int    `json:"channels"`
	HeaderSize    int    `json:"header_size"`
	PixelDataSize int    `json:"pixel_data_size"`
	TotalFileSize int    `json:"total_file_size"`
}

// EncodingInfo loads the input image and reports the sizes its SATISH
// encoding would have.
func EncodingInfo(inputPath string) (*Info, error) {
	img, err := imaging.Open(inputPath)
	if err != nil {
		return nil, &EncodingError{Source: inputPath, Err: err}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	payload := format.CalculatePixelDataSize(width, height, 3)
	return &Info{
		InputPath:     inputPath,
		Width:         width,
		Height:        height,
		PixelCount:    width * height,
		Channels:      3,
		HeaderSize:    format.HeaderSize,
		PixelDataSize: payload,
		TotalFileSize: format.HeaderSize + payload,
	}, nil
}
