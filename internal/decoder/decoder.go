// Package decoder reads SATISH container files back into pixel data and
// standard raster images, and reports container metadata without a full
// decode.
package decoder

import (
	"encoding/hex"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ben-blance/satish-image-format/internal/colors"
	"github.com/ben-blance/satish-image-format/internal/fileio"
	"github.com/ben-blance/satish-image-format/internal/format"
)

// DecodingError reports a failed decode with its source identified.
type DecodingError struct {
	Source string
	Err    error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Source, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// Image is a fully decoded SATISH file: validated header plus pixel data in
// row-major order.
type Image struct {
	Header format.Header
	Pixels []colors.RGB
}

// ToNRGBA renders the decoded pixels as a standard Go image. Alpha is fully
// opaque; the format carries no transparency.
func (im *Image) ToNRGBA() *image.NRGBA {
	width, height := int(im.Header.Width), int(im.Header.Height)
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range im.Pixels {
		offset := (i/width)*out.Stride + (i%width)*4
		out.Pix[offset] = p.R
		out.Pix[offset+1] = p.G
		out.Pix[offset+2] = p.B
		out.Pix[offset+3] = 0xFF
	}
	return out
}

// Decode parses a complete SATISH byte sequence: header first, then the
// payload checked against the derived expected size. Truncated or oversized
// payloads and non-hex payload bytes fail with *format.InvalidFormatError.
func Decode(data []byte) (*Image, error) {
	header, err := format.UnpackHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[format.HeaderSize:]
	expected := format.CalculatePixelDataSize(int(header.Width), int(header.Height), int(header.Channels))
	if len(payload) != expected {
		return nil, &format.InvalidFormatError{
			Field:   "payload",
			Message: fmt.Sprintf("pixel data size mismatch: expected %d, got %d", expected, len(payload)),
		}
	}

	raw := make([]byte, len(payload)/2)
	if _, err := hex.Decode(raw, payload); err != nil {
		return nil, &format.InvalidFormatError{
			Field:   "payload",
			Message: fmt.Sprintf("invalid hex pixel data: %v", err),
			Err:     err,
		}
	}

	pixels := make([]colors.RGB, len(raw)/3)
	for i := range pixels {
		pixels[i] = colors.RGB{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return &Image{Header: header, Pixels: pixels}, nil
}

// DecodeFile reads and decodes the SATISH file at path.
func DecodeFile(path string) (*Image, error) {
	data, err := fileio.ReadFileSafely(path)
	if err != nil {
		return nil, err
	}
	im, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return im, nil
}

// DecodeToImage converts the SATISH file at satishPath into a standard
// raster image at outputPath; the output extension selects the format.
func DecodeToImage(satishPath, outputPath string) error {
	im, err := DecodeFile(satishPath)
	if err != nil {
		return err
	}
	if err := imaging.Save(im.ToNRGBA(), outputPath); err != nil {
		return &DecodingError{Source: satishPath, Err: err}
	}
	return nil
}

// HeaderInfo is the decoded header in report form.
type HeaderInfo struct {
	Magic    string `json:"magic"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Channels int    `json:"channels"`
	Version  int    `json:"version"`
}

// FileReport describes a SATISH file without decoding its pixels.
type FileReport struct {
	FilePath        string     `json:"file_path"`
	FileSize        int64      `json:"file_size"`
	Header          HeaderInfo `json:"header"`
	PixelCount      int        `json:"pixel_count"`
	ExpectedPayload int        `json:"expected_pixel_data_size"`
	ActualPayload   int        `json:"actual_pixel_data_size"`
	PayloadValid    bool       `json:"pixel_data_valid"`
	ChannelFormat   string     `json:"channel_format"`
}

// Info reads only enough of the file at path to report its header fields
// and whether the payload length matches the derived expectation.
func Info(path string) (*FileReport, error) {
	data, err := fileio.ReadFileSafely(path)
	if err != nil {
		return nil, err
	}

	header, err := format.UnpackHeader(data)
	if err != nil {
		return nil, err
	}

	expected := format.CalculatePixelDataSize(int(header.Width), int(header.Height), int(header.Channels))
	actual := len(data) - format.HeaderSize
	return &FileReport{
		FilePath: path,
		FileSize: int64(len(data)),
		Header: HeaderInfo{
			Magic:    string(header.Magic[:]),
			Width:    int(header.Width),
			Height:   int(header.Height),
			Channels: int(header.Channels),
			Version:  int(header.Version),
		},
		PixelCount:      int(header.Width) * int(header.Height),
		ExpectedPayload: expected,
		ActualPayload:   actual,
		PayloadValid:    expected == actual,
		ChannelFormat:   format.ChannelFormatName(header.Channels),
	}, nil
}
