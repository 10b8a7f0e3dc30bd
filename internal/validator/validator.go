// Package validator performs comprehensive and quick integrity checks on
// SATISH container files, accumulating findings instead of failing fast so
// a caller can report everything wrong with a file at once.
package validator

import (
	"fmt"
	"io"
	"os"

	"github.com/ben-blance/satish-image-format/internal/fileio"
	"github.com/ben-blance/satish-image-format/internal/format"
)

// Details carries the facts gathered while validating, populated as far as
// validation got before the first hard failure.
type Details struct {
	FileSize        int64 `json:"file_size"`
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	Channels        int   `json:"channels"`
	Version         int   `json:"version"`
	PixelCount      int   `json:"pixel_count"`
	ExpectedPayload int   `json:"expected_payload_size"`
	ActualPayload   int   `json:"actual_payload_size"`
}

// Report is the outcome of a full validation pass. Valid is true exactly
// when Errors is empty; Warnings never affect validity.
type Report struct {
	Valid    bool     `json:"valid"`
	FilePath string   `json:"file_path"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Details  Details  `json:"details"`
}

func (r *Report) errorf(msg string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(msg, args...))
}

func (r *Report) warnf(msg string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(msg, args...))
}

// ValidateFile runs every check against the file at path and never returns
// an error itself: all findings land in the report. Checks run in order
// (access, extension, size, header, payload) and later checks are skipped
// once their prerequisites failed.
func ValidateFile(path string) *Report {
	report := &Report{FilePath: path, Errors: []string{}, Warnings: []string{}}

	if !fileio.FileExists(path) {
		report.errorf("file does not exist: %s", path)
		return report
	}
	if !fileio.IsSatishFile(path) {
		report.warnf("unexpected file extension, expected %s", fileio.SatishExtension)
	}

	size, err := fileio.GetFileSize(path)
	if err != nil {
		report.errorf("cannot determine file size: %v", err)
		return report
	}
	report.Details.FileSize = size
	if size < format.HeaderSize {
		report.errorf("file too small for a header: %d bytes, need at least %d", size, format.HeaderSize)
		return report
	}

	data, err := fileio.ReadFileSafely(path)
	if err != nil {
		report.errorf("cannot read file: %v", err)
		return report
	}

	header, err := format.UnpackHeader(data)
	if err != nil {
		report.errorf("invalid header: %v", err)
		return report
	}
	report.Details.Width = int(header.Width)
	report.Details.Height = int(header.Height)
	report.Details.Channels = int(header.Channels)
	report.Details.Version = int(header.Version)
	report.Details.PixelCount = int(header.Width) * int(header.Height)

	payload := data[format.HeaderSize:]
	expected := format.CalculatePixelDataSize(int(header.Width), int(header.Height), int(header.Channels))
	report.Details.ExpectedPayload = expected
	report.Details.ActualPayload = len(payload)
	if len(payload) != expected {
		report.errorf("pixel data size mismatch: expected %d, got %d", expected, len(payload))
	}

	if offset, ok := firstNonHexByte(payload); ok {
		report.errorf("invalid hex character %q at payload offset %d", payload[offset], offset)
	}

	if header.Version != format.CurrentVersion {
		report.warnf("file version %d differs from current version %d", header.Version, format.CurrentVersion)
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// QuickValidate is a best-effort header-only check. It reads just the fixed
// header and reports whether it parses and validates; any failure along the
// way, including I/O, degrades to false.
func QuickValidate(path string) bool {
	if !fileio.FileExists(path) {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	headerBytes := make([]byte, format.HeaderSize)
	if _, err := io.ReadFull(f, headerBytes); err != nil {
		return false
	}

	_, err = format.UnpackHeader(headerBytes)
	return err == nil
}

func firstNonHexByte(payload []byte) (int, bool) {
	for i, b := range payload {
		switch {
		case b >= '0' && b <= '9':
		case b >= 'a' && b <= 'f':
		case b >= 'A' && b <= 'F':
		default:
			return i, true
		}
	}
	return 0, false
}
