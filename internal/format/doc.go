// Package format is the single source of truth for the SATISH container
// format: its constants, header layout, validation rules, and the binary
// codec that packs and unpacks headers.
//
// # Binary Layout
//
// A SATISH file starts with a fixed 10-byte header followed immediately by
// the pixel payload:
//
//	magic(4) || width(2, big-endian) || height(2, big-endian) || channels(1) || version(1)
//
// The payload holds width*height pixels, each encoded as hexadecimal ASCII
// pairs per color channel (6 characters per RGB pixel). The payload length
// is a derived quantity: consumers recompute it with CalculatePixelDataSize
// and compare against the actual byte count to detect truncation.
//
// # Validation
//
// A Header is valid if and only if all five field constraints hold. There is
// no partial validity: CreateHeader and ValidateHeader report the first
// violated field in the fixed order magic, width, height, channels, version.
// UnpackHeader validates eagerly, so a Header value that exists in the
// program already passed every check and downstream code never re-validates.
package format
