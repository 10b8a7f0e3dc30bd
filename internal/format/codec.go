package format

import "encoding/binary"

// PackHeader serializes a header into its exact HeaderSize-byte binary form:
// magic || width(BE16) || height(BE16) || channels || version.
//
// Callers validate before packing; a Header obtained from CreateHeader or
// UnpackHeader already passed every check, so PackHeader is a pure, total
// function and does not re-validate.
func PackHeader(h Header) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:MagicSize], h.Magic[:])
	binary.BigEndian.PutUint16(buf[4:6], h.Width)
	binary.BigEndian.PutUint16(buf[6:8], h.Height)
	buf[8] = h.Channels
	buf[9] = h.Version
	return buf
}

// UnpackHeader decodes and validates a header from binary data. It fails
// with *InvalidFormatError if the input is shorter than HeaderSize or the
// magic bytes do not match, and routes the decoded header through
// ValidateHeader so a structurally well-formed but semantically invalid
// header (zero width, unsupported channel count) is rejected here rather
// than discovered downstream.
func UnpackHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, invalidf("header", "header too short: expected %d bytes, got %d", HeaderSize, len(data))
	}

	var h Header
	copy(h.Magic[:], data[0:MagicSize])
	if h.Magic != magicBytes {
		return Header{}, invalidf("magic", "invalid magic bytes: expected %q, got %q", Magic, data[0:MagicSize])
	}

	h.Width = binary.BigEndian.Uint16(data[4:6])
	h.Height = binary.BigEndian.Uint16(data[6:8])
	h.Channels = data[8]
	h.Version = data[9]

	if err := ValidateHeader(h); err != nil {
		return Header{}, err
	}
	return h, nil
}
