package format

import (
	"fmt"
	"sort"
)

// Format constants. These are fixed at compile time; nothing in the package
// mutates them after process start.
const (
	// Magic is the 4-byte marker identifying a SATISH file.
	Magic = "SATI"

	// CurrentVersion is the format version written by this library.
	CurrentVersion = 1

	// Header field sizes in bytes.
	MagicSize    = 4
	WidthSize    = 2
	HeightSize   = 2
	ChannelsSize = 1
	VersionSize  = 1

	// HeaderSize is the fixed total header size in bytes.
	HeaderSize = MagicSize + WidthSize + HeightSize + ChannelsSize + VersionSize

	// Dimension limits. Width and height are stored as unsigned 16-bit.
	MaxWidth  = 65535
	MaxHeight = 65535

	// HexCharsPerPixel is the encoded payload width of one pixel: two
	// hexadecimal ASCII characters per color channel, RRGGBB.
	HexCharsPerPixel = 6

	// Extension is the canonical container file extension.
	Extension = ".satish"
)

// magicBytes is Magic as a byte array for direct comparison against headers.
var magicBytes = [MagicSize]byte{'S', 'A', 'T', 'I'}

// supportedChannels maps accepted channel counts to their layout name.
// Currently only 3-channel RGB is supported.
var supportedChannels = map[uint8]string{
	3: "RGB",
}

// Header is the fixed-size metadata record prefixed to every SATISH file.
// It is a plain value: construct, validate, use, discard. Two headers are
// equal exactly when their fields are equal.
type Header struct {
	Magic    [MagicSize]byte
	Width    uint16
	Height   uint16
	Channels uint8
	Version  uint8
}

// InvalidFormatError reports a header or payload that violates the format
// specification. Field names the first violated constraint.
type InvalidFormatError struct {
	Field   string
	Message string
	Err     error
}

func (e *InvalidFormatError) Error() string {
	return e.Message
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// invalidf builds an InvalidFormatError for a field with a formatted message.
func invalidf(field, msg string, args ...interface{}) *InvalidFormatError {
	return &InvalidFormatError{Field: field, Message: fmt.Sprintf(msg, args...)}
}

// CreateHeader constructs and validates a header in one step using the
// current format version. Dimensions and channels are taken as int so that
// out-of-range values fail validation instead of silently wrapping.
func CreateHeader(width, height, channels int) (Header, error) {
	return CreateHeaderVersion(width, height, channels, CurrentVersion)
}

// CreateHeaderVersion is CreateHeader with an explicit format version.
// It fails with *InvalidFormatError on the first violated field, in the
// order width, height, channels, version (the magic is fixed here and
// cannot be wrong at construction).
func CreateHeaderVersion(width, height, channels, version int) (Header, error) {
	if width < 1 || width > MaxWidth {
		return Header{}, invalidf("width", "width must be between 1 and %d, got %d", MaxWidth, width)
	}
	if height < 1 || height > MaxHeight {
		return Header{}, invalidf("height", "height must be between 1 and %d, got %d", MaxHeight, height)
	}
	if !IsSupportedChannelCount(channels) {
		return Header{}, invalidf("channels", "unsupported channels: %d. supported: %v", channels, SupportedChannelCounts())
	}
	if version < 1 || version > 255 {
		return Header{}, invalidf("version", "version must be between 1 and 255, got %d", version)
	}
	return Header{
		Magic:    magicBytes,
		Width:    uint16(width),
		Height:   uint16(height),
		Channels: uint8(channels),
		Version:  uint8(version),
	}, nil
}

// ValidateHeader re-applies all five field checks to an already-constructed
// header. It exists for headers decoded from untrusted bytes; the check
// order matches CreateHeader with the magic first.
func ValidateHeader(h Header) error {
	if h.Magic != magicBytes {
		return invalidf("magic", "invalid magic bytes: expected %q, got %q", Magic, h.Magic[:])
	}
	if h.Width < 1 {
		return invalidf("width", "width must be between 1 and %d, got %d", MaxWidth, h.Width)
	}
	if h.Height < 1 {
		return invalidf("height", "height must be between 1 and %d, got %d", MaxHeight, h.Height)
	}
	if _, ok := supportedChannels[h.Channels]; !ok {
		return invalidf("channels", "unsupported channels: %d. supported: %v", h.Channels, SupportedChannelCounts())
	}
	if h.Version < 1 {
		return invalidf("version", "version must be >= 1, got %d", h.Version)
	}
	return nil
}

// CalculatePixelDataSize returns the expected payload size in bytes for the
// given dimensions. The channels parameter is accepted for interface
// symmetry but does not enter the formula: HexCharsPerPixel already bakes in
// the 3-channel RGB encoding.
func CalculatePixelDataSize(width, height, channels int) int {
	_ = channels
	return width * height * HexCharsPerPixel
}

// ChannelFormatName returns the layout name for a channel count ("RGB"), or
// "Unknown" for unsupported counts.
func ChannelFormatName(channels uint8) string {
	if name, ok := supportedChannels[channels]; ok {
		return name
	}
	return "Unknown"
}

// IsSupportedChannelCount reports whether the format accepts the given
// channel count.
func IsSupportedChannelCount(channels int) bool {
	if channels < 0 || channels > 255 {
		return false
	}
	_, ok := supportedChannels[uint8(channels)]
	return ok
}

// SupportedChannelCounts returns the accepted channel counts in ascending
// order.
func SupportedChannelCounts() []int {
	counts := make([]int, 0, len(supportedChannels))
	for c := range supportedChannels {
		counts = append(counts, int(c))
	}
	sort.Ints(counts)
	return counts
}

// Info describes the format for external tooling. All fields are static.
type Info struct {
	Name              string         `json:"name"`
	Magic             string         `json:"magic"`
	Version           int            `json:"version"`
	Extension         string         `json:"extension"`
	SupportedChannels map[int]string `json:"supported_channels"`
	MaxWidth          int            `json:"max_width"`
	MaxHeight         int            `json:"max_height"`
	PixelEncoding     string         `json:"pixel_encoding"`
	HeaderSize        int            `json:"header_size"`
}

// FormatInfo returns static descriptive metadata about the format. It has
// no side effects and no failure modes; the channel map is a fresh copy on
// every call.
func FormatInfo() Info {
	channels := make(map[int]string, len(supportedChannels))
	for c, name := range supportedChannels {
		channels[int(c)] = name
	}
	return Info{
		Name:              "SATISH Image Format",
		Magic:             Magic,
		Version:           CurrentVersion,
		Extension:         Extension,
		SupportedChannels: channels,
		MaxWidth:          MaxWidth,
		MaxHeight:         MaxHeight,
		PixelEncoding:     "Hexadecimal RGB",
		HeaderSize:        HeaderSize,
	}
}
