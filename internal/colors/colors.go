// Package colors handles conversions between the hexadecimal pixel encoding
// used by the SATISH payload and 8-bit RGB components, plus palette
// statistics over decoded pixel data.
package colors

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color value.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ConversionError reports a color value that could not be converted.
type ConversionError struct {
	Message string
	Err     error
}

func (e *ConversionError) Error() string {
	return e.Message
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func conversionf(err error, msg string, args ...interface{}) *ConversionError {
	return &ConversionError{Message: fmt.Sprintf(msg, args...), Err: err}
}

// RGBToHex converts 8-bit RGB components to a 6-character lowercase hex
// string without a "#" prefix, the form stored in the SATISH payload.
func RGBToHex(r, g, b int) (string, error) {
	if err := validateRGB(r, g, b); err != nil {
		return "", err
	}
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	return strings.TrimPrefix(c.Hex(), "#"), nil
}

// HexToRGB parses a hex color string into RGB components. The "#" prefix is
// optional, matching is case-insensitive, and 3-character shorthand is
// expanded ("f0a" means "ff00aa").
func HexToRGB(hexColor string) (RGB, error) {
	c, err := parseHex(hexColor)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// NormalizeHex canonicalizes a hex color string to 6 lowercase characters
// with no "#" prefix.
func NormalizeHex(hexColor string) (string, error) {
	c, err := parseHex(hexColor)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(c.Hex(), "#"), nil
}

// ValidateHex reports whether the input parses as a hex color.
func ValidateHex(hexColor string) bool {
	_, err := parseHex(hexColor)
	return err == nil
}

// ValidateRGB reports whether all three components are in 0..255.
func ValidateRGB(r, g, b int) bool {
	return validateRGB(r, g, b) == nil
}

// Brightness returns the perceived brightness of an RGB color in 0.0..1.0
// using the Rec. 601 luminance weights.
func Brightness(r, g, b int) (float64, error) {
	if err := validateRGB(r, g, b); err != nil {
		return 0, err
	}
	return luminance(RGB{R: uint8(r), G: uint8(g), B: uint8(b)}), nil
}

// BrightnessFromHex is Brightness over a hex color string.
func BrightnessFromHex(hexColor string) (float64, error) {
	rgb, err := HexToRGB(hexColor)
	if err != nil {
		return 0, err
	}
	return luminance(rgb), nil
}

func luminance(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

func validateRGB(r, g, b int) error {
	components := []struct {
		value int
		name  string
	}{
		{r, "red"},
		{g, "green"},
		{b, "blue"},
	}
	for _, c := range components {
		if c.value < 0 || c.value > 255 {
			return conversionf(nil, "%s component must be 0-255, got %d", c.name, c.value)
		}
	}
	return nil
}

func parseHex(hexColor string) (colorful.Color, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(clean) != 3 && len(clean) != 6 {
		return colorful.Color{}, conversionf(nil, "invalid hex format: %q", hexColor)
	}
	c, err := colorful.Hex("#" + strings.ToLower(clean))
	if err != nil {
		return colorful.Color{}, conversionf(err, "invalid hex format: %q", hexColor)
	}
	return c, nil
}
