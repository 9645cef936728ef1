package colorbook

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("colorbook: invalid color")

// Common colors. All are fully opaque except Transparent.
var (
	Transparent = color.NRGBA{}
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.NRGBA{A: 255}
	Red         = color.NRGBA{R: 255, A: 255}
	Green       = color.NRGBA{G: 255, A: 255}
	Blue        = color.NRGBA{B: 255, A: 255}
	Yellow      = color.NRGBA{R: 255, G: 255, A: 255}
	Pink        = color.NRGBA{R: 255, G: 105, B: 180, A: 255}
	Orange      = color.NRGBA{R: 255, G: 165, A: 255}
	LightBlue   = color.NRGBA{R: 135, G: 206, B: 235, A: 255}
	Purple      = color.NRGBA{R: 128, B: 128, A: 255}
	Brown       = color.NRGBA{R: 139, G: 69, B: 19, A: 255}
	Grey        = color.NRGBA{R: 136, G: 136, B: 136, A: 255}
)

// palette holds the swatches offered by the drawing toolbar.
var palette = map[string]color.NRGBA{
	"red":       Red,
	"pink":      Pink,
	"orange":    Orange,
	"yellow":    Yellow,
	"green":     Green,
	"lightblue": LightBlue,
	"blue":      Blue,
	"purple":    Purple,
	"brown":     Brown,
	"grey":      Grey,
	"black":     Black,
	"white":     White,
}

// Palette returns the default swatch names in sorted order.
func Palette() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Swatch returns the palette color with the given name.
// Lookup is case-insensitive and accepts "gray" for "grey".
func Swatch(name string) (color.NRGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "gray" {
		name = "grey"
	}
	c, ok := palette[name]
	return c, ok
}

// ParseColor parses either a palette name or a hex string.
func ParseColor(s string) (color.NRGBA, error) {
	if c, ok := Swatch(s); ok {
		return c, nil
	}
	return ParseHex(s)
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional '#'.
func ParseHex(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// Hex creates a color from a hex string.
// Invalid input yields opaque black.
func Hex(hex string) color.NRGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// HexString formats c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func HexString(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// toNRGBA converts any color.Color to non-premultiplied 8-bit RGBA.
func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
