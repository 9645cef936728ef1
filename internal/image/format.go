// Package image provides template decoding and raster encoding for colorbook.
//
// Decoding sniffs the content type from the leading bytes instead of
// trusting file extensions, so a PNG saved as "cat.jpg" still loads.
package image

import (
	"fmt"
	"strings"
)

// Format represents an encoded raster file format.
type Format uint8

const (
	// FormatPNG is lossless PNG with alpha. It is the default export format.
	FormatPNG Format = iota

	// FormatJPEG is lossy JPEG without alpha.
	FormatJPEG

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with deflate compression.
	FormatTIFF

	// FormatGIF is GIF. It can be decoded but not encoded.
	FormatGIF

	// FormatWebP is WebP. It can be decoded but not encoded.
	FormatWebP

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a file format.
type FormatInfo struct {
	// Name is the lowercase format name.
	Name string

	// Extension is the canonical file extension without the dot.
	Extension string

	// MIME is the media type.
	MIME string

	// HasAlpha indicates if the format stores an alpha channel.
	HasAlpha bool

	// Lossless indicates if encoding preserves every pixel exactly.
	Lossless bool

	// CanEncode indicates if Encode supports the format.
	CanEncode bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatPNG: {
		Name:      "png",
		Extension: "png",
		MIME:      "image/png",
		HasAlpha:  true,
		Lossless:  true,
		CanEncode: true,
	},
	FormatJPEG: {
		Name:      "jpeg",
		Extension: "jpg",
		MIME:      "image/jpeg",
		CanEncode: true,
	},
	FormatBMP: {
		Name:      "bmp",
		Extension: "bmp",
		MIME:      "image/bmp",
		HasAlpha:  true,
		Lossless:  true,
		CanEncode: true,
	},
	FormatTIFF: {
		Name:      "tiff",
		Extension: "tif",
		MIME:      "image/tiff",
		HasAlpha:  true,
		Lossless:  true,
		CanEncode: true,
	},
	FormatGIF: {
		Name:      "gif",
		Extension: "gif",
		MIME:      "image/gif",
		HasAlpha:  true,
	},
	FormatWebP: {
		Name:      "webp",
		Extension: "webp",
		MIME:      "image/webp",
		HasAlpha:  true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Extension returns the canonical file extension without the dot.
func (f Format) Extension() string {
	return f.Info().Extension
}

// MIME returns the media type of the format.
func (f Format) MIME() string {
	return f.Info().MIME
}

// CanEncode returns true if Encode supports this format.
func (f Format) CanEncode() bool {
	return f.Info().CanEncode
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return f.Info().Name
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ParseFormat parses a format name or file extension, with or without a
// leading dot. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch name {
	case "jpg", "jpe":
		return FormatJPEG, nil
	case "tif":
		return FormatTIFF, nil
	}
	for f := range formatCount {
		if formatInfoTable[f].Name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// formatForExtension maps a sniffed extension to a decodable format.
func formatForExtension(ext string) (Format, bool) {
	f, err := ParseFormat(ext)
	return f, err == nil
}
