package gallery

import (
	"errors"
	"fmt"
	"strings"

	intImage "github.com/gogpu/colorbook/internal/image"
)

// ErrUnsupportedFormat is returned for an unknown export format.
var ErrUnsupportedFormat = errors.New("gallery: unsupported format")

// Format is a gallery export format.
type Format uint8

const (
	// PNG is lossless and the default.
	PNG Format = iota
	JPEG
	BMP
	TIFF

	// PDF places the drawing on a printable A4 page.
	PDF
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case PDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == PDF {
		return "pdf"
	}
	if rf, ok := f.raster(); ok {
		return rf.Extension()
	}
	return ""
}

// raster maps f to its raster encoder.
func (f Format) raster() (intImage.Format, bool) {
	switch f {
	case PNG:
		return intImage.FormatPNG, true
	case JPEG:
		return intImage.FormatJPEG, true
	case BMP:
		return intImage.FormatBMP, true
	case TIFF:
		return intImage.FormatTIFF, true
	}
	return 0, false
}

// ParseFormat parses a format name or extension such as "png", "jpg" or
// ".pdf". The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch name {
	case "":
		return PNG, nil
	case "pdf":
		return PDF, nil
	}
	rf, err := intImage.ParseFormat(name)
	if err == nil {
		for _, f := range []Format{PNG, JPEG, BMP, TIFF} {
			if r, _ := f.raster(); r == rf {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
