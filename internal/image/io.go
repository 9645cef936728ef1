package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is the JPEG quality used by Encode.
const DefaultJPEGQuality = 90

// LoadImage loads an image from the given file path, detecting the format
// from its content.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func LoadImage(path string) (image.Image, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, 0, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// LoadImageFromBytes decodes an image from a byte slice, detecting the
// format from its content.
func LoadImageFromBytes(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyData
	}
	f, err := Sniff(data)
	if err != nil {
		return nil, 0, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, f, fmt.Errorf("image: decode %s: %w", f, err)
	}
	return img, f, nil
}

// Decode reads all of r and decodes it like LoadImageFromBytes.
func Decode(r io.Reader) (image.Image, Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("image: read: %w", err)
	}
	return LoadImageFromBytes(data)
}

// Sniff identifies the image format from the leading bytes of data.
func Sniff(data []byte) (Format, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return 0, fmt.Errorf("%w: unrecognized content", ErrUnsupportedFormat)
	}
	f, ok := formatForExtension(kind.Extension)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}
	return f, nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", f, err)
	}
	return nil
}

// EncodeToBytes encodes img in format f and returns the bytes.
func EncodeToBytes(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveImage writes img to path in format f.
func SaveImage(path string, img image.Image, f Format) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
