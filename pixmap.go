package colorbook

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("colorbook: invalid dimensions")

// Pixmap is the drawing surface: a fixed-size grid of non-premultiplied
// 8-bit RGBA pixels. Every in-range pixel always holds a defined color.
//
// A Pixmap is not safe for concurrent use. Readers that may run while the
// owning Engine mutates it must work on a copy (see Engine.Snapshot).
type Pixmap struct {
	img *image.NRGBA
}

// NewPixmap creates a new pixmap with the given dimensions, cleared to
// opaque white. Returns ErrInvalidDimensions if width or height is not positive.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	p := &Pixmap{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
	p.Clear(White)
	return p, nil
}

// FromImage creates a pixmap holding a copy of img, translated so that
// img.Bounds().Min maps to (0, 0).
func FromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Pixmap{img: dst}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (non-premultiplied RGBA, 4 bytes per
// pixel, rows top to bottom). The slice aliases the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// InBounds reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) InBounds(x, y int) bool {
	return x >= 0 && x < p.img.Rect.Max.X && y >= 0 && y < p.img.Rect.Max.Y
}

// SetPixel sets the color of a single pixel.
// Out-of-range coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if !p.InBounds(x, y) {
		return
	}
	i := p.img.PixOffset(x, y)
	s := p.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}

// GetPixel returns the color of a single pixel.
// Out-of-range coordinates return Transparent; callers that must tell a
// transparent pixel from a miss check InBounds first.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if !p.InBounds(x, y) {
		return Transparent
	}
	i := p.img.PixOffset(x, y)
	s := p.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	pix := p.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	// Doubling copy fills the buffer in O(log n) copy calls.
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// PasteScaled scales src into the destination rectangle dr of p, sampling
// with mode and compositing source-over. Pixels outside dr (or outside the
// pixmap) are left untouched.
func (p *Pixmap) PasteScaled(src image.Image, dr image.Rectangle, mode InterpolationMode) {
	if dr.Empty() || src.Bounds().Empty() {
		return
	}
	mode.scaler().Scale(p.img, dr, src, src.Bounds(), draw.Over, nil)
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	dst := image.NewNRGBA(p.img.Rect)
	copy(dst.Pix, p.img.Pix)
	return &Pixmap{img: dst}
}

// ToImage returns a copy of the pixmap as an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	return p.Clone().img
}

// Equal reports whether p and q have the same size and pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p.img.Rect != q.img.Rect {
		return false
	}
	return bytes.Equal(p.img.Pix, q.img.Pix)
}

// EncodePNG writes the pixmap as a lossless PNG image.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.img); err != nil {
		return fmt.Errorf("colorbook: encode PNG: %w", err)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, toNRGBA(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
