package colorbook

import (
	"image"
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/colorbook/internal/stroke"
)

// Shape selects how a stroke's points are turned into pixels.
type Shape = stroke.Shape

const (
	// ShapeRoundLine strokes the open path with round caps and joins.
	// Brush and pencil strokes always use it.
	ShapeRoundLine = stroke.ShapeRoundLine

	// ShapeFilled fills the region enclosed by the path.
	ShapeFilled = stroke.ShapeFilled
)

// Stroke is a transient pointer trail: ordered sample points plus the style
// captured when the trail started. Insertion order is draw order.
type Stroke struct {
	Points []Point
	Width  float64
	Color  color.NRGBA
	Shape  Shape
}

// Add appends a sample point.
func (s *Stroke) Add(p Point) {
	s.Points = append(s.Points, p)
}

// Len returns the number of sample points.
func (s *Stroke) Len() int {
	return len(s.Points)
}

// Clone returns a copy of s that shares no memory with it.
func (s Stroke) Clone() Stroke {
	s.Points = slices.Clone(s.Points)
	return s
}

// Rasterizer commits strokes into a Pixmap with anti-aliased coverage.
// It reuses its coverage buffers between commits and is not safe for
// concurrent use.
type Rasterizer struct {
	z    vector.Rasterizer
	pts  []stroke.Point
	mask []uint8
}

// NewRasterizer creates a stroke rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Commit rasterizes s into dst, compositing its color source-over.
// Geometry outside dst is clipped. It returns the rectangle of dst that
// may have changed, which is empty when nothing was drawn.
func (r *Rasterizer) Commit(dst *Pixmap, s *Stroke) image.Rectangle {
	return r.draw(dst.img, s)
}

// draw rasterizes s into any draw target sharing the surface's coordinates.
// The coverage mask and the rasterizer never exceed the part of dst the
// stroke touches.
func (r *Rasterizer) draw(dst draw.Image, s *Stroke) image.Rectangle {
	style := stroke.Style{Width: float32(s.Width), Shape: s.Shape}
	r.pts = r.pts[:0]
	for _, p := range s.Points {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		r.pts = append(r.pts, stroke.Point{X: float32(p.X), Y: float32(p.Y)})
	}

	minPt, maxPt, ok := stroke.Bounds(r.pts, style)
	if !ok {
		return image.Rectangle{}
	}
	b := dst.Bounds()
	dr := image.Rect(
		clampInt(math.Floor(float64(minPt.X)), b.Min.X, b.Max.X),
		clampInt(math.Floor(float64(minPt.Y)), b.Min.Y, b.Max.Y),
		clampInt(math.Ceil(float64(maxPt.X)), b.Min.X, b.Max.X),
		clampInt(math.Ceil(float64(maxPt.Y)), b.Min.Y, b.Max.Y),
	)
	if dr.Empty() {
		return image.Rectangle{}
	}

	off := stroke.Vec2{X: -float32(dr.Min.X), Y: -float32(dr.Min.Y)}
	for i := range r.pts {
		r.pts[i] = r.pts[i].Add(off)
	}
	r.z.Reset(dr.Dx(), dr.Dy())
	clip := stroke.RectOf(float32(dr.Dx()), float32(dr.Dy()))
	if stroke.Outline(&r.z, r.pts, style, clip) == 0 {
		return image.Rectangle{}
	}
	mask := r.alpha(dr)
	r.z.Draw(mask, dr, image.Opaque, image.Point{})
	draw.DrawMask(dst, dr, image.NewUniform(s.Color), image.Point{}, mask, dr.Min, draw.Over)
	return dr
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clampInt converts v to an int within [lo, hi]. NaN yields lo.
func clampInt(v float64, lo, hi int) int {
	switch {
	case !(v > float64(lo)):
		return lo
	case v >= float64(hi):
		return hi
	}
	return int(v)
}

// alpha returns a cleared coverage mask addressed in surface coordinates.
func (r *Rasterizer) alpha(mr image.Rectangle) *image.Alpha {
	n := mr.Dx() * mr.Dy()
	if cap(r.mask) < n {
		r.mask = make([]uint8, n)
	}
	pix := r.mask[:n]
	clear(pix)
	return &image.Alpha{Pix: pix, Stride: mr.Dx(), Rect: mr}
}
