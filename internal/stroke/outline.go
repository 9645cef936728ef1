package stroke

import (
	"math"

	"github.com/chewxy/math32"
)

// Point represents a position in pixel space.
type Point struct {
	X, Y float32
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Shape selects how a point sequence becomes outline geometry.
type Shape uint8

const (
	// ShapeRoundLine strokes the open polyline with round caps and round joins.
	ShapeRoundLine Shape = iota

	// ShapeFilled fills the polygon enclosed by the points.
	ShapeFilled
)

// String returns a string representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRoundLine:
		return "RoundLine"
	case ShapeFilled:
		return "Filled"
	default:
		return "Unknown"
	}
}

// Style defines the width and shape of an outline.
type Style struct {
	Width float32
	Shape Shape
}

// Path receives outline contours. Every contour starts with MoveTo and
// ends with ClosePath. *vector.Rasterizer from golang.org/x/image/vector
// satisfies Path.
type Path interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// Rect is an axis-aligned clip rectangle.
type Rect struct {
	Min, Max Point
}

// RectOf returns the rectangle [0, w] x [0, h].
func RectOf(w, h float32) Rect {
	return Rect{Max: Point{X: w, Y: h}}
}

// Empty reports whether r contains no area.
func (r Rect) Empty() bool {
	return !(r.Min.X < r.Max.X && r.Min.Y < r.Max.Y)
}

// contains reports whether the box [a, b] lies inside r.
func (r Rect) contains(a, b Point) bool {
	return a.X >= r.Min.X && a.Y >= r.Min.Y && b.X <= r.Max.X && b.Y <= r.Max.Y
}

// overlaps reports whether the box [a, b] intersects the interior of r.
func (r Rect) overlaps(a, b Point) bool {
	return a.X < r.Max.X && b.X > r.Min.X && a.Y < r.Max.Y && b.Y > r.Min.Y
}

// minSegment is the length below which consecutive points are merged.
const minSegment = 1e-4

// Outline emits the outline of pts drawn in style into p, clipped to clip,
// and returns the number of contours emitted.
//
// For ShapeRoundLine every contour (one disc per distinct point, one
// rectangle per segment) has the same orientation, so overlaps accumulate
// instead of cancelling under the rasterizer's absolute-coverage rule. The
// union is the stroke with round caps and round joins; a single point
// yields a disc of diameter Width.
//
// Contours outside clip are dropped and contours crossing its edge are cut
// to it, so every emitted coordinate lies inside clip however large the
// input geometry is. Coverage inside clip is unchanged by the cut.
func Outline(p Path, pts []Point, style Style, clip Rect) int {
	if clip.Empty() {
		return 0
	}
	o := outliner{p: p, clip: clip}
	switch style.Shape {
	case ShapeFilled:
		return o.filled(pts)
	default:
		return o.roundLine(pts, style.Width)
	}
}

// outliner emits contours into p, cutting them to clip. a and b are
// scratch polygons reused across contours.
type outliner struct {
	p    Path
	clip Rect
	a, b []vec64
}

func (o *outliner) roundLine(pts []Point, width float32) int {
	if len(pts) == 0 || !(width > 0) {
		return 0
	}
	radius := width / 2

	n := 0
	last := pts[0]
	n += o.disc(last, radius)
	for _, pt := range pts[1:] {
		d := pt.Sub(last)
		length := d.Length()
		if length < minSegment {
			continue
		}
		n += o.segment(last, pt, d.Scale(1/length).Perp().Scale(radius))
		n += o.disc(pt, radius)
		last = pt
	}
	return n
}

func (o *outliner) filled(pts []Point) int {
	if len(pts) < 3 {
		return 0
	}
	minPt, maxPt := extent(pts)
	if !o.clip.overlaps(minPt, maxPt) {
		return 0
	}
	if o.clip.contains(minPt, maxPt) {
		o.p.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			o.p.LineTo(pt.X, pt.Y)
		}
		o.p.ClosePath()
		return 1
	}
	o.a = o.a[:0]
	for _, pt := range pts {
		o.a = append(o.a, vec64{float64(pt.X), float64(pt.Y)})
	}
	return o.polygon(o.a)
}

// segment emits the rectangle covering a -> b offset by +-norm.
// The corner order keeps the orientation of disc.
func (o *outliner) segment(a, b Point, norm Vec2) int {
	corners := [4]Point{a.Add(norm.Neg()), b.Add(norm.Neg()), b.Add(norm), a.Add(norm)}
	minPt, maxPt := extent(corners[:])
	if !o.clip.overlaps(minPt, maxPt) {
		return 0
	}
	if o.clip.contains(minPt, maxPt) {
		o.p.MoveTo(corners[0].X, corners[0].Y)
		for _, c := range corners[1:] {
			o.p.LineTo(c.X, c.Y)
		}
		o.p.ClosePath()
		return 1
	}

	// Rebuild the corners in float64 so the cut points of very long
	// segments stay accurate.
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	r := float64(norm.Length())
	nx, ny := -dy/l*r, dx/l*r
	o.a = append(o.a[:0],
		vec64{ax - nx, ay - ny}, vec64{bx - nx, by - ny},
		vec64{bx + nx, by + ny}, vec64{ax + nx, ay + ny})
	return o.polygon(o.a)
}

// disc emits a full circle. Circles inside clip are four cubic quarter
// arcs with increasing angle. A circle covering clip becomes clip itself;
// one crossing its edge is flattened and cut.
func (o *outliner) disc(center Point, radius float32) int {
	minPt := Point{X: center.X - radius, Y: center.Y - radius}
	maxPt := Point{X: center.X + radius, Y: center.Y + radius}
	if !o.clip.overlaps(minPt, maxPt) {
		return 0
	}
	if o.clip.contains(minPt, maxPt) {
		o.p.MoveTo(center.X+radius, center.Y)
		const quarter = math32.Pi / 2
		for i := range 4 {
			a0 := float32(i) * quarter
			arcSegment(o.p, center, radius, a0, a0+quarter)
		}
		o.p.ClosePath()
		return 1
	}

	c := vec64{float64(center.X), float64(center.Y)}
	r := float64(radius)
	near, far := o.clip.distances(c)
	if near >= r {
		return 0
	}
	if far <= r {
		cl := o.clip
		o.p.MoveTo(cl.Min.X, cl.Min.Y)
		o.p.LineTo(cl.Max.X, cl.Min.Y)
		o.p.LineTo(cl.Max.X, cl.Max.Y)
		o.p.LineTo(cl.Min.X, cl.Max.Y)
		o.p.ClosePath()
		return 1
	}

	n := circleSegments(r)
	o.a = o.a[:0]
	for i := range n {
		s, k := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		o.a = append(o.a, vec64{c.x + r*k, c.y + r*s})
	}
	return o.polygon(o.a)
}

// polygon cuts poly to clip and emits what remains.
func (o *outliner) polygon(poly []vec64) int {
	cl := o.clip
	o.b = clipAxis(o.b, poly, false, float64(cl.Min.X), 1)
	o.a = clipAxis(o.a, o.b, false, float64(cl.Max.X), -1)
	o.b = clipAxis(o.b, o.a, true, float64(cl.Min.Y), 1)
	o.a = clipAxis(o.a, o.b, true, float64(cl.Max.Y), -1)
	if len(o.a) < 3 {
		return 0
	}
	o.p.MoveTo(float32(o.a[0].x), float32(o.a[0].y))
	for _, v := range o.a[1:] {
		o.p.LineTo(float32(v.x), float32(v.y))
	}
	o.p.ClosePath()
	return 1
}

// vec64 is a float64 position used while cutting polygons.
type vec64 struct {
	x, y float64
}

// clipAxis is one Sutherland-Hodgman pass: it keeps the part of src where
// sign*(coord-bound) >= 0, coord being y when vertical is set and x
// otherwise. The result is appended to dst[:0].
func clipAxis(dst, src []vec64, vertical bool, bound, sign float64) []vec64 {
	dst = dst[:0]
	if len(src) == 0 {
		return dst
	}
	coord := func(v vec64) float64 {
		if vertical {
			return v.y
		}
		return v.x
	}
	cut := func(p, q vec64, dp, dq float64) vec64 {
		t := dp / (dp - dq)
		v := vec64{p.x + t*(q.x-p.x), p.y + t*(q.y-p.y)}
		if vertical {
			v.y = bound
		} else {
			v.x = bound
		}
		return v
	}

	prev := src[len(src)-1]
	dPrev := sign * (coord(prev) - bound)
	for _, cur := range src {
		dCur := sign * (coord(cur) - bound)
		switch {
		case dCur >= 0:
			if dPrev < 0 {
				dst = append(dst, cut(prev, cur, dPrev, dCur))
			}
			dst = append(dst, cur)
		case dPrev >= 0:
			dst = append(dst, cut(prev, cur, dPrev, dCur))
		}
		prev, dPrev = cur, dCur
	}
	return dst
}

// distances returns the distances from c to the nearest point and to the
// farthest corner of r.
func (r Rect) distances(c vec64) (near, far float64) {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	nx := math.Max(math.Max(x0-c.x, 0), c.x-x1)
	ny := math.Max(math.Max(y0-c.y, 0), c.y-y1)
	fx := math.Max(math.Abs(c.x-x0), math.Abs(c.x-x1))
	fy := math.Max(math.Abs(c.y-y0), math.Abs(c.y-y1))
	return math.Hypot(nx, ny), math.Hypot(fx, fy)
}

// Flattened circles deviate from the true circle by at most flatness
// pixels, up to maxCircleSegments vertices.
const (
	flatness          = 0.05
	maxCircleSegments = 4096
)

func circleSegments(r float64) int {
	if r <= flatness {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-flatness/r)))
	return min(max(n, 8), maxCircleSegments)
}

// extent returns the bounding box of pts, which must not be empty.
func extent(pts []Point) (minPt, maxPt Point) {
	minPt, maxPt = pts[0], pts[0]
	for _, pt := range pts[1:] {
		minPt.X = math32.Min(minPt.X, pt.X)
		minPt.Y = math32.Min(minPt.Y, pt.Y)
		maxPt.X = math32.Max(maxPt.X, pt.X)
		maxPt.Y = math32.Max(maxPt.Y, pt.Y)
	}
	return minPt, maxPt
}

// arcSegment adds a single arc segment (up to 90 degrees) using a cubic Bezier.
// The pen must already be at the arc's start point.
func arcSegment(p Path, center Point, radius, a0, a1 float32) {
	// Control distance from "Drawing an elliptical arc using polylines,
	// quadratic or cubic Bezier curves" (L. Maisonobe).
	da := a1 - a0
	t := math32.Tan(da / 2)
	alpha := math32.Sin(da) * (math32.Sqrt(4+3*t*t) - 1) / 3

	sin0, cos0 := math32.Sincos(a0)
	sin1, cos1 := math32.Sincos(a1)

	p1 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p2 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}

	c1 := Point{X: p1.X - alpha*radius*sin0, Y: p1.Y + alpha*radius*cos0}
	c2 := Point{X: p2.X + alpha*radius*sin1, Y: p2.Y - alpha*radius*cos1}

	p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
}

// Bounds returns the axis-aligned box covering the outline of pts in style.
// ok is false when the outline is empty.
func Bounds(pts []Point, style Style) (minPt, maxPt Point, ok bool) {
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	pad := float32(0)
	if style.Shape == ShapeRoundLine {
		if !(style.Width > 0) {
			return Point{}, Point{}, false
		}
		pad = style.Width / 2
	} else if len(pts) < 3 {
		return Point{}, Point{}, false
	}

	minPt, maxPt = extent(pts)
	minPt = Point{X: minPt.X - pad, Y: minPt.Y - pad}
	maxPt = Point{X: maxPt.X + pad, Y: maxPt.Y + pad}
	return minPt, maxPt, true
}
