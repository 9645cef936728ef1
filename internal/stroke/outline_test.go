package stroke

import (
	"math"
	"testing"
)

// recorder is a Path that flattens contours into polygons so tests can
// check orientation and extent. Cubic segments are sampled.
type recorder struct {
	contours [][]Point
	open     bool
}

func (r *recorder) MoveTo(x, y float32) {
	r.contours = append(r.contours, []Point{{X: x, Y: y}})
	r.open = true
}

func (r *recorder) LineTo(x, y float32) {
	c := &r.contours[len(r.contours)-1]
	*c = append(*c, Point{X: x, Y: y})
}

func (r *recorder) CubeTo(bx, by, cx, cy, dx, dy float32) {
	c := &r.contours[len(r.contours)-1]
	a := (*c)[len(*c)-1]
	const steps = 8
	for i := 1; i <= steps; i++ {
		t := float32(i) / steps
		u := 1 - t
		*c = append(*c, Point{
			X: u*u*u*a.X + 3*u*u*t*bx + 3*u*t*t*cx + t*t*t*dx,
			Y: u*u*u*a.Y + 3*u*u*t*by + 3*u*t*t*cy + t*t*t*dy,
		})
	}
}

func (r *recorder) ClosePath() {
	r.open = false
}

// everywhere is a clip rectangle far larger than any test geometry.
var everywhere = Rect{Min: Point{X: -1e4, Y: -1e4}, Max: Point{X: 1e4, Y: 1e4}}

// signedArea returns the shoelace area of a closed polygon.
func signedArea(pts []Point) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += float64(pts[i].X)*float64(pts[j].Y) - float64(pts[j].X)*float64(pts[i].Y)
	}
	return sum / 2
}

func TestOutline_SinglePointIsDisc(t *testing.T) {
	var r recorder
	n := Outline(&r, []Point{{X: 5, Y: 5}}, Style{Width: 20, Shape: ShapeRoundLine}, everywhere)
	if n != 1 {
		t.Fatalf("Outline() contours = %d, want 1", n)
	}
	if r.open {
		t.Error("contour left open")
	}

	area := signedArea(r.contours[0])
	want := math.Pi * 10 * 10
	if math.Abs(area-want) > want*0.02 {
		t.Errorf("disc area = %.2f, want %.2f", area, want)
	}
	for _, p := range r.contours[0] {
		d := math.Hypot(float64(p.X-5), float64(p.Y-5))
		if math.Abs(d-10) > 0.05 {
			t.Errorf("disc point %v at distance %.3f from center, want 10", p, d)
		}
	}
}

func TestOutline_ConsistentOrientation(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"horizontal", []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{"reversed", []Point{{X: 10, Y: 0}, {X: 0, Y: 0}}},
		{"vertical", []Point{{X: 0, Y: 0}, {X: 0, Y: 10}}},
		{"zigzag", []Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 5, Y: -7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			Outline(&r, tt.pts, Style{Width: 4, Shape: ShapeRoundLine}, everywhere)
			for i, c := range r.contours {
				if a := signedArea(c); a <= 0 {
					t.Errorf("contour %d has signed area %.3f, want > 0", i, a)
				}
			}
		})
	}
}

func TestOutline_SegmentCount(t *testing.T) {
	var r recorder
	pts := []Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	n := Outline(&r, pts, Style{Width: 2, Shape: ShapeRoundLine}, everywhere)

	// 3 distinct points -> 3 discs, 2 segments.
	if n != 5 {
		t.Errorf("Outline() contours = %d, want 5", n)
	}
	if len(r.contours) != n {
		t.Errorf("recorded %d contours, returned %d", len(r.contours), n)
	}
}

func TestOutline_Empty(t *testing.T) {
	tests := []struct {
		name  string
		pts   []Point
		style Style
	}{
		{"no points", nil, Style{Width: 5}},
		{"zero width", []Point{{X: 1, Y: 1}}, Style{Width: 0}},
		{"negative width", []Point{{X: 1, Y: 1}}, Style{Width: -3}},
		{"filled with two points", []Point{{X: 1, Y: 1}, {X: 5, Y: 5}}, Style{Shape: ShapeFilled}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			if n := Outline(&r, tt.pts, tt.style, everywhere); n != 0 {
				t.Errorf("Outline() = %d, want 0", n)
			}
			if _, _, ok := Bounds(tt.pts, tt.style); ok {
				t.Error("Bounds() ok = true, want false")
			}
		})
	}
}

func TestOutline_Filled(t *testing.T) {
	var r recorder
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if n := Outline(&r, pts, Style{Width: 99, Shape: ShapeFilled}, everywhere); n != 1 {
		t.Fatalf("Outline() = %d, want 1", n)
	}
	if got := math.Abs(signedArea(r.contours[0])); got != 100 {
		t.Errorf("polygon area = %v, want 100", got)
	}
}

func TestBounds(t *testing.T) {
	pts := []Point{{X: 5, Y: 5}, {X: 15, Y: 2}}
	minPt, maxPt, ok := Bounds(pts, Style{Width: 4, Shape: ShapeRoundLine})
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if minPt != (Point{X: 3, Y: 0}) || maxPt != (Point{X: 17, Y: 7}) {
		t.Errorf("Bounds() = %v, %v, want {3 0}, {17 7}", minPt, maxPt)
	}

	minPt, maxPt, ok = Bounds([]Point{{X: 1, Y: 1}, {X: 4, Y: 0}, {X: 2, Y: 6}}, Style{Width: 50, Shape: ShapeFilled})
	if !ok || minPt != (Point{X: 1, Y: 0}) || maxPt != (Point{X: 4, Y: 6}) {
		t.Errorf("filled Bounds() = %v, %v, %v", minPt, maxPt, ok)
	}
}

func TestShapeString(t *testing.T) {
	if ShapeRoundLine.String() != "RoundLine" || ShapeFilled.String() != "Filled" || Shape(9).String() != "Unknown" {
		t.Error("Shape.String() mismatch")
	}
}

func TestOutline_Clip(t *testing.T) {
	clip := RectOf(20, 20)
	tests := []struct {
		name     string
		pts      []Point
		style    Style
		contours int
		area     float64 // of the last contour
	}{
		{"disc inside", []Point{{X: 10, Y: 10}}, Style{Width: 10}, 1, math.Pi * 25},
		{"disc outside", []Point{{X: -30, Y: 10}}, Style{Width: 10}, 0, 0},
		{"box corner outside circle", []Point{{X: -6, Y: -6}}, Style{Width: 16}, 0, 0},
		{"quarter disc", []Point{{X: 0, Y: 0}}, Style{Width: 20}, 1, math.Pi * 100 / 4},
		{"disc covers clip", []Point{{X: 10, Y: 10}}, Style{Width: 1e6}, 1, 400},
		{"segment far beyond", []Point{{X: 10, Y: 5}, {X: 1e6, Y: 5}}, Style{Width: 4}, 2, 4 * 10},
		{"filled covers clip", []Point{{X: -1e6, Y: -1e6}, {X: 1e6, Y: -1e6}, {X: 0, Y: 1e6}}, Style{Shape: ShapeFilled}, 1, 400},
		{"filled outside", []Point{{X: 30, Y: 30}, {X: 40, Y: 30}, {X: 40, Y: 40}}, Style{Shape: ShapeFilled}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			n := Outline(&r, tt.pts, tt.style, clip)
			if n != tt.contours {
				t.Fatalf("Outline() = %d, want %d", n, tt.contours)
			}

			for i, c := range r.contours {
				for _, p := range c {
					if p.X < clip.Min.X || p.X > clip.Max.X || p.Y < clip.Min.Y || p.Y > clip.Max.Y {
						t.Fatalf("contour %d point %v outside clip", i, p)
					}
				}
				if a := signedArea(c); a <= 0 {
					t.Errorf("contour %d has signed area %.3f, want > 0", i, a)
				}
			}
			if n == 0 {
				return
			}
			area := signedArea(r.contours[n-1])
			if math.Abs(area-tt.area) > tt.area*0.02 {
				t.Errorf("last contour area = %.3f, want %.3f", area, tt.area)
			}
		})
	}
}

func TestOutline_EmptyClip(t *testing.T) {
	var r recorder
	if n := Outline(&r, []Point{{X: 1, Y: 1}}, Style{Width: 4}, Rect{}); n != 0 {
		t.Errorf("Outline() with empty clip = %d, want 0", n)
	}
}

func TestCircleSegments(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{0.01, 8},
		{1, 8},
		{1e9, maxCircleSegments},
	}
	for _, tt := range tests {
		if got := circleSegments(tt.r); got != tt.want {
			t.Errorf("circleSegments(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
	if n := circleSegments(100); n <= 8 || n >= maxCircleSegments {
		t.Errorf("circleSegments(100) = %d, want between the bounds", n)
	}
}
