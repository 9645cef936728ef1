package colorbook

import (
	"image"
	"math"
)

// Point represents a pointer position in pixel coordinates of the drawing
// surface. The pixel (x, y) covers the unit square starting at (x, y).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pixel returns the pixel whose square contains p.
func (p Point) Pixel() image.Point {
	return image.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
