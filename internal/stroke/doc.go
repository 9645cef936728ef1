// Package stroke converts a pointer trail into filled outline contours.
//
// A committed stroke is the union of simple convex contours rather than a
// single offset path:
//   - one disc of radius width/2 at every distinct sample point
//   - one rectangle of height width along every segment between samples
//
// The discs supply the round caps and the round joins. Every contour winds
// the same way, so where contours overlap the accumulated coverage only
// grows, and golang.org/x/image/vector clamps it to full coverage. Anti-aliased
// edges come from the rasterizer's exact area coverage.
//
// # Usage
//
//	z := vector.NewRasterizer(w, h)
//	stroke.Outline(z, []stroke.Point{{X: 5, Y: 5}, {X: 15, Y: 5}}, stroke.Style{
//	    Width: 20,
//	    Shape: stroke.ShapeRoundLine,
//	}, stroke.RectOf(float32(w), float32(h)))
//	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
//
// The clip rectangle is the rasterizer's area. Geometry beyond it is cut
// away before it reaches the rasterizer, so neither a very wide brush nor a
// drag far off the surface costs more than the clipped area.
//
// ShapeFilled instead treats the points as a closed polygon.
package stroke
