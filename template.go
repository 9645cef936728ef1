package colorbook

import (
	"image"
	"image/color"
	"math"
)

// Placement describes where a template lands on the surface: a uniform
// scale that fits the whole template, and the centered destination box.
type Placement struct {
	Scale  float64
	Width  float64 // scaled template width
	Height float64 // scaled template height
	Left   float64
	Top    float64
}

// FitTemplate computes the aspect-preserving, centered placement of a
// tw x th template on a bw x bh surface. The scale is
// min(bw/tw, bh/th). Non-positive sizes yield the zero Placement.
func FitTemplate(tw, th, bw, bh int) Placement {
	if tw <= 0 || th <= 0 || bw <= 0 || bh <= 0 {
		return Placement{}
	}
	scale := math.Min(float64(bw)/float64(tw), float64(bh)/float64(th))
	w := float64(tw) * scale
	h := float64(th) * scale
	return Placement{
		Scale:  scale,
		Width:  w,
		Height: h,
		Left:   (float64(bw) - w) / 2,
		Top:    (float64(bh) - h) / 2,
	}
}

// Rect returns the destination rectangle with edges rounded to the
// nearest pixel.
func (pl Placement) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(pl.Left)),
		int(math.Round(pl.Top)),
		int(math.Round(pl.Left+pl.Width)),
		int(math.Round(pl.Top+pl.Height)),
	)
}

// Composite clears dst to bg and pastes tmpl scaled into its centered
// placement. The result depends only on tmpl, bg, mode and the size of
// dst, so repeating the call is idempotent.
func Composite(dst *Pixmap, tmpl image.Image, bg color.NRGBA, mode InterpolationMode) Placement {
	dst.Clear(bg)
	b := tmpl.Bounds()
	pl := FitTemplate(b.Dx(), b.Dy(), dst.Width(), dst.Height())
	dst.PasteScaled(tmpl, pl.Rect(), mode)
	return pl
}
