package colorbook

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// Snapshot returns a copy of the surface that render collaborators may read
// while the engine keeps mutating. It returns nil before the first Resize.
func (e *Engine) Snapshot() *image.RGBA {
	if e.pixmap == nil {
		return nil
	}
	return clone.AsRGBA(e.pixmap.img)
}

// Preview is Snapshot with the pending stroke (if any) drawn on top, as it
// would appear once committed. The surface itself is not modified.
func (e *Engine) Preview() *image.RGBA {
	snap := e.Snapshot()
	if snap == nil || e.pending == nil {
		return snap
	}
	e.raster.draw(snap, e.pending)
	return snap
}
