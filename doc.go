// Package colorbook is the drawing core of a children's coloring-book app.
//
// # Overview
//
// An Engine owns one raster surface (a Pixmap of non-premultiplied RGBA
// pixels), the current tool selection and an optional template image.
// Pointer events drive it: brush and pencil strokes accumulate points while
// the pointer is down and are rasterized with anti-aliasing on release; the
// fill tool recolors the contiguous same-color region under the pointer.
//
// # Quick Start
//
//	import "github.com/gogpu/colorbook"
//
//	e := colorbook.NewEngine()
//	if err := e.Resize(800, 600); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Paint a thick red line
//	e.SetColor(colorbook.Red)
//	e.PointerDown(100, 100)
//	e.PointerMove(300, 120)
//	e.PointerUp(300, 120)
//
//	// Fill the background under (10, 10) with yellow
//	e.SetTool(colorbook.ToolFill)
//	e.SetColor(colorbook.Yellow)
//	e.PointerDown(10, 10)
//
//	f, _ := os.Create("drawing.png")
//	defer f.Close()
//	e.ExportPNG(f)
//
// # Templates
//
// SetTemplate loads a line-art image that is scaled by
// min(width/tw, height/th), centered and composited over the background.
// Setting a template erases the current drawing. Fill treats template lines
// as region boundaries because it matches colors exactly.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers the square [x, x+1) x [y, y+1)
//
// # Concurrency
//
// An Engine and its Pixmap are single-threaded. Render collaborators that
// run on another goroutine read Snapshot or Preview copies.
package colorbook

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = ""
)
