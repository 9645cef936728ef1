package colorbook

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Engine errors.
var (
	// ErrNoSurface is returned when an operation needs the drawing surface
	// before the first successful Resize.
	ErrNoSurface = errors.New("colorbook: no drawing surface")

	// ErrEmptyTemplate is returned by SetTemplate for a nil or zero-size image.
	ErrEmptyTemplate = errors.New("colorbook: empty template")
)

// State is the pointer state of an Engine.
type State uint8

const (
	// StateIdle means no stroke is in progress.
	StateIdle State = iota

	// StateStroking means a brush or pencil stroke is accumulating points.
	StateStroking
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateStroking:
		return "Stroking"
	default:
		return "Unknown"
	}
}

// Engine is a coloring-book canvas: one drawing surface, the current tool
// selection and an optional template. Pointer events are routed to the
// stroke rasterizer (brush, pencil) or to the flood fill (fill).
//
// An Engine is single-threaded. All methods must be called from the
// goroutine that owns it, in event arrival order.
//
// Event policy:
//   - PointerDown while Stroking commits the pending stroke, then starts
//     a new one (or fills, for ToolFill).
//   - PointerMove and PointerUp while Idle are ignored.
//   - Pointer events before the first Resize are ignored.
//   - The stroke style is captured at PointerDown; later tool, color or
//     width changes apply to the next stroke.
type Engine struct {
	opts     engineOptions
	tools    ToolState
	pixmap   *Pixmap
	template *image.NRGBA
	pending  *Stroke
	raster   *Rasterizer
}

// NewEngine creates an engine with no drawing surface. Call Resize once the
// surface size is known.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		opts:   o,
		tools:  o.tools,
		raster: NewRasterizer(),
	}
}

// Resize discards the surface and creates a new one of w x h pixels,
// cleared to the background. A pending stroke is dropped and a template,
// if set, is composited again. On error the engine keeps its prior state.
func (e *Engine) Resize(w, h int) error {
	p, err := NewPixmap(w, h)
	if err != nil {
		Logger().Warn("colorbook: resize rejected", "width", w, "height", h)
		return err
	}
	p.Clear(e.opts.background)
	e.pixmap = p
	e.pending = nil
	if e.template != nil {
		e.applyTemplate()
	}
	Logger().Info("colorbook: surface resized", "width", w, "height", h)
	return nil
}

// Width returns the surface width, or 0 before the first Resize.
func (e *Engine) Width() int {
	if e.pixmap == nil {
		return 0
	}
	return e.pixmap.Width()
}

// Height returns the surface height, or 0 before the first Resize.
func (e *Engine) Height() int {
	if e.pixmap == nil {
		return 0
	}
	return e.pixmap.Height()
}

// Pixmap returns the live drawing surface, or nil before the first Resize.
// Callers must treat it as read-only.
func (e *Engine) Pixmap() *Pixmap {
	return e.pixmap
}

// Tools returns the current tool selection.
func (e *Engine) Tools() ToolState {
	return e.tools
}

// SetTool selects the active tool.
func (e *Engine) SetTool(t Tool) error {
	if !t.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTool, t)
	}
	e.tools.Tool = t
	return nil
}

// SetColor sets the paint color for subsequent strokes and fills.
func (e *Engine) SetColor(c color.NRGBA) {
	e.tools.Color = c
}

// SetBrushWidth sets the brush stroke width in pixels.
func (e *Engine) SetBrushWidth(w float64) error {
	if err := validWidth(w); err != nil {
		Logger().Warn("colorbook: brush width rejected", "width", w)
		return err
	}
	e.tools.BrushWidth = w
	return nil
}

// SetPencilWidth sets the pencil stroke width in pixels.
func (e *Engine) SetPencilWidth(w float64) error {
	if err := validWidth(w); err != nil {
		Logger().Warn("colorbook: pencil width rejected", "width", w)
		return err
	}
	e.tools.PencilWidth = w
	return nil
}

// SetTemplate replaces the template with a private copy of img and, when
// the surface exists, composites it immediately (erasing the drawing).
// A nil or empty image returns ErrEmptyTemplate and changes nothing.
func (e *Engine) SetTemplate(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyTemplate
	}
	tp, err := FromImage(img)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyTemplate, err)
	}
	e.template = tp.img
	if e.pixmap != nil {
		e.pending = nil
		e.applyTemplate()
	}
	return nil
}

// HasTemplate reports whether a template is set.
func (e *Engine) HasTemplate() bool {
	return e.template != nil
}

func (e *Engine) applyTemplate() {
	pl := Composite(e.pixmap, e.template, e.opts.background, e.opts.interp)
	Logger().Info("colorbook: template applied",
		"scale", pl.Scale, "rect", pl.Rect().String(), "interp", e.opts.interp.String())
}

// ClearDrawing clears the surface to the background and removes the
// template. A pending stroke is dropped.
func (e *Engine) ClearDrawing() {
	e.template = nil
	e.clear()
}

// ClearCanvas clears the surface to the background but keeps the template,
// which reappears on the next Resize or ResetToTemplate. A pending stroke
// is dropped.
func (e *Engine) ClearCanvas() {
	e.clear()
}

// ResetToTemplate erases the drawing and composites the template again,
// or just clears the surface when there is no template.
func (e *Engine) ResetToTemplate() {
	if e.pixmap == nil {
		return
	}
	e.pending = nil
	if e.template == nil {
		e.pixmap.Clear(e.opts.background)
		return
	}
	e.applyTemplate()
}

func (e *Engine) clear() {
	e.pending = nil
	if e.pixmap != nil {
		e.pixmap.Clear(e.opts.background)
	}
}

// State returns the pointer state.
func (e *Engine) State() State {
	if e.pending != nil {
		return StateStroking
	}
	return StateIdle
}

// PendingStroke returns a copy of the stroke in progress.
func (e *Engine) PendingStroke() (Stroke, bool) {
	if e.pending == nil {
		return Stroke{}, false
	}
	return e.pending.Clone(), true
}

// PointerDown handles a pointer press at (x, y). With ToolFill it flood
// fills the pixel under the pointer; otherwise it starts a stroke.
func (e *Engine) PointerDown(x, y float64) {
	if e.pixmap == nil {
		return
	}
	if e.pending != nil {
		e.commit()
	}

	p := Pt(x, y)
	if e.tools.Tool == ToolFill {
		px := p.Pixel()
		n := FloodFillWith(e.pixmap, px.X, px.Y, e.tools.Color, e.opts.fill)
		Logger().Debug("colorbook: flood fill", "x", px.X, "y", px.Y, "pixels", n)
		return
	}
	if e.tools.Tool.strokes() {
		e.pending = e.tools.newStroke(p)
	}
}

// PointerMove extends the pending stroke. The surface is not modified
// until PointerUp.
func (e *Engine) PointerMove(x, y float64) {
	if e.pending == nil {
		return
	}
	e.pending.Add(Pt(x, y))
}

// PointerUp commits the pending stroke to the surface. The release
// position itself is not added to the stroke.
func (e *Engine) PointerUp(x, y float64) {
	if e.pending == nil {
		return
	}
	e.commit()
}

func (e *Engine) commit() {
	s := e.pending
	e.pending = nil
	dr := e.raster.Commit(e.pixmap, s)
	Logger().Debug("colorbook: stroke committed",
		"points", s.Len(), "width", s.Width, "color", HexString(s.Color), "damage", dr.String())
}

// ExportImage returns a copy of the surface as raw non-premultiplied RGBA
// bytes, 4 per pixel, rows top to bottom.
func (e *Engine) ExportImage() ([]byte, error) {
	if e.pixmap == nil {
		return nil, ErrNoSurface
	}
	data := make([]byte, len(e.pixmap.Data()))
	copy(data, e.pixmap.Data())
	return data, nil
}

// ExportPNG writes the surface as a PNG image.
func (e *Engine) ExportPNG(w io.Writer) error {
	if e.pixmap == nil {
		return ErrNoSurface
	}
	return e.pixmap.EncodePNG(w)
}
