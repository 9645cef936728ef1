package colorbook

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ErrInvalidWidth is returned when a brush or pencil width is not positive.
var ErrInvalidWidth = errors.New("colorbook: invalid width")

// ErrUnknownTool is returned by ParseTool for an unrecognized name.
var ErrUnknownTool = errors.New("colorbook: unknown tool")

// Tool is the active drawing tool.
type Tool uint8

const (
	// ToolBrush paints wide round strokes.
	ToolBrush Tool = iota + 1

	// ToolPencil paints thin round strokes.
	ToolPencil

	// ToolFill recolors the contiguous region under the pointer.
	ToolFill
)

// Default tool widths in pixels.
const (
	DefaultBrushWidth  = 20.0
	DefaultPencilWidth = 5.0
)

// String returns a string representation of the tool.
func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolPencil:
		return "pencil"
	case ToolFill:
		return "fill"
	default:
		return "unknown"
	}
}

func (t Tool) valid() bool {
	return t >= ToolBrush && t <= ToolFill
}

// strokes reports whether the tool draws strokes.
func (t Tool) strokes() bool {
	return t == ToolBrush || t == ToolPencil
}

// ParseTool parses a tool name as produced by Tool.String.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brush":
		return ToolBrush, nil
	case "pencil":
		return ToolPencil, nil
	case "fill", "bucket":
		return ToolFill, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// ToolState is the current tool selection of an Engine.
type ToolState struct {
	Tool        Tool
	Color       color.NRGBA
	BrushWidth  float64
	PencilWidth float64
}

// DefaultToolState returns the state of a fresh engine: brush, opaque black,
// 20 px brush and 5 px pencil.
func DefaultToolState() ToolState {
	return ToolState{
		Tool:        ToolBrush,
		Color:       Black,
		BrushWidth:  DefaultBrushWidth,
		PencilWidth: DefaultPencilWidth,
	}
}

// Width returns the stroke width of the current tool, or zero for tools
// that do not stroke.
func (ts ToolState) Width() float64 {
	switch ts.Tool {
	case ToolBrush:
		return ts.BrushWidth
	case ToolPencil:
		return ts.PencilWidth
	default:
		return 0
	}
}

// newStroke starts a stroke at p in the current style.
func (ts ToolState) newStroke(p Point) *Stroke {
	return &Stroke{
		Points: []Point{p},
		Width:  ts.Width(),
		Color:  ts.Color,
		Shape:  ShapeRoundLine,
	}
}

func validWidth(w float64) error {
	if !(w > 0) || math.IsInf(w, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, w)
	}
	return nil
}
