package colorbook

import "image/color"

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default engine: brush, black, 20 px brush, 5 px pencil
//	e := colorbook.NewEngine()
//
//	// Crisp template scaling and a red pencil
//	e := colorbook.NewEngine(
//	    colorbook.WithInterpolation(colorbook.InterpNearest),
//	    colorbook.WithTool(colorbook.ToolPencil),
//	    colorbook.WithColor(colorbook.Red),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	tools      ToolState
	background color.NRGBA
	interp     InterpolationMode
	fill       FillStrategy
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		tools:      DefaultToolState(),
		background: White,
		interp:     InterpBilinear,
		fill:       FillWorklist,
	}
}

// WithTool sets the initial tool. Unknown tools are ignored.
func WithTool(t Tool) Option {
	return func(o *engineOptions) {
		if t.valid() {
			o.tools.Tool = t
		}
	}
}

// WithColor sets the initial paint color.
func WithColor(c color.NRGBA) Option {
	return func(o *engineOptions) {
		o.tools.Color = c
	}
}

// WithBrushWidth sets the initial brush width. Non-positive values are ignored.
func WithBrushWidth(w float64) Option {
	return func(o *engineOptions) {
		if validWidth(w) == nil {
			o.tools.BrushWidth = w
		}
	}
}

// WithPencilWidth sets the initial pencil width. Non-positive values are ignored.
func WithPencilWidth(w float64) Option {
	return func(o *engineOptions) {
		if validWidth(w) == nil {
			o.tools.PencilWidth = w
		}
	}
}

// WithBackground sets the color the surface is cleared to.
// The default is opaque white.
func WithBackground(c color.NRGBA) Option {
	return func(o *engineOptions) {
		o.background = c
	}
}

// WithInterpolation sets how templates are sampled when scaled.
// The default is InterpBilinear.
func WithInterpolation(m InterpolationMode) Option {
	return func(o *engineOptions) {
		o.interp = m
	}
}

// WithFillStrategy sets the flood fill traversal. The default is
// FillWorklist; FillVisited produces identical pixels.
func WithFillStrategy(s FillStrategy) Option {
	return func(o *engineOptions) {
		o.fill = s
	}
}
