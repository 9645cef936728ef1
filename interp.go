package colorbook

import "golang.org/x/image/draw"

// InterpolationMode defines how a template is sampled when it is scaled
// into the drawing surface.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	// Keeps line art crisp but produces blocky results when scaling up.
	InterpNearest InterpolationMode = iota

	// InterpBilinear performs linear interpolation between neighboring pixels.
	// Good balance between quality and performance.
	InterpBilinear

	// InterpBicubic performs Catmull-Rom cubic interpolation.
	// Highest quality but slower than bilinear.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// scaler returns the x/image/draw scaler implementing the mode.
// Unknown modes fall back to bilinear.
func (m InterpolationMode) scaler() draw.Scaler {
	switch m {
	case InterpNearest:
		return draw.NearestNeighbor
	case InterpBicubic:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}
