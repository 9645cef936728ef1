package colorbook

import (
	"errors"
	"math"
	"testing"
)

func TestParseTool(t *testing.T) {
	tests := []struct {
		in      string
		want    Tool
		wantErr bool
	}{
		{"brush", ToolBrush, false},
		{"Pencil", ToolPencil, false},
		{" fill ", ToolFill, false},
		{"bucket", ToolFill, false},
		{"eraser", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTool(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownTool) {
			t.Errorf("ParseTool(%q) error = %v, want ErrUnknownTool", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToolStringRoundTrip(t *testing.T) {
	for _, tool := range []Tool{ToolBrush, ToolPencil, ToolFill} {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v; want %v", tool.String(), got, err, tool)
		}
	}
	if got := Tool(0).String(); got != "unknown" {
		t.Errorf("Tool(0).String() = %q, want unknown", got)
	}
}

func TestToolStateWidth(t *testing.T) {
	ts := ToolState{BrushWidth: 12, PencilWidth: 3}
	tests := []struct {
		tool Tool
		want float64
	}{
		{ToolBrush, 12},
		{ToolPencil, 3},
		{ToolFill, 0},
	}
	for _, tt := range tests {
		ts.Tool = tt.tool
		if got := ts.Width(); got != tt.want {
			t.Errorf("%v Width() = %v, want %v", tt.tool, got, tt.want)
		}
	}
}

func TestValidWidth(t *testing.T) {
	for _, w := range []float64{0.1, 1, 20, 500} {
		if err := validWidth(w); err != nil {
			t.Errorf("validWidth(%v) = %v", w, err)
		}
	}
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := validWidth(w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("validWidth(%v) = %v, want ErrInvalidWidth", w, err)
		}
	}
}
