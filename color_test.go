package colorbook

import (
	"errors"
	"image/color"
	"slices"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00F", Blue},
		{"#fff8", color.NRGBA{R: 255, G: 255, B: 255, A: 136}},
		{"#FF69B4", Pink},
		{"#ffa50080", color.NRGBA{R: 255, G: 165, A: 128}},
		{"  #000000 ", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "red"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
		if got := Hex(in); got != Black {
			t.Errorf("Hex(%q) = %v, want opaque black", in, got)
		}
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		c    color.NRGBA
		want string
	}{
		{Red, "#ff0000"},
		{Brown, "#8b4513"},
		{color.NRGBA{R: 1, G: 2, B: 3, A: 4}, "#01020304"},
	}
	for _, tt := range tests {
		if got := HexString(tt.c); got != tt.want {
			t.Errorf("HexString(%v) = %q, want %q", tt.c, got, tt.want)
		}
		if back := Hex(tt.want); back != tt.c {
			t.Errorf("Hex(%q) = %v, want %v", tt.want, back, tt.c)
		}
	}
}

func TestPalette(t *testing.T) {
	names := Palette()
	if len(names) != 12 {
		t.Fatalf("len(Palette()) = %d, want 12", len(names))
	}
	if !slices.IsSorted(names) {
		t.Errorf("Palette() not sorted: %v", names)
	}
	for _, name := range names {
		if _, ok := Swatch(name); !ok {
			t.Errorf("Swatch(%q) not found", name)
		}
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		name string
		want color.NRGBA
		ok   bool
	}{
		{"red", Red, true},
		{"LightBlue", LightBlue, true},
		{"gray", Grey, true},
		{" GREY ", Grey, true},
		{"magenta", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := Swatch(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Swatch(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, err := ParseColor("purple"); err != nil || c != Purple {
		t.Errorf("ParseColor(purple) = %v, %v; want %v", c, err, Purple)
	}
	if c, err := ParseColor("#123456"); err != nil || c != (color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}) {
		t.Errorf("ParseColor(#123456) = %v, %v", c, err)
	}
	if _, err := ParseColor("nope"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ParseColor(nope) error = %v, want ErrInvalidColor", err)
	}
}

func TestToNRGBA(t *testing.T) {
	// Premultiplied half-transparent red.
	got := toNRGBA(color.RGBA{R: 128, A: 128})
	if got.R != 255 || got.A != 128 || got.G != 0 || got.B != 0 {
		t.Errorf("toNRGBA() = %v, want {255 0 0 128}", got)
	}
	if got := toNRGBA(Pink); got != Pink {
		t.Errorf("toNRGBA(Pink) = %v, want %v", got, Pink)
	}
}
