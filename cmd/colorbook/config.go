package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/colorbook"
	"github.com/gogpu/colorbook/gallery"
)

// Config is the settings file of the colorbook command.
//
// Example:
//
//	width = 1080
//	height = 1920
//	brush_width = 24
//	gallery = "~/Pictures/MyDrawings"
//	format = "png"
//	language = "fr"
//	interpolation = "bilinear"
//
//	[palette]
//	sky = "#87ceeb"
type Config struct {
	Width         int               `toml:"width"`
	Height        int               `toml:"height"`
	BrushWidth    float64           `toml:"brush_width"`
	PencilWidth   float64           `toml:"pencil_width"`
	Gallery       string            `toml:"gallery"`
	Format        string            `toml:"format"`
	Language      string            `toml:"language"`
	Interpolation string            `toml:"interpolation"`
	Palette       map[string]string `toml:"palette"`
}

func defaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		BrushWidth:    colorbook.DefaultBrushWidth,
		PencilWidth:   colorbook.DefaultPencilWidth,
		Gallery:       gallery.DefaultDir,
		Format:        "png",
		Interpolation: "bilinear",
	}
}

// loadConfig reads a TOML settings file over the defaults. Unknown keys are
// an error. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: expand %q: %w", path, err)
	}
	f, err := os.Open(filepath.Clean(expanded))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// engineOptions converts the settings into engine options.
func (c Config) engineOptions() ([]colorbook.Option, error) {
	interp, err := parseInterpolation(c.Interpolation)
	if err != nil {
		return nil, err
	}
	return []colorbook.Option{
		colorbook.WithBrushWidth(c.BrushWidth),
		colorbook.WithPencilWidth(c.PencilWidth),
		colorbook.WithInterpolation(interp),
	}, nil
}

// colors returns the configured palette entries, parsed.
func (c Config) colors() (map[string]color.NRGBA, error) {
	out := make(map[string]color.NRGBA, len(c.Palette))
	for name, value := range c.Palette {
		col, err := colorbook.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("config: palette %q: %w", name, err)
		}
		out[strings.ToLower(name)] = col
	}
	return out, nil
}

func parseInterpolation(s string) (colorbook.InterpolationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return colorbook.InterpNearest, nil
	case "", "bilinear":
		return colorbook.InterpBilinear, nil
	case "bicubic":
		return colorbook.InterpBicubic, nil
	}
	return 0, fmt.Errorf("config: unknown interpolation %q", s)
}
