package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorbook"
	"github.com/gogpu/colorbook/gallery"
	"github.com/gogpu/colorbook/internal/cache"
	intImage "github.com/gogpu/colorbook/internal/image"
	"github.com/gogpu/colorbook/internal/msg"
)

var errBadStep = errors.New("script: invalid step")

// Script is a recorded drawing session.
//
// Example:
//
//	steps:
//	  - template: cat.png
//	  - tool: fill
//	  - color: yellow
//	  - fill: [120, 80]
//	  - tool: brush
//	  - color: "#ff0000"
//	  - line: [[10, 10], [200, 40], [220, 90]]
//	  - save: pdf
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Point is an [x, y] pointer position.
type Point [2]float64

// Size is a [width, height] surface size.
type Size [2]int

// Step is one scripted action. Exactly one field must be set. A save step
// with the value "default" (or "") uses the configured format.
type Step struct {
	Tool     string  `yaml:"tool,omitempty"`
	Color    string  `yaml:"color,omitempty"`
	Brush    float64 `yaml:"brush,omitempty"`
	Pencil   float64 `yaml:"pencil,omitempty"`
	Down     *Point  `yaml:"down,omitempty"`
	Move     []Point `yaml:"move,omitempty"`
	Up       *Point  `yaml:"up,omitempty"`
	Fill     *Point  `yaml:"fill,omitempty"`
	Line     []Point `yaml:"line,omitempty"`
	Template string  `yaml:"template,omitempty"`
	Clear    string  `yaml:"clear,omitempty"`
	Reset    bool    `yaml:"reset,omitempty"`
	Resize   *Size   `yaml:"resize,omitempty"`
	Save     *string `yaml:"save,omitempty"`
}

// actions returns the names of the fields set on s.
func (s Step) actions() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(s.Tool != "", "tool")
	add(s.Color != "", "color")
	add(s.Brush != 0, "brush")
	add(s.Pencil != 0, "pencil")
	add(s.Down != nil, "down")
	add(len(s.Move) > 0, "move")
	add(s.Up != nil, "up")
	add(s.Fill != nil, "fill")
	add(len(s.Line) > 0, "line")
	add(s.Template != "", "template")
	add(s.Clear != "", "clear")
	add(s.Reset, "reset")
	add(s.Resize != nil, "resize")
	add(s.Save != nil, "save")
	return names
}

// parseScript decodes a YAML script strictly and checks every step.
func parseScript(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("script: %w", err)
	}
	for i, st := range s.Steps {
		if n := st.actions(); len(n) != 1 {
			return s, fmt.Errorf("%w %d: want one action, got %v", errBadStep, i+1, n)
		}
	}
	return s, nil
}

func loadScript(path string) (Script, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Script{}, fmt.Errorf("script: expand %q: %w", path, err)
	}
	f, err := os.Open(filepath.Clean(expanded))
	if err != nil {
		return Script{}, fmt.Errorf("script: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parseScript(f)
}

// session replays scripts against one engine and gallery, reporting
// status messages the way the app shows them.
type session struct {
	engine    *colorbook.Engine
	store     *gallery.Store
	format    gallery.Format
	printer   *msg.Printer
	palette   map[string]color.NRGBA
	templates *cache.LRU[string, image.Image]
	status    io.Writer
	baseDir   string
	saved     bool
}

func (s *session) say(key msg.Key, args ...any) {
	fmt.Fprintln(s.status, s.printer.Sprintf(key, args...))
}

func (s *session) run(sc Script) error {
	for i, st := range sc.Steps {
		if err := s.step(st); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *session) step(st Step) error {
	e := s.engine
	switch {
	case st.Tool != "":
		t, err := colorbook.ParseTool(st.Tool)
		if err != nil {
			return err
		}
		if err := e.SetTool(t); err != nil {
			return err
		}
		s.say(toolMessage(t))
	case st.Color != "":
		c, err := s.color(st.Color)
		if err != nil {
			return err
		}
		e.SetColor(c)
		s.say(msg.ColorSelected, st.Color)
	case st.Brush != 0:
		return e.SetBrushWidth(st.Brush)
	case st.Pencil != 0:
		return e.SetPencilWidth(st.Pencil)
	case st.Down != nil:
		e.PointerDown(st.Down[0], st.Down[1])
	case len(st.Move) > 0:
		for _, p := range st.Move {
			e.PointerMove(p[0], p[1])
		}
	case st.Up != nil:
		e.PointerUp(st.Up[0], st.Up[1])
	case st.Fill != nil:
		prev := e.Tools().Tool
		_ = e.SetTool(colorbook.ToolFill)
		e.PointerDown(st.Fill[0], st.Fill[1])
		e.PointerUp(st.Fill[0], st.Fill[1])
		_ = e.SetTool(prev)
	case len(st.Line) > 0:
		first, last := st.Line[0], st.Line[len(st.Line)-1]
		e.PointerDown(first[0], first[1])
		for _, p := range st.Line[1:] {
			e.PointerMove(p[0], p[1])
		}
		e.PointerUp(last[0], last[1])
	case st.Template != "":
		return s.template(st.Template)
	case st.Clear != "":
		switch strings.ToLower(st.Clear) {
		case "drawing", "all":
			e.ClearDrawing()
		case "canvas":
			e.ClearCanvas()
		default:
			return fmt.Errorf("%w: clear %q", errBadStep, st.Clear)
		}
		s.say(msg.DrawingCleared)
	case st.Reset:
		e.ResetToTemplate()
	case st.Resize != nil:
		return e.Resize(st.Resize[0], st.Resize[1])
	case st.Save != nil:
		f := s.format
		if name := *st.Save; name != "" && name != "default" {
			var err error
			if f, err = gallery.ParseFormat(name); err != nil {
				return err
			}
		}
		return s.save(f)
	default:
		return errBadStep
	}
	return nil
}

func (s *session) color(name string) (color.NRGBA, error) {
	if c, ok := s.palette[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return colorbook.ParseColor(name)
}

func (s *session) template(path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(expanded) && s.baseDir != "" {
		expanded = filepath.Join(s.baseDir, expanded)
	}
	img, err := s.templates.GetOrLoad(filepath.Clean(expanded), func() (image.Image, error) {
		img, _, err := intImage.LoadImage(expanded)
		return img, err
	})
	if err == nil {
		err = s.engine.SetTemplate(img)
	}
	if err != nil {
		s.say(msg.TemplateFailed, err)
		return err
	}
	s.say(msg.TemplateLoaded)
	return nil
}

func (s *session) save(f gallery.Format) error {
	snap := s.engine.Snapshot()
	if snap == nil {
		return colorbook.ErrNoSurface
	}
	entry, err := s.store.Save(snap, f)
	if err != nil {
		s.say(msg.DrawingSaveError, err)
		return err
	}
	s.saved = true
	s.say(msg.DrawingSaved, filepath.Join(s.store.Dir(), entry.File))
	return nil
}

func toolMessage(t colorbook.Tool) msg.Key {
	switch t {
	case colorbook.ToolPencil:
		return msg.PencilMode
	case colorbook.ToolFill:
		return msg.FillMode
	default:
		return msg.BrushMode
	}
}
