// Command colorbook replays a scripted coloring session on the colorbook
// engine and saves the result into a drawing gallery.
//
// Usage:
//
//	colorbook [flags]
//
// Without -script the command saves the blank canvas, or the template
// page when -template is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/gogpu/colorbook"
	"github.com/gogpu/colorbook/gallery"
	"github.com/gogpu/colorbook/internal/cache"
	"github.com/gogpu/colorbook/internal/msg"
)

// templateCacheSize is the number of decoded templates kept per session.
const templateCacheSize = 8

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("colorbook", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML settings file")
		scriptPath = fs.String("script", "", "YAML session script")
		template   = fs.String("template", "", "template image to color")
		width      = fs.Int("width", 0, "canvas width (overrides config)")
		height     = fs.Int("height", 0, "canvas height (overrides config)")
		galleryDir = fs.String("gallery", "", "gallery directory (overrides config)")
		format     = fs.String("format", "", "save format: png, jpeg, bmp, tiff or pdf")
		lang       = fs.String("lang", "", "message language (default from the OS locale)")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	colorbook.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "colorbook:", err)
		return 1
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *galleryDir != "" {
		cfg.Gallery = *galleryDir
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *lang != "" {
		cfg.Language = *lang
	}

	s, err := newSession(cfg, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "colorbook:", err)
		return 1
	}
	if err := s.play(*template, *scriptPath); err != nil {
		fmt.Fprintln(stderr, "colorbook:", err)
		return 1
	}
	return 0
}

func newSession(cfg Config, status io.Writer) (*session, error) {
	opts, err := cfg.engineOptions()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.colors()
	if err != nil {
		return nil, err
	}
	f, err := gallery.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	store, err := gallery.Open(cfg.Gallery)
	if err != nil {
		return nil, err
	}

	tag := msg.Detect()
	if cfg.Language != "" {
		tag = msg.Match(cfg.Language)
	}

	e := colorbook.NewEngine(opts...)
	if err := e.Resize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	return &session{
		engine:    e,
		store:     store,
		format:    f,
		printer:   msg.NewPrinter(tag),
		palette:   palette,
		templates: cache.New[string, image.Image](templateCacheSize),
		status:    status,
	}, nil
}

// play loads the optional template, replays the optional script and saves
// the drawing unless the script already did.
func (s *session) play(template, scriptPath string) error {
	if template != "" {
		if err := s.template(template); err != nil {
			return err
		}
	}
	if scriptPath != "" {
		sc, err := loadScript(scriptPath)
		if err != nil {
			return err
		}
		s.baseDir = filepath.Dir(scriptPath)
		if err := s.run(sc); err != nil {
			return err
		}
	}
	if s.saved {
		return nil
	}
	return s.save(s.format)
}

// language reports the message language of the session.
func (s *session) language() language.Tag {
	return s.printer.Language()
}
