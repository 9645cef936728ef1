package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/colorbook"
	"github.com/gogpu/colorbook/gallery"
	intImage "github.com/gogpu/colorbook/internal/image"
)

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	galleryDir := filepath.Join(dir, "drawings")

	tmpl := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := range tmpl.Pix {
		tmpl.Pix[i] = 255
	}
	for i := 0; i < 20; i++ {
		tmpl.SetNRGBA(i, 10, colorbook.Black)
	}
	if err := intImage.SaveImage(filepath.Join(dir, "stripe.png"), tmpl, intImage.FormatPNG); err != nil {
		t.Fatal(err)
	}

	cfgPath := writeFile(t, dir, "colorbook.toml", `
width = 20
height = 20
interpolation = "nearest"
language = "fr"
`)
	scriptPath := writeFile(t, dir, "session.yaml", `
steps:
  - template: stripe.png
  - tool: fill
  - color: yellow
  - fill: [5, 5]
  - save: bmp
`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgPath, "-script", scriptPath, "-gallery", galleryDir, "-v"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"Modèle chargé", "Mode Remplissage", "Dessin sauvegardé"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(stderr.String(), "flood fill") {
		t.Errorf("verbose log missing fill record:\n%s", stderr.String())
	}

	store, err := gallery.Open(galleryDir)
	if err != nil {
		t.Fatal(err)
	}
	entries, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("gallery has %d entries, want 1 (no auto-save after save step)", len(entries))
	}
	if entries[0].Format != "bmp" || entries[0].Width != 20 {
		t.Errorf("entry = %+v", entries[0])
	}

	img, _, err := intImage.LoadImage(filepath.Join(galleryDir, entries[0].File))
	if err != nil {
		t.Fatal(err)
	}
	pm, err := colorbook.FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if c := pm.GetPixel(5, 5); c != colorbook.Yellow {
		t.Errorf("filled pixel = %v, want yellow", c)
	}
	if c := pm.GetPixel(5, 10); c != colorbook.Black {
		t.Errorf("template line = %v, want black", c)
	}
	if c := pm.GetPixel(5, 15); c != colorbook.White {
		t.Errorf("pixel below the line = %v, want white", c)
	}
}

func TestRunAutoSave(t *testing.T) {
	galleryDir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-width", "16", "-height", "8", "-gallery", galleryDir, "-format", "pdf", "-lang", "en"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Drawing saved to the gallery") {
		t.Errorf("stdout = %q", stdout.String())
	}
	matches, _ := filepath.Glob(filepath.Join(galleryDir, "Drawing_*.pdf"))
	if len(matches) != 1 {
		t.Errorf("pdf files = %v, want one", matches)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"bad flag", []string{"-nope"}, 2},
		{"missing config", []string{"-config", filepath.Join(dir, "none.toml")}, 1},
		{"missing script", []string{"-gallery", dir, "-script", filepath.Join(dir, "none.yaml")}, 1},
		{"bad format", []string{"-gallery", dir, "-format", "svg"}, 1},
		{"missing template", []string{"-gallery", dir, "-template", filepath.Join(dir, "none.png")}, 1},
		{"help", []string{"-h"}, 0},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		if got := run(tt.args, &stdout, &stderr); got != tt.want {
			t.Errorf("%s: run() = %d, want %d (stderr %q)", tt.name, got, tt.want, stderr.String())
		}
	}
}

func TestMain(m *testing.M) {
	code := m.Run()
	colorbook.SetLogger(nil)
	os.Exit(code)
}
