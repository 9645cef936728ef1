package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file, inside the gallery directory, that registers
// every saved drawing.
const ManifestName = "gallery.yaml"

// Entry describes one saved drawing.
type Entry struct {
	ID      string    `yaml:"id"`
	File    string    `yaml:"file"`
	Format  string    `yaml:"format"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Created time.Time `yaml:"created"`
}

type manifest struct {
	Drawings []Entry `yaml:"drawings"`
}

func readManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("gallery: read manifest: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return m, fmt.Errorf("gallery: parse manifest: %w", err)
	}
	return m, nil
}

// writeManifest replaces the manifest atomically.
func writeManifest(path string, m manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("gallery: encode manifest: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".gallery-*.yaml")
	if err != nil {
		return fmt.Errorf("gallery: write manifest: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("gallery: write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("gallery: write manifest: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("gallery: write manifest: %w", err)
	}
	return nil
}
