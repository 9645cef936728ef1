// Package gallery saves finished drawings into a directory of timestamped
// image files and keeps a YAML manifest of them.
//
// File names follow Drawing_YYYYMMDD_HHMMSS.<ext>. When two drawings are
// saved within the same second the later one gets a _N suffix.
package gallery

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"

	"github.com/gogpu/colorbook"
	intImage "github.com/gogpu/colorbook/internal/image"
)

// DefaultDir is the gallery directory used when none is configured.
const DefaultDir = "~/Pictures/MyDrawings"

// ErrEmptyImage is returned when saving a nil or zero-size image.
var ErrEmptyImage = errors.New("gallery: empty image")

const (
	namePrefix = "Drawing_"
	timeLayout = "20060102_150405"
	maxSuffix  = 10000
)

// Store is a gallery directory. It is safe for concurrent use.
type Store struct {
	dir   string
	now   func() time.Time
	newID func() string
	mu    sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for file names and entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs sets the entry identifier generator. The default is random UUIDs.
func WithIDs(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// Open returns a Store rooted at dir, expanding a leading "~". An empty dir
// selects DefaultDir. The directory is created on the first Save.
func Open(dir string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("gallery: expand %q: %w", dir, err)
	}
	s := &Store{
		dir:   filepath.Clean(expanded),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the gallery directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes img into the gallery in format f and registers it in the
// manifest. It returns the new entry.
func (s *Store) Save(img image.Image, f Format) (Entry, error) {
	if img == nil || img.Bounds().Empty() {
		return Entry{}, ErrEmptyImage
	}
	ext := f.Extension()
	if ext == "" {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("gallery: create directory: %w", err)
	}

	created := s.now()
	file, name, err := s.create(created, ext)
	if err != nil {
		return Entry{}, err
	}
	path := filepath.Join(s.dir, name)
	if err := encode(file, img, f, name); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return Entry{}, err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return Entry{}, fmt.Errorf("gallery: write %s: %w", name, err)
	}

	entry := Entry{
		ID:      s.newID(),
		File:    name,
		Format:  f.String(),
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
		Created: created,
	}
	mpath := filepath.Join(s.dir, ManifestName)
	m, err := readManifest(mpath)
	if err != nil {
		_ = os.Remove(path)
		return Entry{}, err
	}
	m.Drawings = append(m.Drawings, entry)
	if err := writeManifest(mpath, m); err != nil {
		_ = os.Remove(path)
		return Entry{}, err
	}

	colorbook.Logger().Info("gallery: drawing saved",
		"file", path, "format", entry.Format, "id", entry.ID)
	return entry, nil
}

// create exclusively creates the next free file name for t.
func (s *Store) create(t time.Time, ext string) (*os.File, string, error) {
	base := namePrefix + t.Format(timeLayout)
	for n := 0; n < maxSuffix; n++ {
		name := base + "." + ext
		if n > 0 {
			name = fmt.Sprintf("%s_%d.%s", base, n, ext)
		}
		file, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("gallery: create %s: %w", name, err)
		}
		return file, name, nil
	}
	return nil, "", fmt.Errorf("gallery: no free file name for %s", base)
}

func encode(w io.Writer, img image.Image, f Format, name string) error {
	if f == PDF {
		return writePDF(w, img, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	rf, _ := f.raster()
	return intImage.Encode(w, img, rf)
}

// List returns the registered drawings in save order.
func (s *Store) List() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := readManifest(filepath.Join(s.dir, ManifestName))
	if err != nil {
		return nil, err
	}
	return m.Drawings, nil
}
