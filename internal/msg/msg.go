// Package msg holds the short status messages shown to the user, in
// English and French.
package msg

import (
	"fmt"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Key identifies a status message. Keys are the English format strings.
type Key = string

// Status messages.
const (
	BrushMode        Key = "Brush mode"
	PencilMode       Key = "Pencil mode"
	FillMode         Key = "Fill mode"
	ColorSelected    Key = "Color selected: %s"
	TemplateLoaded   Key = "Template loaded successfully"
	TemplateFailed   Key = "Failed to load template: %v"
	DrawingCleared   Key = "Drawing cleared"
	DrawingSaved     Key = "Drawing saved to the gallery: %s"
	DrawingSaveError Key = "Error while saving: %v"
)

// Supported lists the catalog languages, the default first.
var Supported = []language.Tag{language.English, language.French}

var french = map[Key]string{
	BrushMode:        "Mode Pinceau",
	PencilMode:       "Mode Crayon",
	FillMode:         "Mode Remplissage",
	ColorSelected:    "Couleur sélectionnée : %s",
	TemplateLoaded:   "Modèle chargé",
	TemplateFailed:   "Échec du chargement du modèle : %v",
	DrawingCleared:   "Dessin effacé",
	DrawingSaved:     "Dessin sauvegardé dans la galerie : %s",
	DrawingSaveError: "Erreur lors de la sauvegarde : %v",
}

var (
	registerOnce sync.Once
	matcher      = language.NewMatcher(Supported)
)

func register() {
	registerOnce.Do(func() {
		if err := load(message.SetString, french); err != nil {
			panic(err)
		}
	})
}

// load registers every key as its own English text and its translation
// from fr in French. set is message.SetString outside tests.
func load(set func(tag language.Tag, key, msg string) error, fr map[Key]string) error {
	for _, k := range Keys() {
		text := fr[k]
		if text == "" {
			return fmt.Errorf("msg: no French text for %q", k)
		}
		if err := set(language.English, k, k); err != nil {
			return fmt.Errorf("msg: register %q: %w", k, err)
		}
		if err := set(language.French, k, text); err != nil {
			return fmt.Errorf("msg: register %q: %w", k, err)
		}
	}
	return nil
}

// Keys returns every message key.
func Keys() []Key {
	return []Key{
		BrushMode, PencilMode, FillMode, ColorSelected, TemplateLoaded,
		TemplateFailed, DrawingCleared, DrawingSaved, DrawingSaveError,
	}
}

// Match returns the supported language closest to the given BCP 47 tags.
// Unparseable or unknown tags fall back to English.
func Match(tags ...string) language.Tag {
	parsed := make([]language.Tag, 0, len(tags))
	for _, s := range tags {
		if t, err := language.Parse(s); err == nil {
			parsed = append(parsed, t)
		}
	}
	if len(parsed) == 0 {
		return language.English
	}
	_, i, conf := matcher.Match(parsed...)
	if conf == language.No {
		return language.English
	}
	return Supported[i]
}

// Detect returns the supported language closest to the user's OS locale.
func Detect() language.Tag {
	tags, err := locale.GetLocales()
	if err != nil || len(tags) == 0 {
		return language.English
	}
	return Match(tags...)
}

// Printer formats status messages in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for the supported language closest to tag.
func NewPrinter(tag language.Tag) *Printer {
	register()
	t := Match(tag.String())
	return &Printer{tag: t, p: message.NewPrinter(t)}
}

// Language returns the language the printer formats in.
func (p *Printer) Language() language.Tag {
	return p.tag
}

// Sprintf formats the message for key with args.
func (p *Printer) Sprintf(key Key, args ...any) string {
	return p.p.Sprintf(key, args...)
}
