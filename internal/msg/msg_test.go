package msg

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		tags []string
		want language.Tag
	}{
		{[]string{"fr-FR"}, language.French},
		{[]string{"fr-CA"}, language.French},
		{[]string{"en-GB"}, language.English},
		{[]string{"de-DE", "fr"}, language.French},
		{[]string{"ja-JP"}, language.English},
		{[]string{"not a tag!"}, language.English},
		{nil, language.English},
	}
	for _, tt := range tests {
		if got := Match(tt.tags...); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.tags, got, tt.want)
		}
	}
}

func TestPrinterFrench(t *testing.T) {
	p := NewPrinter(language.MustParse("fr-BE"))
	if p.Language() != language.French {
		t.Fatalf("Language() = %v, want fr", p.Language())
	}
	tests := []struct {
		key  Key
		args []any
		want string
	}{
		{BrushMode, nil, "Mode Pinceau"},
		{FillMode, nil, "Mode Remplissage"},
		{DrawingCleared, nil, "Dessin effacé"},
		{DrawingSaved, []any{"Drawing_20240102_030405.png"}, "Dessin sauvegardé dans la galerie : Drawing_20240102_030405.png"},
	}
	for _, tt := range tests {
		if got := p.Sprintf(tt.key, tt.args...); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestPrinterEnglish(t *testing.T) {
	p := NewPrinter(language.English)
	if got := p.Sprintf(ColorSelected, "red"); got != "Color selected: red" {
		t.Errorf("Sprintf(ColorSelected) = %q", got)
	}
	if got := p.Sprintf(PencilMode); got != "Pencil mode" {
		t.Errorf("Sprintf(PencilMode) = %q", got)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	for _, k := range Keys() {
		if french[k] == "" {
			t.Errorf("missing French text for %q", k)
		}
	}
}

func TestEveryKeyRoundTrips(t *testing.T) {
	fr := NewPrinter(language.French)
	en := NewPrinter(language.English)
	for _, k := range Keys() {
		var args []any
		if strings.Contains(k, "%") {
			args = []any{"x"}
		}
		if got, want := fr.Sprintf(k, args...), fmt.Sprintf(french[k], args...); got != want {
			t.Errorf("French Sprintf(%q) = %q, want %q", k, got, want)
		}
		if got, want := en.Sprintf(k, args...), fmt.Sprintf(k, args...); got != want {
			t.Errorf("English Sprintf(%q) = %q, want %q", k, got, want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	ok := func(language.Tag, string, string) error { return nil }
	if err := load(ok, french); err != nil {
		t.Errorf("load() = %v, want nil", err)
	}

	partial := map[Key]string{BrushMode: "Mode Pinceau"}
	if err := load(ok, partial); err == nil {
		t.Error("load() accepted a catalog with missing translations")
	}

	errSet := errors.New("set failed")
	failing := func(language.Tag, string, string) error { return errSet }
	if err := load(failing, french); !errors.Is(err, errSet) {
		t.Errorf("load() = %v, want wrapped %v", err, errSet)
	}
}

func TestDetectSupported(t *testing.T) {
	got := Detect()
	if got != language.English && got != language.French {
		t.Errorf("Detect() = %v, want a supported language", got)
	}
}
