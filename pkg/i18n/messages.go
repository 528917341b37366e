// Package i18n holds the user-visible texts of the viewer.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

const DefaultTitle = "Auduns eventyr"

type Messages struct {
	Tag language.Tag

	Placeholder   string // label shown instead of "#N" when nothing can be displayed
	NoComicsTitle string
	NoComicsText  string
	NoComicsHint  string
	ImageFailed   string
	Loading       string
	Resolving     string

	First    string
	Previous string
	Random   string
	Next     string
	Last     string
	Quit     string
	Help     string
}

var bokmal = Messages{
	Tag:           language.MustParse("nb"),
	Placeholder:   "?",
	NoComicsTitle: "Fant ingen tegneserier",
	NoComicsText:  "Ingen tegneserier funnet ennå!",
	NoComicsHint:  "Legg til bilder i mappen images/",
	ImageFailed:   "Kunne ikke laste tegneserie %s",
	Loading:       "Laster...",
	Resolving:     "Leter etter tegneserier...",
	First:         "Første",
	Previous:      "Forrige",
	Random:        "Tilfeldig",
	Next:          "Neste",
	Last:          "Siste",
	Quit:          "avslutt",
	Help:          "hjelp",
}

var english = Messages{
	Tag:           language.English,
	Placeholder:   "?",
	NoComicsTitle: "No comics found",
	NoComicsText:  "No comics found yet!",
	NoComicsHint:  "Add images to the images/ folder",
	ImageFailed:   "Could not load comic %s",
	Loading:       "Loading...",
	Resolving:     "Looking for comics...",
	First:         "First",
	Previous:      "Previous",
	Random:        "Random",
	Next:          "Next",
	Last:          "Last",
	Quit:          "quit",
	Help:          "help",
}

// first entry is the fallback of the matcher
var (
	catalog = []*Messages{&bokmal, &english}
	matcher = language.NewMatcher([]language.Tag{bokmal.Tag, english.Tag})
)

// For returns the messages best matching the requested language tags.
// Unknown or malformed tags fall back to Norwegian.
func For(tags ...string) *Messages {
	var wanted []language.Tag
	for _, t := range tags {
		if t == "" {
			continue
		}
		tag, err := language.Parse(t)
		if err != nil {
			continue
		}
		wanted = append(wanted, tag)
	}
	_, index, _ := matcher.Match(wanted...)
	return catalog[index]
}

// ComicTitle is the alt text of a comic, "<series> #N".
func ComicTitle(series string, index int) string {
	if series == "" {
		series = DefaultTitle
	}
	return fmt.Sprintf("%s #%d", series, index)
}

func (m *Messages) ImageFailedText(label string) string {
	return fmt.Sprintf(m.ImageFailed, label)
}
