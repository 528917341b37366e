package services

import (
	"image"

	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/navigation"
)

// Display is the presentation side of the viewer. All calls happen on the
// goroutine that owns the Loader.
type Display interface {
	SetLoading(loading bool)
	ShowComic(comic data.Comic, picture image.Image)
	SetControls(controls navigation.Controls)
	ShowError(msg ErrorMessage)
	ClearError()
}

// ErrorMessage is the single error panel of the viewer.
type ErrorMessage struct {
	Label  string // replaces the "#N" label
	Title  string // replaces the image alt text
	Text   string
	Hint   string
	Detail string // set for a failed image load
}
