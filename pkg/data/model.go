package data

import (
	"fmt"
	"strings"
	"time"
)

// CatalogConfig describes the comics available in one image folder.
type CatalogConfig struct {
	TotalComics     int
	ImageFolderPath string
}

// Empty reports whether the catalog holds no comics at all.
func (c CatalogConfig) Empty() bool {
	return c.TotalComics <= 0
}

// Contains reports whether index addresses a comic of this catalog.
func (c CatalogConfig) Contains(index int) bool {
	return index >= 1 && index <= c.TotalComics
}

// ImageURL returns the location of the comic image with the given index.
func (c CatalogConfig) ImageURL(index int) string {
	return ImageURL(c.ImageFolderPath, index)
}

// ImageURL derives the image location for index inside folder: the index is
// zero-padded to three digits and always carries the .png extension.
func ImageURL(folder string, index int) string {
	return fmt.Sprintf("%s/%03d.png", strings.TrimRight(folder, "/"), index)
}

// Label is the display label of a comic.
func Label(index int) string {
	return fmt.Sprintf("#%d", index)
}

type Comic struct {
	Index int
	URL   string
	Label string
	Title string // alt text shown next to the image
	Image []byte
}

// Resolution is one journaled catalog resolution.
type Resolution struct {
	ResolvedAt  time.Time
	Strategy    string // "sequential", "declarative"
	Folder      string
	TotalComics int
	Elapsed     time.Duration
	Error       string
}
