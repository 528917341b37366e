package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/sources"
)

// document is the wire shape of the catalog configuration resource.
type document struct {
	TotalComics *int   `json:"totalComics"`
	ImageFolder string `json:"imageFolder"`
	// accepted as an alias of imageFolder
	ImageFolderPath string `json:"imageFolderPath"`
}

// Declarative reads the catalog from a configuration resource in one fetch.
type Declarative struct {
	location string
	source   sources.Source
	log      *zap.Logger
}

func NewDeclarative(location string, source sources.Source, log *zap.Logger) *Declarative {
	if log == nil {
		log = zap.NewNop()
	}
	return &Declarative{location: location, source: source, log: log}
}

func (d *Declarative) Strategy() string {
	return StrategyDeclarative
}

func (d *Declarative) Resolve(ctx context.Context) (data.CatalogConfig, error) {
	content, err := d.source.Fetch(ctx, d.location)
	if err != nil {
		return data.CatalogConfig{}, &ConfigLoadError{Location: d.location, Err: err}
	}

	cfg, err := parseDocument(content)
	if err != nil {
		return data.CatalogConfig{}, &ConfigLoadError{Location: d.location, Err: err}
	}
	// a relative folder is relative to the configuration resource
	cfg.ImageFolderPath = sources.ResolveRef(d.location, cfg.ImageFolderPath)

	d.log.Debug("Catalog configuration loaded",
		zap.String("location", d.location),
		zap.String("folder", cfg.ImageFolderPath),
		zap.Int("total", cfg.TotalComics))

	return cfg, nil
}

func parseDocument(content []byte) (data.CatalogConfig, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&doc); err != nil {
		return data.CatalogConfig{}, fmt.Errorf("failed to decode: %w", err)
	}

	if doc.TotalComics == nil {
		return data.CatalogConfig{}, errors.New("totalComics is missing")
	}
	if *doc.TotalComics < 0 {
		return data.CatalogConfig{}, fmt.Errorf("totalComics must not be negative, got %d", *doc.TotalComics)
	}

	folder := doc.ImageFolder
	if folder == "" {
		folder = doc.ImageFolderPath
	}
	if folder == "" {
		return data.CatalogConfig{}, errors.New("imageFolder is missing")
	}

	return data.CatalogConfig{TotalComics: *doc.TotalComics, ImageFolderPath: folder}, nil
}
