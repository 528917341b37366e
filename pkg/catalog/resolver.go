// Package catalog determines how many comics an image folder holds.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/probe"
	"github.com/kerbaras/comics/pkg/sources"
)

const (
	StrategySequential  = "sequential"
	StrategyDeclarative = "declarative"

	DefaultMaxIndex     = 999
	DefaultGapTolerance = 5
)

// ErrNoComics reports a catalog that resolved to zero comics.
var ErrNoComics = errors.New("no comics found")

type Resolver interface {
	Resolve(ctx context.Context) (data.CatalogConfig, error)
	Strategy() string
}

// ConfigLoadError is returned when the catalog configuration resource cannot
// be fetched or does not have the expected shape.
type ConfigLoadError struct {
	Location string
	Err      error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load catalog configuration %s: %v", e.Location, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

type Options struct {
	ImageFolder  string
	ConfigURL    string // selects the declarative strategy when set
	MaxIndex     int
	GapTolerance int
	Source       sources.Source
	Log          *zap.Logger
}

// New picks the declarative strategy when a configuration resource is
// configured and falls back to sequential probing otherwise.
func New(opts Options) Resolver {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.ConfigURL != "" {
		return NewDeclarative(opts.ConfigURL, opts.Source, opts.Log)
	}
	return NewSequential(opts.ImageFolder, probe.New(opts.Source, opts.Log), opts.MaxIndex, opts.GapTolerance, opts.Log)
}

// Check converts an empty catalog into ErrNoComics.
func Check(cfg data.CatalogConfig, err error) (data.CatalogConfig, error) {
	if err != nil {
		return cfg, err
	}
	if cfg.Empty() {
		return cfg, ErrNoComics
	}
	return cfg, nil
}
