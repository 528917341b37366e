package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/catalog"
	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/i18n"
	"github.com/kerbaras/comics/pkg/navigation"
	"github.com/kerbaras/comics/pkg/sources"
)

type ControllerConfig struct {
	ImageFolder  string
	ConfigURL    string
	MaxIndex     int
	GapTolerance int
	Preload      bool
	Language     string
	Title        string
	HTTPTimeout  time.Duration
	UserAgent    string
	JournalPath  string // empty disables the resolution journal
}

// Controller wires the catalog, the image source and the journal together
// for one viewer session.
type Controller struct {
	config   ControllerConfig
	source   sources.Source
	resolver catalog.Resolver
	repo     *data.Repository
	messages *i18n.Messages
	log      *zap.Logger
}

func NewController(cfg ControllerConfig, log *zap.Logger) (*Controller, error) {
	return NewControllerWithSource(cfg, sources.NewDefault(cfg.HTTPTimeout, cfg.UserAgent), log)
}

func NewControllerWithSource(cfg ControllerConfig, source sources.Source, log *zap.Logger) (*Controller, error) {
	if log == nil {
		log = zap.NewNop()
	}

	c := &Controller{
		config:   cfg,
		source:   source,
		messages: i18n.For(cfg.Language),
		log:      log,
	}

	c.resolver = catalog.New(catalog.Options{
		ImageFolder:  cfg.ImageFolder,
		ConfigURL:    cfg.ConfigURL,
		MaxIndex:     cfg.MaxIndex,
		GapTolerance: cfg.GapTolerance,
		Source:       source,
		Log:          log.Named("catalog"),
	})

	if cfg.JournalPath != "" {
		repo, err := data.NewDuckDBRepository(cfg.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open resolution journal: %w", err)
		}
		c.repo = repo
		c.resolver = catalog.Journal(c.resolver, repo, c.journalKey(), log.Named("journal"))
	}

	return c, nil
}

func (c *Controller) Messages() *i18n.Messages {
	return c.messages
}

func (c *Controller) Source() sources.Source {
	return c.source
}

func (c *Controller) Strategy() string {
	return c.resolver.Strategy()
}

// Resolve determines the catalog. An empty catalog is reported as
// catalog.ErrNoComics.
func (c *Controller) Resolve(ctx context.Context) (data.CatalogConfig, error) {
	start := time.Now()
	cat, err := catalog.Check(c.resolver.Resolve(ctx))
	if err != nil {
		c.log.Warn("Catalog unavailable", zap.String("strategy", c.Strategy()), zap.Error(err))
		return cat, err
	}
	c.log.Info("Catalog resolved",
		zap.String("strategy", c.Strategy()),
		zap.String("folder", cat.ImageFolderPath),
		zap.Int("total", cat.TotalComics),
		zap.Duration("elapsed", time.Since(start)))
	return cat, nil
}

// Start seeds a viewer session from a resolution outcome. When the catalog
// is unavailable the error state is shown and no loader is returned.
// Otherwise the returned request loads the last comic.
func (c *Controller) Start(ctx context.Context, display Display, cat data.CatalogConfig, resolveErr error) (*Loader, Request, bool) {
	if resolveErr == nil && cat.Empty() {
		resolveErr = catalog.ErrNoComics
	}
	if resolveErr != nil {
		NewErrorPresenter(display, c.messages).ShowNoComicsFound()
		display.SetControls(navigation.Controls{})
		return nil, Request{}, false
	}

	loader := NewLoader(ctx, LoaderConfig{
		Catalog:  cat,
		Source:   c.source,
		Display:  display,
		Messages: c.messages,
		Title:    c.config.Title,
		Preload:  c.config.Preload,
		Log:      c.log.Named("loader"),
	})

	last, _ := loader.Navigation().Last()
	req, ok := loader.Begin(last)
	return loader, req, ok
}

// Run resolves the catalog and loads the last comic synchronously.
func (c *Controller) Run(ctx context.Context, display Display) (*Loader, error) {
	cat, err := c.Resolve(ctx)
	loader, req, ok := c.Start(ctx, display, cat, err)
	if err != nil {
		return nil, err
	}
	if !ok {
		return loader, nil
	}
	res := loader.Fetch(ctx, req)
	loader.Complete(res)
	return loader, res.Err
}

// History lists journaled resolutions, newest first.
func (c *Controller) History(limit int) ([]*data.Resolution, error) {
	if c.repo == nil {
		return nil, ErrJournalDisabled
	}
	return c.repo.ListResolutions(limit)
}

// LastResolution returns the latest journaled resolution of the configured
// catalog, or nil when there is none.
func (c *Controller) LastResolution() (*data.Resolution, error) {
	if c.repo == nil {
		return nil, ErrJournalDisabled
	}
	return c.repo.LastResolution(c.journalKey())
}

func (c *Controller) journalKey() string {
	if c.config.ConfigURL != "" {
		return c.config.ConfigURL
	}
	return c.config.ImageFolder
}

var ErrJournalDisabled = errors.New("resolution journal is disabled, set journal.path")

func (c *Controller) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
