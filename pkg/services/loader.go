package services

import (
	"context"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/i18n"
	"github.com/kerbaras/comics/pkg/navigation"
	"github.com/kerbaras/comics/pkg/preload"
	"github.com/kerbaras/comics/pkg/probe"
	"github.com/kerbaras/comics/pkg/sources"
)

// ImageLoadError reports a comic image that could not be fetched or decoded.
type ImageLoadError struct {
	Index int
	URL   string
	Err   error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("failed to load comic %d (%s): %v", e.Index, e.URL, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// Request is an issued load. Token grows with every request so that only
// the latest one may change the display.
type Request struct {
	Index int
	URL   string
	Token uint64
}

type Result struct {
	Request
	Comic   data.Comic
	Picture image.Image
	Err     error
}

type LoaderConfig struct {
	Catalog  data.CatalogConfig
	Source   sources.Source
	Display  Display
	Messages *i18n.Messages
	Title    string // series title used for alt text
	Preload  bool
	Nav      *navigation.State // created from Catalog when nil
	Log      *zap.Logger
}

// Loader loads comics into the display. Begin and Complete must be called
// from one goroutine; Fetch may run anywhere.
type Loader struct {
	catalog  data.CatalogConfig
	source   sources.Source
	display  Display
	errors   *ErrorPresenter
	nav      *navigation.State
	cache    *preload.Cache
	title    string
	log      *zap.Logger
	token    uint64
	inFlight int
}

func NewLoader(ctx context.Context, cfg LoaderConfig) *Loader {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if cfg.Nav == nil {
		cfg.Nav = navigation.New(cfg.Catalog.TotalComics)
	}

	l := &Loader{
		catalog: cfg.Catalog,
		source:  cfg.Source,
		display: cfg.Display,
		errors:  NewErrorPresenter(cfg.Display, cfg.Messages),
		nav:     cfg.Nav,
		title:   cfg.Title,
		log:     cfg.Log,
	}
	if cfg.Preload {
		l.cache = preload.New(ctx, cfg.Source, cfg.Catalog.ImageURL, cfg.Log.Named("preload"))
	}
	return l
}

func (l *Loader) Navigation() *navigation.State {
	return l.nav
}

func (l *Loader) Errors() *ErrorPresenter {
	return l.errors
}

// Cache returns the preload cache, nil when preloading is disabled.
func (l *Loader) Cache() *preload.Cache {
	return l.cache
}

// Begin issues a load of index and switches the display to loading.
// Indices outside the catalog are ignored.
func (l *Loader) Begin(index int) (Request, bool) {
	if !l.catalog.Contains(index) {
		l.log.Debug("Ignoring out of range load", zap.Int("index", index), zap.Int("total", l.catalog.TotalComics))
		return Request{}, false
	}

	l.token++
	l.inFlight++
	req := Request{Index: index, URL: l.catalog.ImageURL(index), Token: l.token}
	l.display.SetLoading(true)
	return req, true
}

// Fetch retrieves and decodes the image of req, preferring preloaded bytes.
func (l *Loader) Fetch(ctx context.Context, req Request) Result {
	res := Result{Request: req}

	var (
		content []byte
		ok      bool
	)
	if l.cache != nil {
		content, ok = l.cache.Get(req.Index)
	}
	if !ok {
		var err error
		if content, err = l.source.Fetch(ctx, req.URL); err != nil {
			res.Err = &ImageLoadError{Index: req.Index, URL: req.URL, Err: err}
			return res
		}
	}

	picture, err := probe.Decode(content)
	if err != nil {
		res.Err = &ImageLoadError{Index: req.Index, URL: req.URL, Err: err}
		return res
	}

	res.Picture = picture
	res.Comic = data.Comic{
		Index: req.Index,
		URL:   req.URL,
		Label: data.Label(req.Index),
		Title: i18n.ComicTitle(l.title, req.Index),
		Image: content,
	}
	return res
}

// Complete applies res to the display. Results of superseded requests are
// dropped and false is returned.
func (l *Loader) Complete(res Result) bool {
	l.inFlight--
	if res.Token != l.token {
		l.log.Debug("Dropping superseded load", zap.Int("index", res.Index), zap.Uint64("token", res.Token))
		return false
	}

	if res.Err != nil {
		l.log.Warn("Unable to load comic", zap.Int("index", res.Index), zap.String("url", res.URL), zap.Error(res.Err))
		l.display.SetLoading(false)
		l.errors.ShowImageLoadFailed(data.Label(res.Index))
		return true
	}

	l.nav.SetCurrent(res.Index)
	l.errors.Clear()
	l.display.ShowComic(res.Comic, res.Picture)
	l.display.SetLoading(false)

	if l.cache != nil {
		for _, neighbor := range []int{res.Index - 1, res.Index + 1} {
			if l.catalog.Contains(neighbor) {
				l.cache.MarkAndFetch(neighbor)
			}
		}
	}

	l.display.SetControls(l.nav.Controls(res.Index))
	l.log.Debug("Comic loaded", zap.Int("index", res.Index), zap.String("url", res.URL))
	return true
}

// Load runs a whole load of index synchronously.
func (l *Loader) Load(ctx context.Context, index int) error {
	req, ok := l.Begin(index)
	if !ok {
		return nil
	}
	res := l.Fetch(ctx, req)
	l.Complete(res)
	return res.Err
}

// Navigate begins a load of the target of cmd relative to the current comic.
func (l *Loader) Navigate(cmd navigation.Command) (Request, bool) {
	target, ok := l.nav.Target(cmd)
	if !ok {
		return Request{}, false
	}
	l.log.Debug("Navigate", zap.Stringer("command", cmd), zap.Int("target", target))
	return l.Begin(target)
}

// Pending reports whether issued loads have not completed yet.
func (l *Loader) Pending() bool {
	return l.inFlight > 0
}
