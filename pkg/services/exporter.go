package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/i18n"
	"github.com/kerbaras/comics/pkg/integrations"
	"github.com/kerbaras/comics/pkg/probe"
	"github.com/kerbaras/comics/pkg/sources"
)

// ExportProgress represents the progress of an export
type ExportProgress struct {
	Index  int
	Done   int
	Total  int
	Status string // "fetching", "fetched", "error", "writing", "complete"
	Error  error
}

// Exporter fetches a range of comics and compiles them into one EPUB.
type Exporter struct {
	source       sources.Source
	builder      integrations.Builder
	optimizer    integrations.Optimizer
	title        string
	concurrency  int
	log          *zap.Logger
	progressChan chan ExportProgress
	closeOnce    sync.Once
}

func NewExporter(source sources.Source, builder integrations.Builder, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{
		source:       source,
		builder:      builder,
		concurrency:  3,
		log:          log,
		progressChan: make(chan ExportProgress, 100),
	}
}

// WithOptimizer processes every page before it is written.
func (e *Exporter) WithOptimizer(o integrations.Optimizer) *Exporter {
	e.optimizer = o
	return e
}

// WithTitle sets the series title used for page alt texts.
func (e *Exporter) WithTitle(title string) *Exporter {
	e.title = title
	return e
}

// Progress returns the channel receiving export progress updates.
func (e *Exporter) Progress() <-chan ExportProgress {
	return e.progressChan
}

// Export writes comics from..to of cat into one book. Comics that fail are
// left out and reported in the returned error; the book is still written
// when at least one comic succeeded.
func (e *Exporter) Export(ctx context.Context, cat data.CatalogConfig, from, to int, book integrations.Book) (string, error) {
	if from == 0 {
		from = 1
	}
	if to == 0 {
		to = cat.TotalComics
	}
	if !cat.Contains(from) || !cat.Contains(to) || from > to {
		return "", fmt.Errorf("invalid range %d-%d for %d comics", from, to, cat.TotalComics)
	}

	total := to - from + 1
	pages := make([]integrations.Page, 0, total)

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		errs      error
		done      int
		semaphore = make(chan struct{}, e.concurrency)
	)

	for index := from; index <= to; index++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			e.sendProgress(ExportProgress{Index: index, Total: total, Status: "fetching"})
			page, err := e.fetchPage(ctx, cat, index)

			mu.Lock()
			defer mu.Unlock()
			done++
			if err != nil {
				errs = multierr.Append(errs, err)
				e.log.Warn("Comic left out of export", zap.Int("index", index), zap.Error(err))
				e.sendProgress(ExportProgress{Index: index, Done: done, Total: total, Status: "error", Error: err})
				return
			}
			pages = append(pages, page)
			e.sendProgress(ExportProgress{Index: index, Done: done, Total: total, Status: "fetched"})
		}(index)
	}
	wg.Wait()

	if len(pages) == 0 {
		return "", multierr.Append(fmt.Errorf("no comics could be exported"), errs)
	}

	e.sendProgress(ExportProgress{Done: done, Total: total, Status: "writing"})
	path, err := e.builder.CreateEPub(book, pages)
	if err != nil {
		return "", multierr.Append(errs, fmt.Errorf("failed to write book: %w", err))
	}

	e.log.Info("Exported comics", zap.String("path", path), zap.Int("pages", len(pages)), zap.Int("failed", len(multierr.Errors(errs))))
	e.sendProgress(ExportProgress{Done: done, Total: total, Status: "complete"})
	return path, errs
}

func (e *Exporter) fetchPage(ctx context.Context, cat data.CatalogConfig, index int) (integrations.Page, error) {
	url := cat.ImageURL(index)
	content, err := e.source.Fetch(ctx, url)
	if err != nil {
		return integrations.Page{}, &ImageLoadError{Index: index, URL: url, Err: err}
	}
	if _, err := probe.Decode(content); err != nil {
		return integrations.Page{}, &ImageLoadError{Index: index, URL: url, Err: err}
	}

	page := integrations.Page{
		Index:   index,
		Title:   i18n.ComicTitle(e.title, index),
		Label:   data.Label(index),
		Content: content,
	}
	if e.optimizer != nil {
		if page.Content, page.Ext, err = e.optimizer.Optimize(content); err != nil {
			return integrations.Page{}, &ImageLoadError{Index: index, URL: url, Err: err}
		}
	}
	return page, nil
}

// sendProgress sends a progress update (non-blocking)
func (e *Exporter) sendProgress(progress ExportProgress) {
	select {
	case e.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close closes the progress channel. Export must not be called afterwards.
func (e *Exporter) Close() {
	e.closeOnce.Do(func() {
		close(e.progressChan)
	})
}
