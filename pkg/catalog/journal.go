package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/data"
)

type Recorder interface {
	SaveResolution(res *data.Resolution) error
}

// Journaled records every resolution of the wrapped resolver. Journal
// failures are logged and never change the resolution outcome.
type Journaled struct {
	Resolver
	rec    Recorder
	folder string // configured catalog location, the journal key
	log    *zap.Logger
	now    func() time.Time
}

func Journal(r Resolver, rec Recorder, folder string, log *zap.Logger) *Journaled {
	if log == nil {
		log = zap.NewNop()
	}
	return &Journaled{Resolver: r, rec: rec, folder: folder, log: log, now: time.Now}
}

func (j *Journaled) Resolve(ctx context.Context) (data.CatalogConfig, error) {
	start := j.now()
	cfg, err := j.Resolver.Resolve(ctx)

	res := &data.Resolution{
		ResolvedAt:  start,
		Strategy:    j.Strategy(),
		Folder:      j.folder,
		TotalComics: cfg.TotalComics,
		Elapsed:     j.now().Sub(start),
	}
	if err != nil {
		res.Error = err.Error()
	}

	if jerr := j.rec.SaveResolution(res); jerr != nil {
		j.log.Warn("Unable to journal catalog resolution", zap.Error(jerr))
	}
	return cfg, err
}
