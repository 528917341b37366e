package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/data"
)

type Prober interface {
	Exists(ctx context.Context, url string) bool
}

// Sequential finds the highest comic index by probing 1, 2, 3, ... one at a
// time. Probing stops once the index passes the last hit by more than the gap
// tolerance, or at the maximum index.
type Sequential struct {
	folder       string
	probe        Prober
	maxIndex     int
	gapTolerance int
	log          *zap.Logger
}

func NewSequential(folder string, probe Prober, maxIndex, gapTolerance int, log *zap.Logger) *Sequential {
	if maxIndex <= 0 {
		maxIndex = DefaultMaxIndex
	}
	if gapTolerance < 0 {
		gapTolerance = DefaultGapTolerance
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sequential{
		folder:       folder,
		probe:        probe,
		maxIndex:     maxIndex,
		gapTolerance: gapTolerance,
		log:          log,
	}
}

func (s *Sequential) Strategy() string {
	return StrategySequential
}

func (s *Sequential) Resolve(ctx context.Context) (data.CatalogConfig, error) {
	start := time.Now()
	maxFound, probes := 0, 0

	for i := 1; i <= s.maxIndex; i++ {
		if err := ctx.Err(); err != nil {
			return data.CatalogConfig{}, err
		}

		probes++
		if s.probe.Exists(ctx, data.ImageURL(s.folder, i)) {
			maxFound = i
		} else if i > maxFound+s.gapTolerance {
			break
		}
	}

	s.log.Debug("Catalog probed",
		zap.String("folder", s.folder),
		zap.Int("total", maxFound),
		zap.Int("probes", probes),
		zap.Duration("elapsed", time.Since(start)))

	return data.CatalogConfig{TotalComics: maxFound, ImageFolderPath: s.folder}, nil
}
