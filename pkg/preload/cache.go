// Package preload warms neighboring comics so navigation does not wait on
// the network.
package preload

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/sources"
)

// Cache remembers which comic indices were requested for preload. Each index
// is fetched at most once per session and entries are never evicted.
// Fetched image bytes are kept too, so memory grows with the size of every
// preloaded neighbour for the whole session.
type Cache struct {
	ctx    context.Context
	source sources.Source
	urlFor func(index int) string
	log    *zap.Logger

	mu        sync.Mutex
	requested map[int]struct{}
	images    map[int][]byte
	wg        sync.WaitGroup
}

func New(ctx context.Context, source sources.Source, urlFor func(index int) string, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		ctx:       ctx,
		source:    source,
		urlFor:    urlFor,
		log:       log,
		requested: make(map[int]struct{}),
		images:    make(map[int][]byte),
	}
}

// MarkAndFetch records index and starts a fire-and-forget fetch of its
// image. Indices already recorded are ignored.
func (c *Cache) MarkAndFetch(index int) {
	c.mu.Lock()
	if _, ok := c.requested[index]; ok {
		c.mu.Unlock()
		return
	}
	c.requested[index] = struct{}{}
	c.mu.Unlock()

	url := c.urlFor(index)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		content, err := c.source.Fetch(c.ctx, url)
		if err != nil {
			c.log.Debug("Preload failed", zap.Int("index", index), zap.String("url", url), zap.Error(err))
			return
		}

		c.mu.Lock()
		c.images[index] = content
		c.mu.Unlock()
		c.log.Debug("Preloaded", zap.Int("index", index), zap.Int("bytes", len(content)))
	}()
}

func (c *Cache) Has(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.requested[index]
	return ok
}

// Get returns the preloaded image of index once its fetch has succeeded.
func (c *Cache) Get(index int) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	content, ok := c.images[index]
	return content, ok
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requested)
}

// Wait blocks until every started fetch has finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}
