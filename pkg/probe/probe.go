// Package probe answers whether a comic image exists and decodes.
package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/sources"
)

var ErrNotImage = errors.New("resource is not an image")

// Probe reports image existence as a value. A missing or broken image is a
// routine outcome, so Exists never returns an error.
type Probe struct {
	source sources.Source
	log    *zap.Logger
}

func New(source sources.Source, log *zap.Logger) *Probe {
	if log == nil {
		log = zap.NewNop()
	}
	return &Probe{source: source, log: log}
}

// Exists fetches url and reports true only if it decodes as an image.
// No timeout is applied beyond what ctx and the source impose.
func (p *Probe) Exists(ctx context.Context, url string) bool {
	content, err := p.source.Fetch(ctx, url)
	if err != nil {
		p.log.Debug("Probe miss", zap.String("url", url), zap.Error(err))
		return false
	}
	if _, err := Decode(content); err != nil {
		p.log.Debug("Probe undecodable", zap.String("url", url), zap.Error(err))
		return false
	}
	return true
}

// Decode checks the content signature and decodes the image.
func Decode(content []byte) (image.Image, error) {
	if !filetype.IsImage(content) {
		return nil, ErrNotImage
	}
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
