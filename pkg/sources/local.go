package sources

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// LocalSource reads resources from the filesystem. Locations may be plain
// paths or file:// URLs.
type LocalSource struct{}

func NewLocalSource() *LocalSource {
	return &LocalSource{}
}

func (s *LocalSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(strings.TrimPrefix(location, "file://"))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return content, nil
}
