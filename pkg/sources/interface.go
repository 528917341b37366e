package sources

import "context"

// Source fetches the raw bytes behind a comic resource location.
type Source interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}
