package sources

import (
	"context"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Mux routes http(s) locations to an HTTP source and everything else to the
// local filesystem.
type Mux struct {
	remote Source
	local  Source
}

func NewMux(remote, local Source) *Mux {
	return &Mux{remote: remote, local: local}
}

// NewDefault returns the source used by the viewer.
func NewDefault(timeout time.Duration, userAgent string) *Mux {
	return NewMux(NewHTTPSource(timeout, userAgent), NewLocalSource())
}

func (m *Mux) Fetch(ctx context.Context, location string) ([]byte, error) {
	if IsRemote(location) {
		return m.remote.Fetch(ctx, location)
	}
	return m.local.Fetch(ctx, location)
}

func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ResolveRef resolves ref against the location of the document that
// mentioned it, the way a browser resolves a relative link.
func ResolveRef(base, ref string) string {
	if ref == "" || IsRemote(ref) || strings.HasPrefix(ref, "file://") {
		return ref
	}

	if IsRemote(base) {
		b, err := url.Parse(base)
		if err != nil {
			return ref
		}
		r, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return b.ResolveReference(r).String()
	}

	if filepath.IsAbs(ref) || strings.HasPrefix(ref, "/") {
		return ref
	}
	dir := filepath.Dir(strings.TrimPrefix(base, "file://"))
	if strings.HasPrefix(base, "file://") {
		return "file://" + path.Join(filepath.ToSlash(dir), ref)
	}
	return filepath.Join(dir, ref)
}
