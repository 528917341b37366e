package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/integrations"
	"github.com/kerbaras/comics/pkg/navigation"
)

// Mock implementations for testing

type mockDisplay struct {
	loading      bool
	loadingCalls []bool
	shown        []data.Comic
	picture      image.Image
	controls     navigation.Controls
	controlCalls int
	errors       []ErrorMessage
	errorVisible bool
	cleared      int
}

func (m *mockDisplay) SetLoading(loading bool) {
	m.loading = loading
	m.loadingCalls = append(m.loadingCalls, loading)
}

func (m *mockDisplay) ShowComic(comic data.Comic, picture image.Image) {
	m.shown = append(m.shown, comic)
	m.picture = picture
}

func (m *mockDisplay) SetControls(controls navigation.Controls) {
	m.controls = controls
	m.controlCalls++
}

func (m *mockDisplay) ShowError(msg ErrorMessage) {
	m.errors = append(m.errors, msg)
	m.errorVisible = true
}

func (m *mockDisplay) ClearError() {
	m.errorVisible = false
	m.cleared++
}

func (m *mockDisplay) current() (data.Comic, bool) {
	if len(m.shown) == 0 {
		return data.Comic{}, false
	}
	return m.shown[len(m.shown)-1], true
}

type mockSource struct {
	fetchFunc func(ctx context.Context, location string) ([]byte, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *mockSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[location]++
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, location)
	}
	return nil, fmt.Errorf("not found: %s", location)
}

func (m *mockSource) count(location string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[location]
}

type mockBuilder struct {
	createFunc func(book integrations.Book, pages []integrations.Page) (string, error)
	book       integrations.Book
	pages      []integrations.Page
	calls      int
}

func (m *mockBuilder) CreateEPub(book integrations.Book, pages []integrations.Page) (string, error) {
	m.calls++
	m.book = book
	m.pages = pages
	if m.createFunc != nil {
		return m.createFunc(book, pages)
	}
	return "/tmp/comics.epub", nil
}

type mockOptimizer struct {
	calls int
}

func (m *mockOptimizer) Optimize(content []byte) ([]byte, string, error) {
	m.calls++
	return []byte("optimized"), "jpg", nil
}

// createTestPNG returns a small valid PNG image.
func createTestPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
		img.Set(x, 1, color.RGBA{B: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// comicSource serves a valid image for every index in present.
func comicSource(folder string, present ...int) *mockSource {
	images := map[string][]byte{}
	for _, i := range present {
		images[data.ImageURL(folder, i)] = createTestPNG()
	}
	return &mockSource{
		fetchFunc: func(ctx context.Context, location string) ([]byte, error) {
			if content, ok := images[location]; ok {
				return content, nil
			}
			return nil, fmt.Errorf("not found: %s", location)
		},
	}
}

func rangeOf(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// writeComics creates 001.png..NNN.png in a fresh directory.
func writeComics(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 1; i <= n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%03d.png", i))
		if err := os.WriteFile(path, createTestPNG(), 0644); err != nil {
			t.Fatalf("Failed to create test image: %v", err)
		}
	}
	return dir
}

func catalogOf(total int) data.CatalogConfig {
	return data.CatalogConfig{TotalComics: total, ImageFolderPath: folder}
}
