package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/comics/pkg/catalog"
	"github.com/kerbaras/comics/pkg/navigation"
)

func TestController_Resolve(t *testing.T) {
	dir := writeComics(t, 4)

	controller, err := NewController(ControllerConfig{ImageFolder: dir}, nil)
	require.NoError(t, err)
	defer controller.Close()

	cat, err := controller.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, cat.TotalComics)
	assert.Equal(t, dir, cat.ImageFolderPath)
	assert.Equal(t, catalog.StrategySequential, controller.Strategy())
}

func TestController_ResolveEmpty(t *testing.T) {
	controller, err := NewController(ControllerConfig{ImageFolder: t.TempDir()}, nil)
	require.NoError(t, err)

	_, err = controller.Resolve(context.Background())
	assert.ErrorIs(t, err, catalog.ErrNoComics)
}

func TestController_StartWithError(t *testing.T) {
	controller, err := NewController(ControllerConfig{ImageFolder: t.TempDir(), Language: "en"}, nil)
	require.NoError(t, err)

	display := &mockDisplay{}
	loader, _, ok := controller.Start(context.Background(), display, catalogOf(0), errors.New("offline"))
	assert.Nil(t, loader)
	assert.False(t, ok)
	require.Len(t, display.errors, 1)
	assert.Equal(t, "No comics found", display.errors[0].Title)
	assert.Equal(t, navigation.Controls{}, display.controls)
}

func TestController_StartLoadsLast(t *testing.T) {
	controller, err := NewControllerWithSource(ControllerConfig{}, comicSource(folder, rangeOf(1, 6)...), nil)
	require.NoError(t, err)

	display := &mockDisplay{}
	loader, req, ok := controller.Start(context.Background(), display, catalogOf(6), nil)
	require.True(t, ok)
	assert.Equal(t, 6, req.Index)
	assert.True(t, display.loading)

	loader.Complete(loader.Fetch(context.Background(), req))
	comic, ok := display.current()
	require.True(t, ok)
	assert.Equal(t, 6, comic.Index)
}

func TestController_History(t *testing.T) {
	dir := writeComics(t, 2)
	journal := filepath.Join(t.TempDir(), "journal.duckdb")

	controller, err := NewController(ControllerConfig{ImageFolder: dir, JournalPath: journal}, nil)
	require.NoError(t, err)
	defer controller.Close()

	_, err = controller.Resolve(context.Background())
	require.NoError(t, err)

	history, err := controller.History(10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].TotalComics)
	assert.Equal(t, catalog.StrategySequential, history[0].Strategy)

	noJournal, err := NewController(ControllerConfig{ImageFolder: dir}, nil)
	require.NoError(t, err)
	_, err = noJournal.History(10)
	assert.ErrorIs(t, err, ErrJournalDisabled)
	_, err = noJournal.LastResolution()
	assert.ErrorIs(t, err, ErrJournalDisabled)
}

func TestController_LastResolution(t *testing.T) {
	dir := writeComics(t, 3)
	journal := filepath.Join(t.TempDir(), "journal.duckdb")

	controller, err := NewController(ControllerConfig{ImageFolder: dir, JournalPath: journal}, nil)
	require.NoError(t, err)
	defer controller.Close()

	last, err := controller.LastResolution()
	require.NoError(t, err)
	assert.Nil(t, last)

	_, err = controller.Resolve(context.Background())
	require.NoError(t, err)

	last, err = controller.LastResolution()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, dir, last.Folder)
	assert.Equal(t, 3, last.TotalComics)
}

// E2E tests for the whole viewer core

func TestE2E_BrowseLocalFolder(t *testing.T) {
	dir := writeComics(t, 10)

	controller, err := NewController(ControllerConfig{ImageFolder: dir, Preload: true}, nil)
	require.NoError(t, err)
	defer controller.Close()

	display := &mockDisplay{}
	ctx := context.Background()

	loader, err := controller.Run(ctx, display)
	require.NoError(t, err)
	defer loader.Cache().Wait()

	step := func(cmd navigation.Command) {
		t.Helper()
		req, ok := loader.Navigate(cmd)
		require.True(t, ok, "navigate %s", cmd)
		require.True(t, loader.Complete(loader.Fetch(ctx, req)))
	}

	comic, _ := display.current()
	assert.Equal(t, 10, comic.Index, "startup shows the last comic")
	assert.Equal(t, navigation.Controls{First: true, Previous: true, Random: true}, display.controls)

	for i := 0; i < 5; i++ {
		step(navigation.Previous)
	}
	comic, _ = display.current()
	assert.Equal(t, 5, comic.Index)
	assert.Equal(t, "#5", comic.Label)

	step(navigation.Last)
	comic, _ = display.current()
	assert.Equal(t, 10, comic.Index)

	step(navigation.First)
	assert.Equal(t, navigation.Controls{Random: true, Next: true, Last: true}, display.controls)
	_, ok := loader.Navigate(navigation.Previous)
	assert.False(t, ok)

	assert.Empty(t, display.errors)
}

func TestE2E_NoComics(t *testing.T) {
	controller, err := NewController(ControllerConfig{ImageFolder: t.TempDir(), Preload: true}, nil)
	require.NoError(t, err)

	display := &mockDisplay{}
	loader, err := controller.Run(context.Background(), display)
	assert.ErrorIs(t, err, catalog.ErrNoComics)
	assert.Nil(t, loader)

	require.Len(t, display.errors, 1)
	assert.Equal(t, "?", display.errors[0].Label)
	assert.Empty(t, display.shown)
	assert.Empty(t, display.loadingCalls)
	assert.Equal(t, navigation.Controls{}, display.controls)
	for _, cmd := range []navigation.Command{navigation.First, navigation.Previous, navigation.Random, navigation.Next, navigation.Last} {
		assert.False(t, display.controls.Enabled(cmd))
	}
}

func TestE2E_DeclarativeHTTP(t *testing.T) {
	pngData := createTestPNG()

	mux := http.NewServeMux()
	mux.HandleFunc("/comics.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalComics": 3, "imageFolder": "images/comics"}`))
	})
	mux.HandleFunc("/images/comics/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngData)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	controller, err := NewController(ControllerConfig{ConfigURL: server.URL + "/comics.json"}, nil)
	require.NoError(t, err)
	assert.Equal(t, catalog.StrategyDeclarative, controller.Strategy())

	display := &mockDisplay{}
	loader, err := controller.Run(context.Background(), display)
	require.NoError(t, err)

	assert.Equal(t, 3, loader.Navigation().Total())
	comic, _ := display.current()
	assert.Equal(t, server.URL+"/images/comics/003.png", comic.URL)
}

func TestE2E_DeclarativeBroken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalComics": "many"}`))
	}))
	defer server.Close()

	controller, err := NewController(ControllerConfig{ConfigURL: server.URL + "/comics.json"}, nil)
	require.NoError(t, err)

	display := &mockDisplay{}
	_, err = controller.Run(context.Background(), display)

	var cfgErr *catalog.ConfigLoadError
	require.True(t, errors.As(err, &cfgErr))
	assert.Len(t, display.errors, 1)
}
