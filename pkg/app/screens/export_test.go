package screens

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/kerbaras/comics/pkg/services"
)

func TestExportScreen(t *testing.T) {
	progress := make(chan services.ExportProgress, 4)
	s := NewExportScreen(progress, func() (string, error) {
		return "/tmp/comics.epub", nil
	})

	progress <- services.ExportProgress{Index: 1, Total: 2, Status: "fetching"}
	msg := s.listenForProgress()
	_, cmd := s.Update(msg)
	assert.NotNil(t, cmd)
	assert.Contains(t, s.View(), "0/2")

	_, cmd = s.Update(s.start())
	assert.IsType(t, tea.QuitMsg{}, cmd())

	path, err := s.Result()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/comics.epub", path)
	assert.Contains(t, s.View(), "Written /tmp/comics.epub")
}

func TestExportScreen_Error(t *testing.T) {
	progress := make(chan services.ExportProgress)
	close(progress)

	s := NewExportScreen(progress, func() (string, error) {
		return "", errors.New("no comics could be exported")
	})
	assert.Nil(t, s.listenForProgress())

	s.Update(s.start())
	_, err := s.Result()
	assert.Error(t, err)
}

func TestExportScreen_ResizeKeepsProgress(t *testing.T) {
	progress := make(chan services.ExportProgress, 1)
	s := NewExportScreen(progress, func() (string, error) { return "", nil })

	progress <- services.ExportProgress{Index: 4, Done: 1, Total: 5, Status: "error", Error: errors.New("404")}
	s.Update(s.listenForProgress())
	assert.Contains(t, s.View(), "#4: 404")

	s.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := s.View()
	assert.Contains(t, view, "#4: 404")
	assert.Contains(t, view, "1/5")
}
