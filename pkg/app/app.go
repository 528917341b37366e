package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/comics/pkg/app/screens"
	"github.com/kerbaras/comics/pkg/services"
)

type App struct {
	controller *services.Controller
	title      string
}

func NewApp(controller *services.Controller, title string) *App {
	return &App{controller: controller, title: title}
}

// Run shows the viewer until the user quits.
func (a *App) Run(ctx context.Context) error {
	model := screens.NewViewerScreen(ctx, a.controller, a.title)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// RunExport runs the exporter while showing its progress and returns the
// written book.
func RunExport(ctx context.Context, exporter *services.Exporter, run func() (string, error)) (string, error) {
	model := screens.NewExportScreen(exporter.Progress(), run)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("failed to run export: %w", err)
	}
	return model.Result()
}
