package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/comics/pkg/app/components"
	"github.com/kerbaras/comics/pkg/app/styles"
	"github.com/kerbaras/comics/pkg/services"
)

type exportDoneMsg struct {
	path string
	err  error
}

// ExportScreen shows the progress of an export started by run.
type ExportScreen struct {
	progress <-chan services.ExportProgress
	run      func() (string, error)
	tracker  *components.ProgressTracker
	spinner  spinner.Model

	done bool
	path string
	err  error
}

func NewExportScreen(progress <-chan services.ExportProgress, run func() (string, error)) *ExportScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &ExportScreen{
		progress: progress,
		run:      run,
		tracker:  components.NewProgressTracker(60),
		spinner:  s,
	}
}

func (s *ExportScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.listenForProgress, s.start)
}

func (s *ExportScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.tracker.SetWidth(min(msg.Width-4, 80))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.err = fmt.Errorf("export interrupted")
			return s, tea.Quit
		}

	case services.ExportProgress:
		s.tracker.Update(msg)
		return s, s.listenForProgress

	case exportDoneMsg:
		s.done = true
		s.path = msg.path
		s.err = msg.err
		return s, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ExportScreen) View() string {
	var b strings.Builder
	if !s.done {
		b.WriteString(s.spinner.View() + " ")
	}
	b.WriteString(s.tracker.View())
	if s.done && s.path != "" {
		b.WriteString(styles.StatusCompleted.Render("Written " + s.path))
		b.WriteString("\n")
	}
	return b.String()
}

// Result returns the written book and the export errors.
func (s *ExportScreen) Result() (string, error) {
	return s.path, s.err
}

func (s *ExportScreen) start() tea.Msg {
	path, err := s.run()
	return exportDoneMsg{path: path, err: err}
}

func (s *ExportScreen) listenForProgress() tea.Msg {
	progress, ok := <-s.progress
	if !ok {
		return nil
	}
	return progress
}
