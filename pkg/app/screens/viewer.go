package screens

import (
	"context"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/comics/pkg/app/components"
	"github.com/kerbaras/comics/pkg/app/styles"
	"github.com/kerbaras/comics/pkg/data"
	"github.com/kerbaras/comics/pkg/i18n"
	"github.com/kerbaras/comics/pkg/navigation"
	"github.com/kerbaras/comics/pkg/services"
)

// Controller is what the viewer needs from a session.
type Controller interface {
	Resolve(ctx context.Context) (data.CatalogConfig, error)
	Start(ctx context.Context, display services.Display, cat data.CatalogConfig, resolveErr error) (*services.Loader, services.Request, bool)
	Messages() *i18n.Messages
}

type catalogResolvedMsg struct {
	catalog data.CatalogConfig
	err     error
}

type comicLoadedMsg struct {
	result services.Result
}

// ViewerScreen shows one comic at a time. It is the display of the loader,
// so all state changes happen inside Update.
type ViewerScreen struct {
	ctx        context.Context
	controller Controller
	loader     *services.Loader
	messages   *i18n.Messages
	title      string

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	navbar  *components.NavBar

	resolving bool
	loading   bool
	comic     *data.Comic
	picture   image.Image
	errMsg    *services.ErrorMessage

	width  int
	height int
}

func NewViewerScreen(ctx context.Context, controller Controller, title string) *ViewerScreen {
	messages := controller.Messages()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	if title == "" {
		title = i18n.DefaultTitle
	}

	return &ViewerScreen{
		ctx:        ctx,
		controller: controller,
		messages:   messages,
		title:      title,
		keys:       newKeyMap(messages),
		help:       help.New(),
		spinner:    s,
		navbar:     components.NewNavBar(messages),
		resolving:  true,
		width:      80,
		height:     24,
	}
}

func (s *ViewerScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.resolveCatalog)
}

func (s *ViewerScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Help):
			s.help.ShowAll = !s.help.ShowAll
			return s, nil
		}
		if cmd, ok := s.keys.command(msg); ok {
			return s, s.navigate(cmd)
		}

	case catalogResolvedMsg:
		s.resolving = false
		loader, req, ok := s.controller.Start(s.ctx, s, msg.catalog, msg.err)
		s.loader = loader
		if ok {
			return s, s.fetch(req)
		}

	case comicLoadedMsg:
		if s.loader != nil {
			s.loader.Complete(msg.result)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ViewerScreen) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		styles.TitleStyle.Render(s.title),
		styles.LabelStyle.Render(s.label()),
	))
	b.WriteString("\n\n")

	switch {
	case s.resolving:
		b.WriteString(s.spinner.View() + " " + styles.MutedStyle.Render(s.messages.Resolving))
	case s.errMsg != nil:
		b.WriteString(components.RenderErrorPanel(*s.errMsg, min(s.width-2, 60)))
	case s.picture != nil:
		frame := styles.FrameStyle
		if s.loading {
			frame = styles.LoadingFrameStyle
		}
		// title, label, navigation, status and help take about ten rows
		b.WriteString(frame.Render(components.RenderPicture(s.picture, s.width-4, s.height-12)))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(s.comic.Title))
	}
	b.WriteString("\n")

	if s.loading {
		b.WriteString(s.spinner.View() + " " + styles.MutedStyle.Render(s.messages.Loading))
	}
	b.WriteString("\n")

	b.WriteString(s.navbar.View())
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(s.help.View(s.keys)))

	return b.String()
}

func (s *ViewerScreen) label() string {
	switch {
	case s.errMsg != nil:
		return s.errMsg.Label
	case s.comic != nil:
		return s.comic.Label
	default:
		return ""
	}
}

func (s *ViewerScreen) resolveCatalog() tea.Msg {
	cat, err := s.controller.Resolve(s.ctx)
	return catalogResolvedMsg{catalog: cat, err: err}
}

func (s *ViewerScreen) navigate(cmd navigation.Command) tea.Cmd {
	if s.loader == nil {
		return nil
	}
	req, ok := s.loader.Navigate(cmd)
	if !ok {
		return nil
	}
	return s.fetch(req)
}

// fetch runs the blocking part of a load outside of the event loop.
func (s *ViewerScreen) fetch(req services.Request) tea.Cmd {
	loader, ctx := s.loader, s.ctx
	return func() tea.Msg {
		return comicLoadedMsg{result: loader.Fetch(ctx, req)}
	}
}

// Display

func (s *ViewerScreen) SetLoading(loading bool) {
	s.loading = loading
}

func (s *ViewerScreen) ShowComic(comic data.Comic, picture image.Image) {
	s.comic = &comic
	s.picture = picture
}

func (s *ViewerScreen) SetControls(controls navigation.Controls) {
	s.navbar.Controls = controls
}

func (s *ViewerScreen) ShowError(msg services.ErrorMessage) {
	s.errMsg = &msg
}

func (s *ViewerScreen) ClearError() {
	s.errMsg = nil
}
