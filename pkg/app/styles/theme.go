package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")

	RoundedBorder = lipgloss.RoundedBorder()
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// "#N" label above the comic
	LabelStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Frame around the picture, dimmed while loading
	FrameStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary)

	LoadingFrameStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Muted)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(lipgloss.Color("#37474F")).
			Padding(0, 2).
			MarginRight(1).
			Bold(true)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2).
				MarginRight(1)

	ErrorPanelStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Error).
			Padding(1, 4).
			Align(lipgloss.Center)

	StatusActive = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// StatusStyle picks the style of an export status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "fetching", "fetched", "writing":
		return StatusActive
	case "complete":
		return StatusCompleted
	case "error":
		return StatusError
	default:
		return MutedStyle
	}
}
