package screens

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/comics/pkg/i18n"
	"github.com/kerbaras/comics/pkg/navigation"
)

type keyMap struct {
	First    key.Binding
	Previous key.Binding
	Random   key.Binding
	Next     key.Binding
	Last     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(m *i18n.Messages) keyMap {
	return keyMap{
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", m.First),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", m.Previous),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", m.Random),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", m.Next),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", m.Last),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", m.Help),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", m.Quit),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.First, k.Previous, k.Random, k.Next, k.Last},
		{k.Help, k.Quit},
	}
}

// command maps a key press to its navigation command.
func (k keyMap) command(msg tea.KeyMsg) (navigation.Command, bool) {
	switch {
	case key.Matches(msg, k.First):
		return navigation.First, true
	case key.Matches(msg, k.Previous):
		return navigation.Previous, true
	case key.Matches(msg, k.Random):
		return navigation.Random, true
	case key.Matches(msg, k.Next):
		return navigation.Next, true
	case key.Matches(msg, k.Last):
		return navigation.Last, true
	}
	return 0, false
}
