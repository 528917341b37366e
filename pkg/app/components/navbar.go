package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/comics/pkg/app/styles"
	"github.com/kerbaras/comics/pkg/i18n"
	"github.com/kerbaras/comics/pkg/navigation"
)

// NavBar renders the five navigation buttons.
type NavBar struct {
	messages *i18n.Messages
	Controls navigation.Controls
}

func NewNavBar(messages *i18n.Messages) *NavBar {
	return &NavBar{messages: messages}
}

func (n *NavBar) Labels() []string {
	return []string{
		"« " + n.messages.First,
		"‹ " + n.messages.Previous,
		n.messages.Random,
		n.messages.Next + " ›",
		n.messages.Last + " »",
	}
}

func (n *NavBar) View() string {
	commands := []navigation.Command{navigation.First, navigation.Previous, navigation.Random, navigation.Next, navigation.Last}

	buttons := make([]string, len(commands))
	for i, label := range n.Labels() {
		style := styles.DisabledButtonStyle
		if n.Controls.Enabled(commands[i]) {
			style = styles.ButtonStyle
		}
		buttons[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
