package components

import (
	"strings"

	"github.com/kerbaras/comics/pkg/app/styles"
	"github.com/kerbaras/comics/pkg/services"
)

// RenderErrorPanel draws the single error panel of the viewer.
func RenderErrorPanel(msg services.ErrorMessage, width int) string {
	lines := []string{
		"🎨",
		"",
		styles.TextStyle.Render(msg.Text),
		styles.MutedStyle.Render(msg.Hint),
	}
	if msg.Detail != "" {
		lines = append(lines, "", styles.StatusError.Render(msg.Detail))
	}

	style := styles.ErrorPanelStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
