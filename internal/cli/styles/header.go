package styles

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Greeting returns the time-of-day salutation for now.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 5:
		return "good night,"
	case hour < 12:
		return "good morning,"
	case hour < 17:
		return "good afternoon,"
	case hour < 21:
		return "good evening,"
	default:
		return "good night,"
	}
}

// RenderHeader draws the tab name and the greeting. A custom greeting
// replaces the time-of-day one.
func (t *Theme) RenderHeader(tabName, userName, custom string, now time.Time) string {
	greeting := custom
	if greeting == "" {
		greeting = Greeting(now)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Bottom,
		t.Subtle.Render(greeting+" "),
		t.Highlight.Render(userName),
	)
	return lipgloss.JoinVertical(lipgloss.Left, t.Badge.Render(tabName), "", line)
}

// RenderQuote draws the rotating quote wrapped to width.
func (t *Theme) RenderQuote(text string, width int) string {
	if text == "" {
		return ""
	}
	return t.Subtle.Italic(true).Render(wordwrap.String(text, width))
}
