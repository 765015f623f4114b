package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const omniboxCharLimit = 2048

// NewOmniboxInput creates the focused start page input.
func NewOmniboxInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "search, open a URL, or type : for commands"
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "→ "
	ti.CharLimit = omniboxCharLimit
	return ti
}
