package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// OmniboxKeyMap defines keybindings for the start page.
// Printable keys always go to the input, so nothing here uses a bare letter.
type OmniboxKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Clear     key.Binding
	Help      key.Binding
	NextQuote key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k OmniboxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Clear, k.Help}
}

// FullHelp returns keybindings for expanded help.
func (k OmniboxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Clear, k.Help, k.NextQuote, k.Quit},
	}
}

// DefaultOmniboxKeyMap returns the default omnibox keybindings.
func DefaultOmniboxKeyMap() OmniboxKeyMap {
	return OmniboxKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Help: key.NewBinding(
			// ctrl+h is Backspace on many terminals.
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		NextQuote: key.NewBinding(
			key.WithKeys("f2", "alt+q"),
			key.WithHelp("F2", "next quote"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// NewStyledHelp creates a help model with theme styling.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.Ellipsis = theme.Subtle
	return h
}
