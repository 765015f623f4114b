package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/orbit/internal/cli/styles"
)

func newResetConfirm(theme *styles.Theme) styles.ConfirmModel {
	return styles.NewConfirm(theme,
		"Reset all settings and bookmarks?",
		"Bookmarks and settings return to their defaults.",
	)
}

// View implements tea.Model.
func (m *Omnibox) View() string {
	t := m.theme
	width := m.contentWidth()

	sections := []string{
		t.RenderHeader(m.appearance.TabName, m.appearance.UserName, m.appearance.Greeting, m.clock),
	}
	if m.appearance.QuoteInterval > 0 {
		if q := t.RenderQuote(m.quotes.Current(), width); q != "" {
			sections = append(sections, q)
		}
	}
	sections = append(sections,
		"",
		t.InputFocused.Width(width).Render(m.input.View()),
		"",
	)

	switch {
	case m.confirm != nil:
		sections = append(sections, m.confirm.View())
	case m.showHelp:
		sections = append(sections, m.renderHelpOverlay(width))
	default:
		if title := t.ResultsTitle(m.resolver.Results(), m.resolver.ShowingAll()); title != "" {
			sections = append(sections, title)
		}
		if rows := t.RenderResults(m.resolver.Results(), m.resolver.Cursor(), width); rows != "" {
			sections = append(sections, rows)
		}
	}

	if m.status != "" {
		style := t.SuccessStyle
		if m.statusErr {
			style = t.ErrorStyle
		}
		sections = append(sections, "", style.Render(m.status))
	}

	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Omnibox) renderHelpOverlay(width int) string {
	t := m.theme

	var b strings.Builder
	b.WriteString(t.Title.Render("Commands"))
	b.WriteString("\n")
	for _, cmd := range m.dispatcher.Commands() {
		b.WriteString(t.HelpKey.Render(cmd.Name))
		b.WriteString("  ")
		b.WriteString(t.HelpDesc.Render(cmd.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Title.Render("Keys"))
	b.WriteString("\n")

	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(t.Subtle.Render("Type to filter bookmarks. Anything else searches the web or opens a URL."))

	return t.Box.Width(width).Render(b.String())
}
