package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/query"
)

const (
	ellipsis       = "…"
	minRowWidth    = 20
	rowIndicator   = "› "
	rowPlaceholder = "  "
)

// RenderResults draws the active result set, one row per item, with the
// cursor row highlighted. Rows never exceed width cells.
func (t *Theme) RenderResults(rs query.ResultSet, cursor, width int) string {
	if rs == nil || rs.Len() == 0 {
		return ""
	}
	if width < minRowWidth {
		width = minRowWidth
	}

	rows := make([]string, 0, rs.Len())
	switch r := rs.(type) {
	case query.Commands:
		for i, cmd := range r.Items {
			rows = append(rows, t.row(i == cursor, width, cmd.Name, cmd.Description))
		}
	case query.Bookmarks:
		for i, b := range r.Items {
			rows = append(rows, t.bookmarkRow(b, i == cursor, width))
		}
	case query.RemoteSuggestions:
		for i, s := range r.Items {
			rows = append(rows, t.row(i == cursor, width, s, ""))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (t *Theme) row(selected bool, width int, title, desc string) string {
	style, prefix := t.ListItem, rowPlaceholder
	if selected {
		style, prefix = t.ListItemSelected, rowIndicator
	}

	// PaddingLeft(2) and the prefix eat into the row.
	budget := uint(width - 4)
	line := title
	if desc != "" {
		line = title + "  " + t.ListItemDesc.Render(desc)
	}
	return style.Width(width).Render(prefix + truncate.StringWithTail(line, budget, ellipsis))
}

func (t *Theme) bookmarkRow(b *entity.Bookmark, selected bool, width int) string {
	desc := b.URL
	if len(b.Tags) > 0 {
		desc += "  " + strings.Join(prefixTags(b.Tags), " ")
	}
	return t.row(selected, width, b.Name, desc)
}

func prefixTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = "#" + tag
	}
	return out
}

// ResultsTitle labels the visible result set.
func (t *Theme) ResultsTitle(rs query.ResultSet, showAll bool) string {
	switch rs.(type) {
	case query.Commands:
		return t.Subtitle.Render("commands")
	case query.Bookmarks:
		if showAll {
			return t.Subtitle.Render("all bookmarks")
		}
		return t.Subtitle.Render("bookmarks")
	case query.RemoteSuggestions:
		return t.Subtitle.Render("suggestions")
	default:
		return ""
	}
}
