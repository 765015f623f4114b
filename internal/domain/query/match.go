package query

import (
	"strings"

	"github.com/bnema/orbit/internal/domain/entity"
)

// MatchCommands returns the commands whose name starts with the input,
// ignoring case. Registration order is kept.
func MatchCommands(commands []entity.Command, input string) []entity.Command {
	prefix := strings.ToLower(input)
	matches := make([]entity.Command, 0, len(commands))
	for _, cmd := range commands {
		if cmd.HasPrefix(prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// MatchBookmarks returns the bookmarks whose name, URL or any tag contains
// the input, ignoring case. Snapshot order is kept.
func MatchBookmarks(bookmarks []*entity.Bookmark, input string) []*entity.Bookmark {
	needle := strings.ToLower(input)
	matches := make([]*entity.Bookmark, 0)
	for _, b := range bookmarks {
		if b != nil && b.Matches(needle) {
			matches = append(matches, b)
		}
	}
	return matches
}
