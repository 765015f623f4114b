package query

import "github.com/bnema/orbit/internal/domain/entity"

// MaxSuggestions caps how many remote suggestions are kept.
const MaxSuggestions = 6

// ResultSet is the single collection currently presented to the user.
// It is one of Empty, Commands, Bookmarks or RemoteSuggestions.
type ResultSet interface {
	Len() int
	String() string
	resultSet()
}

// Empty shows nothing.
type Empty struct{}

// Commands holds command prefix matches.
type Commands struct {
	Items []entity.Command
}

// Bookmarks holds bookmark containment matches in snapshot order.
type Bookmarks struct {
	Items []*entity.Bookmark
}

// RemoteSuggestions holds server-ordered completions, at most MaxSuggestions.
type RemoteSuggestions struct {
	Query string
	Items []string
}

func (Empty) Len() int               { return 0 }
func (c Commands) Len() int          { return len(c.Items) }
func (b Bookmarks) Len() int         { return len(b.Items) }
func (r RemoteSuggestions) Len() int { return len(r.Items) }

func (Empty) String() string             { return "empty" }
func (Commands) String() string          { return "commands" }
func (Bookmarks) String() string         { return "bookmarks" }
func (RemoteSuggestions) String() string { return "suggestions" }

func (Empty) resultSet()             {}
func (Commands) resultSet()          {}
func (Bookmarks) resultSet()         {}
func (RemoteSuggestions) resultSet() {}

// NewRemoteSuggestions truncates items to MaxSuggestions.
func NewRemoteSuggestions(query string, items []string) RemoteSuggestions {
	if len(items) > MaxSuggestions {
		items = items[:MaxSuggestions]
	}
	kept := make([]string, len(items))
	copy(kept, items)
	return RemoteSuggestions{Query: query, Items: kept}
}
