package entity

import (
	"strings"
	"time"
)

// BookmarkID uniquely identifies a stored bookmark.
type BookmarkID int64

// Bookmark is a named destination with free-form tags.
// Name and URL are not unique.
type Bookmark struct {
	ID        BookmarkID
	Name      string
	URL       string
	Tags      []string
	Position  int // Order in the start page list
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookmark creates a bookmark with trimmed fields.
func NewBookmark(name, url string, tags ...string) *Bookmark {
	now := time.Now()
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return &Bookmark{
		Name:      strings.TrimSpace(name),
		URL:       strings.TrimSpace(url),
		Tags:      cleaned,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Matches reports whether the lower-cased query is contained in the name,
// the URL or any tag. The query must already be lower-cased.
func (b *Bookmark) Matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(b.Name), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(b.URL), lowerQuery) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

// DefaultBookmarks returns the bookmarks seeded on first start.
func DefaultBookmarks() []*Bookmark {
	return []*Bookmark{
		NewBookmark("GitHub", "https://github.com", "dev", "code"),
		NewBookmark("Google", "https://google.com", "search"),
		NewBookmark("YouTube", "https://youtube.com", "video", "entertainment"),
		NewBookmark("Reddit", "https://reddit.com", "social"),
	}
}
