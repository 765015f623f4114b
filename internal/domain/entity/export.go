package entity

import "time"

// ExportVersion is the current export document version.
const ExportVersion = 1

// Settings is the part of the user configuration that travels with an export.
type Settings struct {
	SearchEngine string `json:"search_engine,omitempty" yaml:"search_engine,omitempty" jsonschema:"description=Search engine prefix the query is appended to"`
	UserName     string `json:"user_name,omitempty" yaml:"user_name,omitempty"`
	TabName      string `json:"tab_name,omitempty" yaml:"tab_name,omitempty"`
}

// IsZero reports whether no field is set.
func (s Settings) IsZero() bool {
	return s == Settings{}
}

// ExportedBookmark is the portable form of a bookmark.
type ExportedBookmark struct {
	Name string   `json:"name" yaml:"name" jsonschema:"required,minLength=1"`
	URL  string   `json:"url" yaml:"url" jsonschema:"required,minLength=1"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ExportDocument is the file written by export and read by import.
type ExportDocument struct {
	Version    int                `json:"version" yaml:"version" jsonschema:"required,minimum=1"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Config     *Settings          `json:"config,omitempty" yaml:"config,omitempty"`
	Bookmarks  []ExportedBookmark `json:"bookmarks" yaml:"bookmarks"`
}
