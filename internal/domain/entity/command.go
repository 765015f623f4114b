package entity

import "strings"

// CommandPrefix marks input as a command rather than a query.
const CommandPrefix = ":"

// Command names.
const (
	CommandList     = ":list"
	CommandConfig   = ":config"
	CommandBookmark = ":bookmark"
	CommandExport   = ":export"
	CommandImport   = ":import"
	CommandHelp     = ":help"
	CommandReset    = ":reset"
)

// Command is a named start page action shown in the command list.
type Command struct {
	Name        string
	Description string
}

// HasPrefix reports whether the command name starts with the lower-cased prefix.
func (c Command) HasPrefix(lowerPrefix string) bool {
	return strings.HasPrefix(strings.ToLower(c.Name), lowerPrefix)
}

// BuiltinCommands returns the commands in display order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: CommandList, Description: "Show all bookmarks"},
		{Name: CommandConfig, Description: "Open settings"},
		{Name: CommandBookmark, Description: "Edit bookmarks"},
		{Name: CommandExport, Description: "Export bookmarks and settings"},
		{Name: CommandImport, Description: "Import bookmarks and settings"},
		{Name: CommandHelp, Description: "Show help"},
		{Name: CommandReset, Description: "Reset all settings and bookmarks"},
	}
}
