package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c"
	IconX       = "\uf00d"
	IconWarning = "\uf071"

	// Purge / filesystem
	IconTrash    = "\uf1f8"
	IconFolder   = "\uf07b"
	IconConfig   = "\ue615"
	IconDatabase = "\uf1c0"
	IconLogs     = "\uf0f6"
	IconBookmark = "\uf02e"
)
