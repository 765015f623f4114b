package usecase

import "errors"

var (
	// ErrUnknownCommand is returned when a token names no registered command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrResetNotConfirmed is returned when a reset was declined.
	ErrResetNotConfirmed = errors.New("reset not confirmed")
	// ErrInvalidBookmark is returned for bookmarks without a name or URL.
	ErrInvalidBookmark = errors.New("invalid bookmark")
	// ErrUnsupportedExport is returned for export documents of an unknown version.
	ErrUnsupportedExport = errors.New("unsupported export version")
)
