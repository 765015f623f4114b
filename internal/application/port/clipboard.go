package port

import "context"

// Clipboard is the system clipboard. :export puts the written path on it.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
	// ReadText returns "" for an empty or non-text clipboard.
	ReadText(ctx context.Context) (string, error)
}
