package port

import "context"

// SuggestionRequest asks for remote completions of Query.
// Epoch is the coordinator's counter value when the request was issued.
type SuggestionRequest struct {
	Query string
	Epoch uint64
}

// SuggestionResult is the resolution of one request.
// Err is informational only: a failed lookup still resolves, with no
// suggestions, and is never shown to the user.
type SuggestionResult struct {
	Query       string
	Epoch       uint64
	Suggestions []string
	Err         error
}

// SuggestionTransport fetches remote search completions.
// Suggest always returns a result tagged with the request epoch; it never
// panics or blocks past its own timeouts.
type SuggestionTransport interface {
	Suggest(ctx context.Context, req SuggestionRequest) SuggestionResult
}
