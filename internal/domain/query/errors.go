package query

import "errors"

// Suggestion transport failures. None of them reaches the user.
var (
	// ErrCancelled means a newer request superseded this one.
	ErrCancelled = errors.New("suggestion request cancelled")
	// ErrNetworkFailure covers transport errors and non-2xx statuses.
	ErrNetworkFailure = errors.New("suggestion request failed")
	// ErrTimeout means the fallback callback never fired in time.
	ErrTimeout = errors.New("suggestion callback timed out")
	// ErrMalformedResponse means the payload was not [query, [suggestions...]].
	ErrMalformedResponse = errors.New("malformed suggestion response")
)
