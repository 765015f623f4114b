package port

import "context"

// Navigator opens a destination URL outside the start page.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}
