package artoc

import "context"

// Fetcher retrieves raw article HTML from a URL.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
