package urls

import "context"

// URL is a link pulled out of an index page
type URL struct {
	Location string // href exactly as it appears in the page
	Title    string // visible link text, trimmed
}

// URLsFetcher defines the interface for sources that yield raw links
type URLsFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]URL, error)
}
