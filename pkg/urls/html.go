package urls

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"article-index/pkg/httpclient"
)

var (
	// ErrUnexpectedStatus is matched by every *StatusError
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrNoMatches is returned when the extractor finds no links in the page
	ErrNoMatches = errors.New("no links matched the content selector")
)

// StatusError reports a non-200 response from the index page
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Is makes errors.Is(err, ErrUnexpectedStatus) true
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

var _ URLsFetcher = (*HTMLFetcher)(nil)

// URLExtractor is a function type that extracts URLs from HTML content
type URLExtractor func(html string) ([]URL, error)

// HTMLFetcher handles fetching HTML pages and extracting URLs using a provided extractor
type HTMLFetcher struct {
	client    *httpclient.HTTPClient
	extractor URLExtractor
}

// NewHTMLFetcher creates a new HTML fetcher that presents itself as a browser
func NewHTMLFetcher(extractor URLExtractor) *HTMLFetcher {
	return NewHTMLFetcherWithClient(extractor, httpclient.BrowserClient)
}

// NewHTMLFetcherWithClient creates a new HTML fetcher with a specific client type
func NewHTMLFetcherWithClient(extractor URLExtractor, clientType httpclient.ClientType) *HTMLFetcher {
	return &HTMLFetcher{
		client:    httpclient.NewClient(clientType),
		extractor: extractor,
	}
}

// Fetch implements URLsFetcher - fetches HTML from the given URL and extracts URLs.
// A non-200 response yields a *StatusError and an empty extraction yields ErrNoMatches;
// any other error comes from the transport or the parser.
func (f *HTMLFetcher) Fetch(ctx context.Context, pageURL string) ([]URL, error) {
	html, err := f.FetchHTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return f.Extract(html)
}

// FetchHTML performs a single GET and returns the body of a 200 response
func (f *HTMLFetcher) FetchHTML(ctx context.Context, pageURL string) (string, error) {
	resp, err := f.client.Get(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// Extract runs the configured extractor over an already fetched document
func (f *HTMLFetcher) Extract(html string) ([]URL, error) {
	if f.extractor == nil {
		return nil, fmt.Errorf("extractor function is not set")
	}

	urls, err := f.extractor(html)
	if err != nil {
		return nil, fmt.Errorf("failed to extract URLs: %w", err)
	}

	if len(urls) == 0 {
		return nil, ErrNoMatches
	}

	return urls, nil
}
