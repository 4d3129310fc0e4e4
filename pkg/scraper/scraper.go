package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"

	"article-index/pkg/articles"
	"article-index/pkg/config"
	"article-index/pkg/domain"
	"article-index/pkg/sites"
	"article-index/pkg/urls"
)

// Status tells why a Result holds the articles it does
type Status int

const (
	// StatusOK means at least one article survived filtering
	StatusOK Status = iota
	// StatusNoArticles means links were found but all of them were filtered out
	StatusNoArticles
	// StatusFetchFailed means the index page answered with a non-200 status
	StatusFetchFailed
	// StatusNoMatches means the content selector matched nothing
	StatusNoMatches
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoArticles:
		return "no articles"
	case StatusFetchFailed:
		return "fetch failed"
	case StatusNoMatches:
		return "no matches"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of one scrape.
// Articles is empty unless Status is StatusOK.
type Result struct {
	Articles   []domain.ArticleEntry
	Status     Status
	StatusCode int // HTTP status when Status is StatusFetchFailed
}

// Scraper runs fetch -> extract -> normalize -> sort over a single index page
type Scraper struct {
	cfg        config.Config
	fetcher    *urls.HTMLFetcher
	normalizer *articles.Normalizer
}

// New creates a scraper for the given config
func New(cfg config.Config) (*Scraper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Scraper{
		cfg:        cfg,
		fetcher:    urls.NewHTMLFetcherWithClient(sites.ContentLinkExtractor(cfg.ContentSelector), cfg.ClientType),
		normalizer: articles.NewNormalizer(cfg.CommentMarker, cfg.Cutoff),
	}, nil
}

// Scrape fetches the configured index page and returns its articles, newest first.
// A non-200 response or an empty selector match is logged and reported through
// Result.Status. Transport and parse failures are returned as errors.
func (s *Scraper) Scrape(ctx context.Context) (*Result, error) {
	html, err := s.fetcher.FetchHTML(ctx, s.cfg.TargetURL)
	if err != nil {
		var statusErr *urls.StatusError
		if errors.As(err, &statusErr) {
			log.Printf("Failed to fetch data. Status code: %d", statusErr.Code)
			return &Result{Status: StatusFetchFailed, StatusCode: statusErr.Code}, nil
		}
		return nil, err
	}

	return s.ScrapeDocument(ctx, html)
}

// ScrapeDocument runs the extract/normalize/sort steps over an already fetched document
func (s *Scraper) ScrapeDocument(ctx context.Context, html string) (*Result, error) {
	links, err := s.fetcher.Extract(html)
	if err != nil {
		if errors.Is(err, urls.ErrNoMatches) {
			log.Printf("No articles matched the selector %q", s.cfg.ContentSelector)
			return &Result{Status: StatusNoMatches}, nil
		}
		return nil, err
	}

	entries, stats, err := s.normalizer.Normalize(ctx, links)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize links: %w", err)
	}
	log.Printf("Kept %d of %d links (duplicate/comment=%d, empty title=%d, no date=%d, before cutoff=%d)",
		stats.Kept, stats.Input, stats.Rejected, stats.EmptyTitle, stats.InvalidDate, stats.BeforeCutoff)

	if len(entries) == 0 {
		return &Result{Status: StatusNoArticles}, nil
	}

	articles.SortByDateDesc(entries)
	return &Result{Articles: entries, Status: StatusOK}, nil
}
