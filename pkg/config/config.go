package config

import (
	"fmt"
	"time"

	"article-index/pkg/httpclient"
	"article-index/pkg/sites"
)

const (
	// DefaultTargetURL is the news index page that gets scraped
	DefaultTargetURL = "https://www.theverge.com/"

	// DefaultLinkPrefix is prepended to the relative article links when reporting
	DefaultLinkPrefix = "https://www.theverge.com"

	// DefaultContentSelector selects every link inside the content region
	DefaultContentSelector = sites.VergeContentSelector

	// DefaultCommentMarker marks "show comments" links, which are never articles
	DefaultCommentMarker = "showComments"
)

// DefaultCutoff is the earliest publication date that is reported
var DefaultCutoff = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config holds everything the scraper needs to run.
// There is no file or environment loading; callers build a Config value
// directly, usually starting from Default().
type Config struct {
	TargetURL       string
	LinkPrefix      string
	ContentSelector string
	CommentMarker   string
	Cutoff          time.Time
	ClientType      httpclient.ClientType
}

// Default returns the fixed production configuration
func Default() Config {
	return Config{
		TargetURL:       DefaultTargetURL,
		LinkPrefix:      DefaultLinkPrefix,
		ContentSelector: DefaultContentSelector,
		CommentMarker:   DefaultCommentMarker,
		Cutoff:          DefaultCutoff,
		ClientType:      httpclient.BrowserClient,
	}
}

// Validate checks that the config can drive a scrape
func (c Config) Validate() error {
	if c.TargetURL == "" {
		return fmt.Errorf("target URL is required")
	}
	if c.ContentSelector == "" {
		return fmt.Errorf("content selector is required")
	}
	if c.Cutoff.IsZero() {
		return fmt.Errorf("cutoff date is required")
	}
	return nil
}
