package urls

import (
	"context"
	"strings"
)

// UrlFilter defines the interface for URL filtering
type UrlFilter interface {
	ShouldKeep(ctx context.Context, url string) (bool, error)
}

// SeenFilter drops URLs it has already kept once during this run.
// It is stateful: every kept URL is recorded, so the first occurrence wins.
type SeenFilter struct {
	seen map[string]bool
}

// NewSeenFilter creates an empty dedup filter
func NewSeenFilter() *SeenFilter {
	return &SeenFilter{
		seen: make(map[string]bool),
	}
}

// ShouldKeep returns false if the URL was seen before, otherwise records it
func (f *SeenFilter) ShouldKeep(ctx context.Context, urlStr string) (bool, error) {
	if f.seen[urlStr] {
		return false, nil
	}
	f.seen[urlStr] = true
	return true, nil
}

// Len returns how many distinct URLs have been recorded
func (f *SeenFilter) Len() int {
	return len(f.seen)
}

// ExcludeSubstringFilter filters out URLs containing a marker substring
type ExcludeSubstringFilter struct {
	marker string // e.g. "showComments"
}

// NewExcludeSubstringFilter creates a filter that drops URLs containing marker
func NewExcludeSubstringFilter(marker string) *ExcludeSubstringFilter {
	return &ExcludeSubstringFilter{
		marker: marker,
	}
}

// ShouldKeep returns false if the URL contains the marker.
// An empty marker keeps everything.
func (f *ExcludeSubstringFilter) ShouldKeep(ctx context.Context, urlStr string) (bool, error) {
	if f.marker == "" {
		return true, nil
	}
	return !strings.Contains(urlStr, f.marker), nil
}

// KeepAll reports whether every filter keeps the URL.
// Filters run in order and stop at the first rejection, so stateful filters
// placed later only see URLs the earlier ones accepted.
func KeepAll(ctx context.Context, urlStr string, filters ...UrlFilter) (bool, error) {
	for _, f := range filters {
		keep, err := f.ShouldKeep(ctx, urlStr)
		if err != nil {
			return false, err
		}
		if !keep {
			return false, nil
		}
	}
	return true, nil
}
