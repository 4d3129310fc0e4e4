package articles

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"article-index/pkg/domain"
	"article-index/pkg/urls"
)

// ParseLinkDate reads year, month and day from the first three path segments of href.
// href must start with a slash (/2024/12/9/title); anything else lands the wrong
// segments in the date fields and normally fails to parse.
// Returns false for missing or non-numeric segments and for impossible dates like 2023/2/30.
func ParseLinkDate(href string) (time.Time, bool) {
	parts := strings.Split(href, "/")
	if len(parts) < 4 {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[3])
	if err != nil {
		return time.Time{}, false
	}

	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject instead
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, false
	}

	return date, true
}

// Stats counts why links were discarded during one Normalize call
type Stats struct {
	Input        int
	Rejected     int // duplicate or comment link
	EmptyTitle   int
	InvalidDate  int
	BeforeCutoff int
	Kept         int
}

// Normalizer turns raw links into dated, deduplicated article entries
type Normalizer struct {
	commentMarker string
	cutoff        time.Time
}

// NewNormalizer creates a normalizer that drops links containing commentMarker
// and links dated strictly before cutoff
func NewNormalizer(commentMarker string, cutoff time.Time) *Normalizer {
	return &Normalizer{
		commentMarker: commentMarker,
		cutoff:        cutoff,
	}
}

// Normalize filters links in input order. Each call has its own dedup set.
// Per-link problems are never errors; an error only comes from a filter failing.
func (n *Normalizer) Normalize(ctx context.Context, links []urls.URL) ([]domain.ArticleEntry, Stats, error) {
	stats := Stats{Input: len(links)}
	filters := []urls.UrlFilter{
		urls.NewExcludeSubstringFilter(n.commentMarker),
		urls.NewSeenFilter(),
	}

	entries := make([]domain.ArticleEntry, 0, len(links))
	for _, link := range links {
		keep, err := urls.KeepAll(ctx, link.Location, filters...)
		if err != nil {
			return nil, stats, fmt.Errorf("filter error for URL %s: %w", link.Location, err)
		}
		if !keep {
			stats.Rejected++
			continue
		}

		title := strings.TrimSpace(link.Title)
		if title == "" {
			stats.EmptyTitle++
			continue
		}

		date, ok := ParseLinkDate(link.Location)
		if !ok {
			stats.InvalidDate++
			continue
		}

		if date.Before(n.cutoff) {
			stats.BeforeCutoff++
			continue
		}

		entries = append(entries, domain.ArticleEntry{
			Title: title,
			Link:  link.Location,
			Date:  date,
		})
	}

	stats.Kept = len(entries)
	return entries, stats, nil
}
