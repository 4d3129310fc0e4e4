package report

import (
	"fmt"
	"io"

	"article-index/pkg/domain"
)

// NoArticlesMessage is printed when a scrape produced nothing
const NoArticlesMessage = "No articles found or an error occurred."

// Write prints each entry as Title/Link/Date lines followed by a blank line.
// linkPrefix turns the relative link into an absolute URL.
func Write(w io.Writer, linkPrefix string, entries []domain.ArticleEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, NoArticlesMessage)
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "Title: %s\nLink: %s%s\nDate: %s\n\n",
			entry.Title, linkPrefix, entry.Link, entry.FormatDate()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}
