package domain

import "time"

// DateLayout is how article dates are rendered
const DateLayout = "2006-01-02"

// ArticleEntry is an article link found on the index page.
// Title is never empty and Date is always a valid calendar date at or after the cutoff;
// entries that don't qualify are dropped rather than stored with placeholder values.
type ArticleEntry struct {
	Title string    // trimmed link text
	Link  string    // relative path, unique within one run
	Date  time.Time // year/month/day taken from the first three path segments, UTC midnight
}

// FormatDate renders the entry date as YYYY-MM-DD
func (a ArticleEntry) FormatDate() string {
	return a.Date.Format(DateLayout)
}
