package articles

import (
	"sort"

	"article-index/pkg/domain"
)

// SortByDateDesc orders entries newest first. Entries with the same date keep their input order.
func SortByDateDesc(entries []domain.ArticleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
