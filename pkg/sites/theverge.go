package sites

import (
	"fmt"
	"strings"

	"article-index/pkg/urls"

	"github.com/PuerkitoBio/goquery"
)

// VergeContentSelector matches every link inside the front page content region
const VergeContentSelector = "#content a[href]"

// ExtractVergeURLs extracts links from the theverge.com front page.
// Articles live under the #content element; their hrefs are relative
// paths shaped like /2024/12/9/article-title.
func ExtractVergeURLs(html string) ([]urls.URL, error) {
	return ContentLinkExtractor(VergeContentSelector)(html)
}

// ContentLinkExtractor returns an extractor that yields every element matched by
// selector as a (href, trimmed text) pair, in document order.
// Elements without an href attribute are skipped. Filtering is left to the caller.
func ContentLinkExtractor(selector string) urls.URLExtractor {
	return func(html string) ([]urls.URL, error) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}

		var result []urls.URL
		doc.Find(selector).Each(func(i int, link *goquery.Selection) {
			href, exists := link.Attr("href")
			if !exists {
				return
			}

			result = append(result, urls.URL{
				Location: href,
				Title:    strings.TrimSpace(link.Text()),
			})
		})

		return result, nil
	}
}
