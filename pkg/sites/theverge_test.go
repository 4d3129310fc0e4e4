package sites

import (
	"testing"
)

const vergeFrontPage = `<!DOCTYPE html>
<html>
<head><title>The Verge</title></head>
<body>
	<nav><a href="/2024/1/1/nav-link">Outside content</a></nav>
	<div id="content">
		<h2><a href="/2024/12/9/first-article">
			First Article
		</a></h2>
		<a href="/2024/12/9/first-article#showComments">12 comments</a>
		<a>No href here</a>
		<a href="/about/">About</a>
		<a href="/2023/5/10/some-article"><span>Some</span> <span>Article</span></a>
	</div>
</body>
</html>`

func TestExtractVergeURLs(t *testing.T) {
	got, err := ExtractVergeURLs(vergeFrontPage)
	if err != nil {
		t.Fatalf("ExtractVergeURLs failed: %v", err)
	}

	want := []struct{ href, title string }{
		{"/2024/12/9/first-article", "First Article"},
		{"/2024/12/9/first-article#showComments", "12 comments"},
		{"/about/", "About"},
		{"/2023/5/10/some-article", "Some Article"},
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d links, got %d: %+v", len(want), len(got), got)
	}

	for i, w := range want {
		if got[i].Location != w.href {
			t.Errorf("link %d: expected href %q, got %q", i, w.href, got[i].Location)
		}
		if got[i].Title != w.title {
			t.Errorf("link %d: expected title %q, got %q", i, w.title, got[i].Title)
		}
	}
}

func TestContentLinkExtractor_NoMatches(t *testing.T) {
	extract := ContentLinkExtractor("#content a[href]")

	got, err := extract(`<html><body><div id="main"><a href="/2024/1/1/x">x</a></div></body></html>`)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no links, got %d", len(got))
	}
}

func TestContentLinkExtractor_EmptyText(t *testing.T) {
	extract := ContentLinkExtractor("a[href]")

	got, err := extract(`<a href="/2024/1/1/image-only"><img src="x.png"></a>`)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(got))
	}
	if got[0].Title != "" {
		t.Errorf("Expected empty title, got %q", got[0].Title)
	}
}
