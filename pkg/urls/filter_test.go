package urls

import (
	"context"
	"errors"
	"testing"
)

func TestSeenFilter_FirstOccurrenceWins(t *testing.T) {
	ctx := context.Background()
	f := NewSeenFilter()

	tests := []struct {
		url  string
		keep bool
	}{
		{"/2024/1/1/a", true},
		{"/2024/1/1/b", true},
		{"/2024/1/1/a", false},
		{"/2024/1/1/b", false},
		{"/2024/1/1/c", true},
	}

	for i, tt := range tests {
		keep, err := f.ShouldKeep(ctx, tt.url)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if keep != tt.keep {
			t.Errorf("step %d (%s): expected keep=%v, got %v", i, tt.url, tt.keep, keep)
		}
	}

	if f.Len() != 3 {
		t.Errorf("Expected 3 recorded URLs, got %d", f.Len())
	}
}

func TestExcludeSubstringFilter(t *testing.T) {
	ctx := context.Background()
	f := NewExcludeSubstringFilter("showComments")

	tests := []struct {
		url  string
		keep bool
	}{
		{"/2023/5/10/some-article", true},
		{"/2023/5/10/some-article#showComments", false},
		{"/showComments", false},
		{"/2023/5/10/showcomments", true},
	}

	for _, tt := range tests {
		keep, _ := f.ShouldKeep(ctx, tt.url)
		if keep != tt.keep {
			t.Errorf("%s: expected keep=%v, got %v", tt.url, tt.keep, keep)
		}
	}
}

func TestExcludeSubstringFilter_EmptyMarker(t *testing.T) {
	f := NewExcludeSubstringFilter("")

	keep, err := f.ShouldKeep(context.Background(), "/anything")
	if err != nil || !keep {
		t.Errorf("Expected empty marker to keep everything, got keep=%v err=%v", keep, err)
	}
}

type errFilter struct{ err error }

func (f errFilter) ShouldKeep(ctx context.Context, url string) (bool, error) {
	return false, f.err
}

func TestKeepAll_ShortCircuits(t *testing.T) {
	ctx := context.Background()
	seen := NewSeenFilter()

	// Rejected by the marker filter, so the seen filter must never record it
	keep, err := KeepAll(ctx, "/2024/1/1/a#showComments", NewExcludeSubstringFilter("showComments"), seen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keep {
		t.Error("Expected comment link to be rejected")
	}
	if seen.Len() != 0 {
		t.Errorf("Expected seen filter to be untouched, got %d entries", seen.Len())
	}
}

func TestKeepAll_PropagatesError(t *testing.T) {
	boom := errors.New("boom")

	_, err := KeepAll(context.Background(), "/x", errFilter{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Expected filter error, got %v", err)
	}
}
