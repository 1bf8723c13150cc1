package source

import (
	"strings"
	"testing"
	"time"
)

func fixedRand(v int) func(int) int {
	return func(int) int { return v }
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Hello   World  ", "Hello World"},
		{"| Breaking News -", "Breaking News"},
		{"- - Title", "Title"},
		{"Plain", "Plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanTitle(tt.in); got != tt.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnhanceSnippet(t *testing.T) {
	long := strings.Repeat("word ", 12)

	tests := []struct {
		name, in, want string
	}{
		{"empty", "", "No description available."},
		{"short", "Too short", "Too short Read the full story for more details."},
		{"long without period", strings.TrimSpace(long), strings.TrimSpace(long) + "..."},
		{"long with period", strings.TrimSpace(long) + ".", strings.TrimSpace(long) + "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enhanceSnippet(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseNewsDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	randInt := fixedRand(0)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"5 minutes ago", now.Add(-5 * time.Minute)},
		{"2 hours ago", now.Add(-2 * time.Hour)},
		{"3 days ago", now.AddDate(0, 0, -3)},
		{"1 week ago", now.AddDate(0, 0, -7)},
		{"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"Jun 1, 2024", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := parseNewsDate(tt.in, now, randInt); !got.Equal(tt.want) {
			t.Errorf("parseNewsDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNewsDate_UnparseableIsRecent(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	got := parseNewsDate("not a date at all", now, fixedRand(3))
	if !got.Before(now) || now.Sub(got) > 25*time.Hour {
		t.Errorf("got %v, want a timestamp within the last day", got)
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.cnn.com/world/story", "cnn.com"},
		{"https://news.bbc.co.uk/a", "news.bbc.co.uk"},
		{"not a url", "Unknown"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		if got := extractDomain(tt.in); got != tt.want {
			t.Errorf("extractDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFallbackThumbnail(t *testing.T) {
	randInt := fixedRand(7)

	if got := fallbackThumbnail("CNN", "news", randInt); got != "https://picsum.photos/seed/cnn7/200/150" {
		t.Errorf("known source: got %q", got)
	}
	if got := fallbackThumbnail("Some Blog", "news", randInt); got != "https://picsum.photos/seed/news7/200/150" {
		t.Errorf("unknown source: got %q", got)
	}
}

func TestRankedHotPreservesOrder(t *testing.T) {
	// Even maximum jitter on a lower rank cannot beat zero jitter above it.
	high := rankedHot(3, fixedRand(0))
	low := rankedHot(4, fixedRand(99999))
	if low >= high {
		t.Errorf("rank 4 scored %d, rank 3 scored %d; order not preserved", low, high)
	}
}

func TestBaiduHot(t *testing.T) {
	randInt := fixedRand(0)

	if got := baiduHot(0, true, randInt); got != 8000000 {
		t.Errorf("pinned rank 0: got %d", got)
	}
	if got := baiduHot(2, false, randInt); got != 6000000 {
		t.Errorf("rank 2: got %d", got)
	}
}
