package source

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// cleanTitle collapses runs of whitespace and strips the separator characters
// providers leave at the edges of feed titles.
func cleanTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	return strings.Trim(title, " -|")
}

// enhanceSnippet pads very short snippets with a continuation phrase and makes
// sure longer ones end in terminal punctuation.
func enhanceSnippet(snippet string) string {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return "No description available."
	}
	if len(snippet) < 50 {
		return snippet + " Read the full story for more details."
	}
	if !strings.HasSuffix(snippet, ".") {
		return snippet + "..."
	}
	return snippet
}

var relativeDateRe = regexp.MustCompile(`(?i)(\d+)\s*(minute|hour|day|week)s?\s*ago`)

var absoluteDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// parseNewsDate turns provider date strings into timestamps. Relative forms
// like "3 hours ago" are subtracted from now; anything unparseable becomes a
// random timestamp within the last day so feeds still sort sensibly.
func parseNewsDate(raw string, now time.Time, randInt func(n int) int) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return randomRecentDate(now, randInt)
	}
	if m := relativeDateRe.FindStringSubmatch(raw); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch strings.ToLower(m[2]) {
		case "minute":
			return now.Add(-time.Duration(n) * time.Minute)
		case "hour":
			return now.Add(-time.Duration(n) * time.Hour)
		case "day":
			return now.AddDate(0, 0, -n)
		case "week":
			return now.AddDate(0, 0, -7*n)
		}
	}
	for _, layout := range absoluteDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return randomRecentDate(now, randInt)
}

func randomRecentDate(now time.Time, randInt func(n int) int) time.Time {
	hours := randInt(24) + 1
	minutes := randInt(60)
	return now.Add(-time.Duration(hours)*time.Hour - time.Duration(minutes)*time.Minute)
}

// extractDomain returns the hostname of a URL without its www prefix, or
// "Unknown" when the URL does not parse.
func extractDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// Sources whose name doubles as a recognizable thumbnail seed.
var knownThumbnailSources = map[string]bool{
	"CNN":              true,
	"BBC":              true,
	"Reuters":          true,
	"AP News":          true,
	"ABC News":         true,
	"NBC News":         true,
	"Fox News":         true,
	"NPR":              true,
	"Yahoo News":       true,
	"Associated Press": true,
	"USA Today":        true,
	"CNBC":             true,
}

// fallbackThumbnail synthesizes a small placeholder thumbnail seeded by the
// source name when it is a known outlet, otherwise by defaultSeed.
func fallbackThumbnail(sourceName, defaultSeed string, randInt func(n int) int) string {
	seed := defaultSeed
	if knownThumbnailSources[sourceName] {
		seed = strings.ReplaceAll(strings.ToLower(sourceName), " ", "")
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s%d/200/150", seed, randInt(100))
}

// rankedHot synthesizes a popularity score that decreases with rank. The
// jitter stays below the per-rank step so ranks never swap.
func rankedHot(index int, randInt func(n int) int) int {
	return 5000000 - index*200000 + randInt(100000)
}

// baiduHot mirrors the baidu board's larger scores; pinned stories start from
// a higher base.
func baiduHot(index int, isTop bool, randInt func(n int) int) int {
	base := 7000000
	if isTop {
		base = 8000000
	}
	return base - index*500000 + randInt(100000)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
