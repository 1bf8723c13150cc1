package newsimage

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Images with explicit dimensions below these are skipped; images without
// explicit dimensions are given the benefit of the doubt.
const (
	minImageWidth  = 200
	minImageHeight = 150
)

// metaSelectors are tried first: social-card metadata is the strongest signal
// a page gives about its representative image.
var metaSelectors = []string{
	`meta[property="og:image"]`,
	`meta[property="og:image:url"]`,
	`meta[name="twitter:image"]`,
	`meta[name="twitter:image:src"]`,
}

// imgSelectors walk from dedicated article/image containers down to any image
// at all. Order matters; the bare img[src] entry is the last resort.
var imgSelectors = []string{
	"article img[src]",
	".article-image img[src]",
	".news-image img[src]",
	".story-image img[src]",
	".featured-image img[src]",
	".hero-image img[src]",
	".main-image img[src]",
	".content img[src]",
	".post-content img[src]",
	"main img[src]",
	"img[src]",
}

var decorativeKeywords = []string{
	"logo", "icon", "avatar", "profile", "thumbnail", "small",
	"tiny", "placeholder", "sprite", "button", "badge",
}

// FindRepresentativeImage walks the ordered strategy list and returns the
// first candidate that normalizes to a plausible absolute image URL. A
// candidate that fails normalization or plausibility sends the search on to
// the next strategy rather than aborting it.
func FindRepresentativeImage(doc *goquery.Document, pageURL string) (string, bool) {
	for _, sel := range metaSelectors {
		if abs, ok := usable(metaContent(doc, sel), pageURL); ok {
			return abs, true
		}
	}
	for _, sel := range imgSelectors {
		if abs, ok := usable(firstUsableImg(doc, sel), pageURL); ok {
			return abs, true
		}
	}
	return "", false
}

func usable(raw, pageURL string) (string, bool) {
	if raw == "" {
		return "", false
	}
	abs, ok := NormalizeURL(raw, pageURL)
	if !ok || !IsPlausibleImageURL(abs) {
		return "", false
	}
	return abs, true
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

// firstUsableImg scans matched img elements in document order and returns the
// src of the first one that is neither decorative nor explicitly undersized.
func firstUsableImg(doc *goquery.Document, selector string) string {
	var src string
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.AttrOr("src", ""))
		if raw == "" {
			return true
		}
		w := attrInt(s, "width")
		h := attrInt(s, "height")
		if w > 0 && h > 0 && (w < minImageWidth || h < minImageHeight) {
			return true
		}
		if isLikelyDecorative(raw) {
			return true
		}
		src = raw
		return false
	})
	return src
}

func attrInt(s *goquery.Selection, name string) int {
	v, ok := s.Attr(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// isLikelyDecorative matches filename/path substrings typical of site chrome
// rather than story imagery.
func isLikelyDecorative(src string) bool {
	lower := strings.ToLower(src)
	if strings.HasSuffix(lower, ".svg") {
		return true
	}
	for _, kw := range decorativeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
