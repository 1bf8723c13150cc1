package newsimage

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	imageExtRe  = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|bmp|svg)(\?.*)?$`)
	imagePathRe = regexp.MustCompile(`(?i)/(image|photo|picture|media)`)
	imageCDNRe  = regexp.MustCompile(`\.(cloudfront|amazonaws|googleusercontent|fbcdn|twimg)\.`)
)

// NormalizeURL resolves an image reference found on a page into an absolute
// URL. Relative and protocol-relative references are resolved against
// pageURL; malformed input never raises past this boundary, it just reports
// not-ok.
func NormalizeURL(candidate, pageURL string) (string, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", false
	}

	// Already absolute.
	if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
		if _, err := url.Parse(candidate); err != nil {
			return "", false
		}
		return candidate, true
	}

	base, err := url.Parse(pageURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", false
	}

	// Protocol-relative: inherit the page's scheme.
	if strings.HasPrefix(candidate, "//") {
		return base.Scheme + ":" + candidate, true
	}

	// Root-relative: inherit scheme and host.
	if strings.HasPrefix(candidate, "/") {
		return base.Scheme + "://" + base.Host + candidate, true
	}

	// Relative to the page's directory (path up to the last slash).
	dir := "/"
	if idx := strings.LastIndex(base.Path, "/"); idx >= 0 {
		dir = base.Path[:idx+1]
	}
	return base.Scheme + "://" + base.Host + dir + candidate, true
}

// IsPlausibleImageURL reports whether a URL looks like it points at an actual
// image: a recognized file extension, an image-ish path segment, or a host on
// a known media CDN. Markup is the only evidence available, nothing is
// downloaded here.
func IsPlausibleImageURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return imageExtRe.MatchString(rawURL) ||
		imagePathRe.MatchString(rawURL) ||
		imageCDNRe.MatchString(rawURL)
}
