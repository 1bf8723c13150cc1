package newsimage

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const pageURL = "https://news.example.com/world/story.html"

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse test document: %v", err)
	}
	return doc
}

func TestFindRepresentativeImage_OpenGraphWins(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="https://cdn.example.com/og.jpg">
	</head><body>
		<article><img src="https://cdn.example.com/body.jpg" width="800" height="600"></article>
	</body></html>`

	got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != "https://cdn.example.com/og.jpg" {
		t.Errorf("got %q, want the og:image value", got)
	}
}

func TestFindRepresentativeImage_TwitterCardAfterOpenGraph(t *testing.T) {
	html := `<html><head>
		<meta name="twitter:image" content="//cdn.example.com/card.png">
	</head><body></body></html>`

	got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != "https://cdn.example.com/card.png" {
		t.Errorf("got %q, want normalized twitter:image", got)
	}
}

func TestFindRepresentativeImage_ArticleImage(t *testing.T) {
	html := `<html><body>
		<article><img src="/img/story-photo.jpg" width="300" height="200"></article>
	</body></html>`

	got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != "https://news.example.com/img/story-photo.jpg" {
		t.Errorf("got %q", got)
	}
}

func TestFindRepresentativeImage_SkipsDecorative(t *testing.T) {
	html := `<html><body>
		<img src="https://cdn.example.com/site-logo.png" width="400" height="400">
	</body></html>`

	if got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL); ok {
		t.Errorf("expected no candidate, got %q", got)
	}
}

func TestFindRepresentativeImage_SkipsUndersized(t *testing.T) {
	html := `<html><body><article>
		<img src="https://cdn.example.com/first.jpg" width="100" height="80">
		<img src="https://cdn.example.com/second.jpg" width="640" height="480">
	</article></body></html>`

	got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != "https://cdn.example.com/second.jpg" {
		t.Errorf("got %q, want the adequately sized image", got)
	}
}

func TestFindRepresentativeImage_MissingDimensionsAccepted(t *testing.T) {
	html := `<html><body><article>
		<img src="https://cdn.example.com/no-dims.jpg">
	</article></body></html>`

	got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL)
	if !ok || got != "https://cdn.example.com/no-dims.jpg" {
		t.Errorf("got %q ok=%v, want no-dims image accepted", got, ok)
	}
}

func TestFindRepresentativeImage_ImplausibleMetaFallsThrough(t *testing.T) {
	// og:image points at something that doesn't look like an image at all;
	// the scorer should move on to the article body.
	html := `<html><head>
		<meta property="og:image" content="https://example.com/article/904812">
	</head><body><article>
		<img src="https://cdn.example.com/real.jpg" width="800" height="500">
	</article></body></html>`

	got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL)
	if !ok || got != "https://cdn.example.com/real.jpg" {
		t.Errorf("got %q ok=%v, want fallthrough to article image", got, ok)
	}
}

func TestFindRepresentativeImage_NoCandidates(t *testing.T) {
	html := `<html><body><p>text only</p></body></html>`
	if got, ok := FindRepresentativeImage(parseDoc(t, html), pageURL); ok {
		t.Errorf("expected no candidate, got %q", got)
	}
}

func TestIsLikelyDecorative(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"https://cdn.example.com/logo.png", true},
		{"https://cdn.example.com/user-avatar.jpg", true},
		{"https://cdn.example.com/sprite-sheet.png", true},
		{"https://cdn.example.com/pic.svg", true},
		{"https://cdn.example.com/story-photo.jpg", false},
	}
	for _, tt := range tests {
		if got := isLikelyDecorative(tt.src); got != tt.want {
			t.Errorf("isLikelyDecorative(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}
