package newsimage

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		pageURL   string
		want      string
		wantOK    bool
	}{
		{
			name:      "absolute unchanged",
			candidate: "https://cdn.example.com/a.jpg",
			pageURL:   "https://news.example.com/story",
			want:      "https://cdn.example.com/a.jpg",
			wantOK:    true,
		},
		{
			name:      "absolute http unchanged",
			candidate: "http://cdn.example.com/a.jpg?x=1",
			pageURL:   "https://news.example.com/story",
			want:      "http://cdn.example.com/a.jpg?x=1",
			wantOK:    true,
		},
		{
			name:      "protocol relative inherits scheme",
			candidate: "//a.com/b.png",
			pageURL:   "https://news.example.com/story",
			want:      "https://a.com/b.png",
			wantOK:    true,
		},
		{
			name:      "root relative inherits scheme and host",
			candidate: "/img/photo.jpg",
			pageURL:   "https://news.example.com/section/story.html",
			want:      "https://news.example.com/img/photo.jpg",
			wantOK:    true,
		},
		{
			name:      "relative resolves against page directory",
			candidate: "photo.jpg",
			pageURL:   "https://news.example.com/section/story.html",
			want:      "https://news.example.com/section/photo.jpg",
			wantOK:    true,
		},
		{
			name:      "relative with trailing-slash page path",
			candidate: "photo.jpg",
			pageURL:   "https://news.example.com/section/",
			want:      "https://news.example.com/section/photo.jpg",
			wantOK:    true,
		},
		{
			name:      "relative against empty page path",
			candidate: "photo.jpg",
			pageURL:   "https://news.example.com",
			want:      "https://news.example.com/photo.jpg",
			wantOK:    true,
		},
		{
			name:      "empty candidate fails",
			candidate: "",
			pageURL:   "https://news.example.com",
			wantOK:    false,
		},
		{
			name:      "malformed page URL fails",
			candidate: "/a.jpg",
			pageURL:   "not a url",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeURL(tt.candidate, tt.pageURL)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsPlausibleImageURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/a.jpg", true},
		{"https://example.com/a.PNG?w=600", true},
		{"https://example.com/images/12345", true},
		{"https://example.com/photo/abc", true},
		{"https://d1234.cloudfront.net/abc", true},
		{"https://pbs.twimg.com/media/xyz", true},
		{"https://example.com/article/12345", false},
		{"", false},
		{"/relative/a.jpg", false},
	}
	for _, tt := range tests {
		if got := IsPlausibleImageURL(tt.url); got != tt.want {
			t.Errorf("IsPlausibleImageURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
