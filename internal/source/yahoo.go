package source

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"hotnews/internal/metrics"
	"hotnews/internal/model"
)

// YahooSource serves Yahoo news via the SerpAPI yahoo engine.
type YahooSource struct {
	client *Client
	opts   Options
}

func NewYahoo(client *Client, opts Options) *YahooSource {
	return &YahooSource{client: client, opts: opts.fill()}
}

func (s *YahooSource) Platform() Platform { return PlatformYahoo }

func (s *YahooSource) FetchTopics(ctx context.Context) []model.Topic {
	params := url.Values{}
	params.Set("engine", "yahoo")
	params.Set("type", "news")
	params.Set("num", "20")
	params.Set("gl", "us")
	params.Set("hl", "en")
	params.Set("qdr", "d")

	resp, err := s.client.Search(ctx, params)
	if err != nil {
		slog.Warn("yahoo fetch failed, serving fallback", "error", err)
		metrics.SourceFetches.WithLabelValues(string(PlatformYahoo), "fallback").Inc()
		return yahooFallback(s.opts.Now(), s.opts.RandInt)
	}

	topics := s.format(resp)
	if len(topics) == 0 {
		slog.Warn("yahoo response empty, serving fallback")
		metrics.SourceFetches.WithLabelValues(string(PlatformYahoo), "fallback").Inc()
		return yahooFallback(s.opts.Now(), s.opts.RandInt)
	}
	metrics.SourceFetches.WithLabelValues(string(PlatformYahoo), "ok").Inc()
	return topics
}

func (s *YahooSource) format(resp *searchResponse) []model.Topic {
	if len(resp.NewsResults) > 0 {
		return s.formatNews(resp.NewsResults)
	}
	return s.formatOrganic(resp.OrganicResults)
}

func (s *YahooSource) formatNews(items []searchResult) []model.Topic {
	now := s.opts.Now()
	topics := make([]model.Topic, 0, newsResultLimit)
	for i, item := range limitResults(items, newsResultLimit) {
		thumb := item.Thumbnail
		if thumb == "" {
			thumb = fallbackThumbnail(item.Source, "yahoo", s.opts.RandInt)
		}
		date := item.Date
		if date == "" {
			date = item.Time
		}
		topics = append(topics, model.Topic{
			ID:        i + 1,
			Title:     cleanTitle(item.Title),
			Hot:       rankedHot(i, s.opts.RandInt),
			Source:    orDefault(item.Source, "Yahoo News"),
			Link:      cleanYahooLink(item.Link),
			Snippet:   enhanceSnippet(orDefault(item.Snippet, item.Title)),
			Date:      parseNewsDate(date, now, s.opts.RandInt),
			Thumbnail: thumb,
		})
	}
	return topics
}

func (s *YahooSource) formatOrganic(items []searchResult) []model.Topic {
	now := s.opts.Now()
	topics := make([]model.Topic, 0, newsResultLimit)
	for i, item := range limitResults(items, newsResultLimit) {
		domain := extractDomain(item.Link)
		topics = append(topics, model.Topic{
			ID:        i + 1,
			Title:     cleanTitle(item.Title),
			Hot:       rankedHot(i, s.opts.RandInt),
			Source:    domain,
			Link:      cleanYahooLink(item.Link),
			Snippet:   enhanceSnippet(item.Snippet),
			Date:      randomRecentDate(now, s.opts.RandInt),
			Thumbnail: fallbackThumbnail(domain, "yahoo", s.opts.RandInt),
		})
	}
	return topics
}

// cleanYahooLink unwraps Yahoo redirect URLs, whose real target rides in the
// RU query parameter, and completes scheme-relative and host-relative links.
func cleanYahooLink(link string) string {
	if link == "" {
		return ""
	}
	if strings.Contains(link, "yahoo.com") && strings.Contains(link, "RU=") {
		if _, query, ok := strings.Cut(link, "?"); ok {
			if vals, err := url.ParseQuery(query); err == nil {
				if real := vals.Get("RU"); real != "" {
					return real
				}
			}
		}
	}
	if strings.HasPrefix(link, "//") {
		return "https:" + link
	}
	if strings.HasPrefix(link, "/") {
		return "https://news.yahoo.com" + link
	}
	return link
}
