package source

import (
	"context"
	"log/slog"
	"net/url"

	"hotnews/internal/metrics"
	"hotnews/internal/model"
)

const newsResultLimit = 20

// GoogleSource serves Google Top Stories via the SerpAPI google engine in
// news mode.
type GoogleSource struct {
	client *Client
	opts   Options
}

func NewGoogle(client *Client, opts Options) *GoogleSource {
	return &GoogleSource{client: client, opts: opts.fill()}
}

func (s *GoogleSource) Platform() Platform { return PlatformGoogle }

func (s *GoogleSource) FetchTopics(ctx context.Context) []model.Topic {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("tbm", "nws")
	params.Set("q", `breaking news OR trending OR "top stories"`)
	params.Set("num", "20")
	params.Set("gl", "us")
	params.Set("hl", "en")
	params.Set("tbs", "qdr:d")
	params.Set("sort", "date")

	resp, err := s.client.Search(ctx, params)
	if err != nil {
		slog.Warn("google fetch failed, serving fallback", "error", err)
		metrics.SourceFetches.WithLabelValues(string(PlatformGoogle), "fallback").Inc()
		return googleFallback(s.opts.Now())
	}

	topics := s.format(resp)
	if len(topics) == 0 {
		slog.Warn("google response empty, serving fallback")
		metrics.SourceFetches.WithLabelValues(string(PlatformGoogle), "fallback").Inc()
		return googleFallback(s.opts.Now())
	}
	metrics.SourceFetches.WithLabelValues(string(PlatformGoogle), "ok").Inc()
	return topics
}

func (s *GoogleSource) format(resp *searchResponse) []model.Topic {
	if len(resp.NewsResults) > 0 {
		return s.formatNews(resp.NewsResults)
	}
	return s.formatOrganic(resp.OrganicResults)
}

func (s *GoogleSource) formatNews(items []searchResult) []model.Topic {
	now := s.opts.Now()
	topics := make([]model.Topic, 0, newsResultLimit)
	for i, item := range limitResults(items, newsResultLimit) {
		thumb := item.Thumbnail
		if thumb == "" {
			thumb = fallbackThumbnail(item.Source, "news", s.opts.RandInt)
		}
		topics = append(topics, model.Topic{
			ID:        i + 1,
			Title:     cleanTitle(item.Title),
			Hot:       rankedHot(i, s.opts.RandInt),
			Source:    orDefault(item.Source, "Google News"),
			Link:      item.Link,
			Snippet:   enhanceSnippet(orDefault(item.Snippet, item.Title)),
			Date:      parseNewsDate(item.Date, now, s.opts.RandInt),
			Thumbnail: thumb,
		})
	}
	return topics
}

// formatOrganic is the degraded path for responses without a news bucket;
// organic hits carry no thumbnail and their source is the link's domain.
func (s *GoogleSource) formatOrganic(items []searchResult) []model.Topic {
	now := s.opts.Now()
	topics := make([]model.Topic, 0, newsResultLimit)
	for i, item := range limitResults(items, newsResultLimit) {
		topics = append(topics, model.Topic{
			ID:      i + 1,
			Title:   cleanTitle(item.Title),
			Hot:     rankedHot(i, s.opts.RandInt),
			Source:  extractDomain(item.Link),
			Link:    item.Link,
			Snippet: item.Snippet,
			Date:    now,
		})
	}
	return topics
}
