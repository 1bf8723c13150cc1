package source

import (
	"context"
	"log/slog"
	"net/url"

	"hotnews/internal/metrics"
	"hotnews/internal/model"
)

const baiduResultLimit = 15

// BaiduSource serves the baidu hot-search board via the SerpAPI baidu_news
// engine.
type BaiduSource struct {
	client *Client
	opts   Options
}

func NewBaidu(client *Client, opts Options) *BaiduSource {
	return &BaiduSource{client: client, opts: opts.fill()}
}

func (s *BaiduSource) Platform() Platform { return PlatformBaidu }

func (s *BaiduSource) FetchTopics(ctx context.Context) []model.Topic {
	params := url.Values{}
	params.Set("engine", "baidu_news")
	params.Set("q", "热点")
	params.Set("device", "desktop")
	params.Set("rtt", "1")

	resp, err := s.client.Search(ctx, params)
	if err != nil {
		slog.Warn("baidu fetch failed, serving fallback", "error", err)
		metrics.SourceFetches.WithLabelValues(string(PlatformBaidu), "fallback").Inc()
		return baiduFallback(s.opts.Now())
	}

	topics := s.format(resp)
	if len(topics) == 0 {
		slog.Warn("baidu response empty, serving fallback")
		metrics.SourceFetches.WithLabelValues(string(PlatformBaidu), "fallback").Inc()
		return baiduFallback(s.opts.Now())
	}
	metrics.SourceFetches.WithLabelValues(string(PlatformBaidu), "ok").Inc()
	return topics
}

// format merges organic results with pinned top stories. Pinned stories go
// first and the combined list is capped at baiduResultLimit.
func (s *BaiduSource) format(resp *searchResponse) []model.Topic {
	now := s.opts.Now()

	var topics []model.Topic
	for i, item := range resp.OrganicResults {
		title := item.Title
		if title == "" {
			title = item.Headline
		}
		topics = append(topics, model.Topic{
			ID:      i + 1,
			Title:   orDefault(title, "未知标题"),
			Hot:     baiduHot(i, false, s.opts.RandInt),
			Source:  orDefault(item.Source, "百度新闻"),
			Link:    item.Link,
			Snippet: item.Snippet,
			Date:    parseNewsDate(item.Date, now, s.opts.RandInt),
		})
	}

	if len(resp.TopStories) > 0 {
		pinned := make([]model.Topic, 0, len(resp.TopStories))
		for i, item := range resp.TopStories {
			pinned = append(pinned, model.Topic{
				ID:      len(topics) + i + 1,
				Title:   orDefault(item.Title, "未知标题"),
				Hot:     baiduHot(i, true, s.opts.RandInt),
				Source:  orDefault(item.Source, "百度新闻"),
				Link:    item.Link,
				Snippet: item.Snippet,
				Date:    parseNewsDate(item.Date, now, s.opts.RandInt),
				IsTop:   true,
			})
		}
		topics = append(pinned, topics...)
		if len(topics) > baiduResultLimit {
			topics = topics[:baiduResultLimit]
		}
	}
	return topics
}
