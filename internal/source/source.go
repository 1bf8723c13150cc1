// Package source provides hot-topic adapters backed by SerpAPI. Every
// adapter degrades to a hand-curated fallback list, so a dead upstream never
// empties the feed.
package source

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"hotnews/internal/model"
)

// Platform identifies a backing news provider.
type Platform string

const (
	PlatformBaidu  Platform = "baidu"
	PlatformGoogle Platform = "google"
	PlatformYahoo  Platform = "yahoo"
)

// ParsePlatform maps a request key to a backing platform. The legacy weibo
// and zhihu keys are served by google and yahoo respectively; anything
// unrecognized falls back to baidu.
func ParsePlatform(key string) Platform {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "google", "weibo":
		return PlatformGoogle
	case "yahoo", "zhihu":
		return PlatformYahoo
	default:
		return PlatformBaidu
	}
}

// UsesArticleContent reports whether generated content for this platform
// quotes the real article instead of a language-model rendition.
func (p Platform) UsesArticleContent() bool {
	return p != PlatformBaidu
}

// Source produces ranked hot topics for one platform. FetchTopics never
// fails: when the upstream API errors or returns nothing, the adapter serves
// its fallback list instead.
type Source interface {
	Platform() Platform
	FetchTopics(ctx context.Context) []model.Topic
}

// Options carries the injectable parts shared by all adapters. Zero values
// mean the real clock and an unseeded random source.
type Options struct {
	RandInt func(n int) int
	Now     func() time.Time
}

func (o Options) fill() Options {
	if o.RandInt == nil {
		o.RandInt = rand.Intn
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
