// Package app wires sources, generation and image extraction into the two
// operations the API exposes: listing hot topics and generating topic content.
package app

import (
	"context"
	"errors"
	"strings"

	"hotnews/internal/ai"
	"hotnews/internal/model"
	"hotnews/internal/source"
)

// ErrMissingTopic is the only pipeline failure callers are expected to
// surface; everything else degrades internally.
var ErrMissingTopic = errors.New("missing topic")

// Generator produces article text for a topic.
type Generator interface {
	GenerateContent(ctx context.Context, topic, source string) ai.Content
}

// ImageService resolves representative images and synthesizes placeholders.
type ImageService interface {
	Extract(ctx context.Context, articleURL, fallbackURL string) string
	Placeholder() string
	TopicPlaceholder(title string) string
	ProcessTopics(ctx context.Context, topics []model.Topic) []model.Topic
}

// Pipeline aggregates hot topics and generates per-topic content.
type Pipeline struct {
	sources   map[source.Platform]source.Source
	generator Generator
	images    ImageService
}

func New(sources []source.Source, gen Generator, images ImageService) *Pipeline {
	m := make(map[source.Platform]source.Source, len(sources))
	for _, s := range sources {
		m[s.Platform()] = s
	}
	return &Pipeline{sources: m, generator: gen, images: images}
}

// HotTopics fetches the ranked board for a platform key. Yahoo topics get
// their representative images resolved up front; the other platforms defer
// image work to generation time.
func (p *Pipeline) HotTopics(ctx context.Context, platformKey string) []model.Topic {
	platform := source.ParsePlatform(platformKey)
	src, ok := p.sources[platform]
	if !ok {
		src = p.sources[source.PlatformBaidu]
	}
	topics := src.FetchTopics(ctx)
	if platform == source.PlatformYahoo {
		topics = p.images.ProcessTopics(ctx, topics)
	}
	return topics
}

// GenerateRequest describes one content-generation call.
type GenerateRequest struct {
	Topic        string
	Source       string
	Platform     string
	OriginalNews *model.Topic
}

// GenerateForTopic produces display content for a topic. Real-article
// platforms quote the story and try to extract its image; baidu topics get a
// model-written article and a random placeholder.
func (p *Pipeline) GenerateForTopic(ctx context.Context, req GenerateRequest) (model.GeneratedContent, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return model.GeneratedContent{}, ErrMissingTopic
	}

	platform := source.ParsePlatform(req.Platform)
	if platform.UsesArticleContent() {
		var imageURL string
		if req.OriginalNews != nil && req.OriginalNews.Link != "" {
			imageURL = p.images.Extract(ctx, req.OriginalNews.Link, p.images.TopicPlaceholder(req.Topic))
		} else {
			imageURL = p.images.TopicPlaceholder(req.Topic)
		}
		return model.GeneratedContent{
			Text:        ai.BuildArticleText(req.Topic, req.OriginalNews),
			ImageURL:    imageURL,
			ImagePrompt: ai.PassthroughImagePrompt(req.Topic),
		}, nil
	}

	content := p.generator.GenerateContent(ctx, req.Topic, req.Source)
	return model.GeneratedContent{
		Text:        content.Text,
		ImageURL:    p.images.Placeholder(),
		ImagePrompt: content.ImagePrompt,
	}, nil
}
