// Package ai generates display text for hot topics. Model-generation
// platforms go through a DeepSeek endpoint; real-article platforms assemble
// text straight from the fetched story.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"hotnews/internal/metrics"
)

// Content is generated article text plus a prompt describing a matching image.
type Content struct {
	Text        string
	ImagePrompt string
}

// Config contains DeepSeek client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// RandInt drives fallback sentence selection. Defaults to math/rand.
	RandInt func(n int) int
}

// DeepSeek generates topic articles through an OpenAI-compatible DeepSeek
// endpoint. Generation never fails from the caller's view: API errors degrade
// to assembled template text.
type DeepSeek struct {
	client  *openai.Client
	model   string
	randInt func(n int) int
}

func NewDeepSeek(cfg Config) *DeepSeek {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://integrate.api.nvidia.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-ai/deepseek-r1"
	}
	if cfg.RandInt == nil {
		cfg.RandInt = rand.Intn
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	cc.BaseURL = cfg.BaseURL
	return &DeepSeek{
		client:  openai.NewClientWithConfig(cc),
		model:   cfg.Model,
		randInt: cfg.RandInt,
	}
}

// GenerateContent writes a short news article for the topic.
func (d *DeepSeek) GenerateContent(ctx context.Context, topic, source string) Content {
	text, err := d.generate(ctx, topic, source)
	if err != nil || text == "" {
		slog.Warn("deepseek generation failed, using fallback text", "topic", topic, "error", err)
		metrics.Generations.WithLabelValues("fallback").Inc()
		return Content{
			Text:        FallbackText(topic, d.randInt),
			ImagePrompt: "新闻图片，关于：" + topic,
		}
	}
	metrics.Generations.WithLabelValues("model").Inc()
	return Content{Text: text, ImagePrompt: imagePrompt(text, topic)}
}

func (d *DeepSeek) generate(ctx context.Context, topic, source string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 120*time.Second)
		defer cancel()
	}
	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(topic, source)},
		},
		Temperature: 0.8,
		MaxTokens:   1000,
		TopP:        0.95,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return CleanResponse(resp.Choices[0].Message.Content), nil
}

func buildPrompt(topic, source string) string {
	attribution := ""
	if source != "" {
		attribution = fmt.Sprintf("（来源：%s）", source)
	}
	return fmt.Sprintf(`你是一位专业新闻编辑，请根据以下热搜话题"%s"%s撰写一篇简短的新闻内容，要求：
1. 内容要符合事实，客观中立
2. 语言简洁专业，有新闻风格
3. 不要过长，300字左右即可
4. 内容需包含适当的细节和背景信息
5. 只需生成正文内容，无需标题
6. 一定要使用简体中文

新闻正文：`, topic, attribution)
}

var (
	thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>\n*`)
	noteTailRe   = regexp.MustCompile(`(?s)\n*注：.*`)
	blankRunRe   = regexp.MustCompile(`\n{2,}`)
)

// CleanResponse strips reasoning traces and editorial notes the model
// appends around the article body.
func CleanResponse(raw string) string {
	raw = thinkBlockRe.ReplaceAllString(raw, "")
	raw = noteTailRe.ReplaceAllString(raw, "")
	raw = blankRunRe.ReplaceAllString(raw, "\n")
	return strings.TrimSpace(raw)
}

// imagePrompt derives an image description from the topic's leading words and
// the article's opening.
func imagePrompt(text, topic string) string {
	words := strings.Fields(topic)
	if len(words) > 3 {
		words = words[:3]
	}
	opening := []rune(text)
	if len(opening) > 50 {
		opening = opening[:50]
	}
	return fmt.Sprintf("新闻图片，高质量，专业，关于：%s，%s", strings.Join(words, " "), string(opening))
}
