package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotnews/internal/model"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]any{
			"id":      "cmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "deepseek-ai/deepseek-r1",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateContent_CleansModelOutput(t *testing.T) {
	raw := "<think>考虑如何组织这篇报道。</think>\n\n这是正文第一段。\n\n\n这是正文第二段。\n\n注：以上内容仅供参考。"
	srv := completionServer(t, raw)

	d := NewDeepSeek(Config{APIKey: "k", BaseURL: srv.URL})
	got := d.GenerateContent(context.Background(), "测试话题", "测试来源")

	want := "这是正文第一段。\n这是正文第二段。"
	if got.Text != want {
		t.Errorf("text = %q, want %q", got.Text, want)
	}
	if !strings.Contains(got.ImagePrompt, "测试话题") {
		t.Errorf("image prompt %q should mention the topic", got.ImagePrompt)
	}
}

func TestGenerateContent_FallbackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDeepSeek(Config{APIKey: "k", BaseURL: srv.URL, RandInt: func(int) int { return 0 }})
	got := d.GenerateContent(context.Background(), "某个话题", "")

	if !strings.Contains(got.Text, "某个话题") {
		t.Errorf("fallback text %q should mention the topic", got.Text)
	}
	if got.ImagePrompt != "新闻图片，关于：某个话题" {
		t.Errorf("image prompt = %q", got.ImagePrompt)
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"think block", "<think>推理</think>\n正文", "正文"},
		{"note tail", "正文。\n\n注：模型生成内容", "正文。"},
		{"blank runs", "一\n\n\n二", "一\n二"},
		{"plain", "正文未变", "正文未变"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponse(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackText_SentenceCount(t *testing.T) {
	calls := 0
	randInt := func(n int) int {
		calls++
		if calls == 1 {
			return 2 // count = 6
		}
		return (calls - 2) % n
	}

	text := FallbackText("话题", randInt)
	if got := strings.Count(text, "。"); got != 6 {
		t.Errorf("got %d sentences, want 6: %q", got, text)
	}
	if !strings.Contains(text, `"话题"`) {
		t.Errorf("text should embed the topic: %q", text)
	}
}

func TestBuildArticleText(t *testing.T) {
	date := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	news := &model.Topic{
		Snippet: "short",
		Source:  "CNN",
		Link:    "https://cnn.com/story",
		Date:    date,
	}

	got := BuildArticleText("Big Story", news)
	for _, want := range []string{
		"Big Story\n\n",
		"short...\n\n",
		"Source: CNN | Published: 2024-06-15T10:00:00Z\n\n",
		"visit the original article",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text missing %q:\n%s", want, got)
		}
	}
}

func TestBuildArticleText_NoLink(t *testing.T) {
	got := BuildArticleText("Topic", &model.Topic{Snippet: "Done already.", Source: "BBC"})
	if !strings.Contains(got, "This story is developing.") {
		t.Errorf("expected developing line:\n%s", got)
	}
	if strings.Contains(got, "Published:") {
		t.Errorf("zero date should omit the published stamp:\n%s", got)
	}
}

func TestBuildArticleText_NilNews(t *testing.T) {
	got := BuildArticleText("Solo Topic", nil)
	if !strings.Contains(got, `"Solo Topic"`) {
		t.Errorf("got %q", got)
	}
}
