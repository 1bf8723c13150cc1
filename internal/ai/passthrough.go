package ai

import (
	"fmt"
	"strings"
	"time"

	"hotnews/internal/model"
)

// BuildArticleText assembles display text directly from a fetched story:
// title, snippet, attribution, then a pointer to the original article.
func BuildArticleText(topic string, news *model.Topic) string {
	if news == nil {
		return fmt.Sprintf("This is a breaking news story from Google Top Stories: \"%s\". Please visit the original source for complete details.", topic)
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n\n", topic)

	if s := strings.TrimSpace(news.Snippet); s != "" {
		if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
			s += "..."
		}
		fmt.Fprintf(b, "%s\n\n", s)
	}

	if news.Source != "" {
		fmt.Fprintf(b, "Source: %s", news.Source)
		if !news.Date.IsZero() {
			fmt.Fprintf(b, " | Published: %s", news.Date.Format(time.RFC3339))
		}
		b.WriteString("\n\n")
	}

	if news.Link != "" {
		b.WriteString("For the complete story and latest updates, visit the original article at the source website.")
	} else {
		b.WriteString("This story is developing. Check major news sources for the latest updates.")
	}
	return b.String()
}

// PassthroughImagePrompt describes the image that would accompany a quoted
// article.
func PassthroughImagePrompt(topic string) string {
	return "News image about: " + topic
}
