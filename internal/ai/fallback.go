package ai

import (
	"fmt"
	"strings"
)

// Template sentences assembled into a paragraph when the model is
// unreachable. Each takes the topic title once.
var fallbackSentences = []string{
	`关于"%s"的最新消息引发了广泛关注。`,
	`据权威媒体报道，"%s"已成为公众热议的焦点话题。`,
	`专家分析认为，"%s"反映了当前社会的重要趋势和变化。`,
	`"%s"背后有着深刻的社会意义，值得我们深入思考。`,
	`从最新数据来看，"%s"已经影响了众多人的日常生活和工作。`,
	`对于"%s"，不同群体表现出了不同的态度和观点。`,
	`未来，"%s"可能会带来更多深远的影响和变化。`,
	`值得注意的是，"%s"并非偶然现象，而是有其发展脉络的。`,
	`多方观点认为，"%s"折射出我们这个时代的特点和挑战。`,
	`随着事态发展，"%s"将持续引发讨论和关注。`,
}

// FallbackText assembles 4 to 6 randomly picked template sentences. Repeats
// are allowed, matching the loose feel of generated filler.
func FallbackText(topic string, randInt func(n int) int) string {
	count := randInt(3) + 4
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		tpl := fallbackSentences[randInt(len(fallbackSentences))]
		parts = append(parts, fmt.Sprintf(tpl, topic))
	}
	return strings.Join(parts, " ")
}
