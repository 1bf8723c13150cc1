// Package model defines the data shapes shared between the source adapters,
// the generation layer and the HTTP API.
package model

import "time"

// Topic is a single trending news item. JSON field names match what the
// browser UI consumes.
type Topic struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Hot       int       `json:"hot"`
	Source    string    `json:"source"`
	Link      string    `json:"link,omitempty"`
	Snippet   string    `json:"snippet,omitempty"`
	Date      time.Time `json:"date"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	IsTop     bool      `json:"isTop,omitempty"`

	// Populated by batch image extraction; empty until processed.
	ExtractedImage string `json:"extractedImage,omitempty"`
	HasRealImage   bool   `json:"hasRealImage,omitempty"`
}

// GeneratedContent is the text+image pairing shown for one selected topic.
// ImagePrompt is informational metadata only; no image generation happens.
type GeneratedContent struct {
	Text        string `json:"text"`
	ImageURL    string `json:"imageUrl"`
	ImagePrompt string `json:"imagePrompt"`
}
