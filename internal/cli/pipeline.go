package cli

import (
	"hotnews/internal/ai"
	"hotnews/internal/app"
	"hotnews/internal/config"
	"hotnews/internal/newsimage"
	"hotnews/internal/source"
)

// buildPipeline assembles the production pipeline from config.
func buildPipeline(cfg config.Config) *app.Pipeline {
	client := source.NewClient(source.ClientConfig{
		BaseURL: cfg.SerpAPI.BaseURL,
		APIKey:  cfg.SerpAPI.APIKey,
		Timeout: cfg.SerpAPI.Timeout,
	})
	sources := []source.Source{
		source.NewBaidu(client, source.Options{}),
		source.NewGoogle(client, source.Options{}),
		source.NewYahoo(client, source.Options{}),
	}

	generator := ai.NewDeepSeek(ai.Config{
		APIKey:  cfg.DeepSeek.APIKey,
		BaseURL: cfg.DeepSeek.BaseURL,
		Model:   cfg.DeepSeek.Model,
	})

	images := newsimage.New(newsimage.Config{
		Timeout:      cfg.Images.Timeout,
		MaxRedirects: cfg.Images.MaxRedirects,
		Concurrency:  cfg.Images.Concurrency,
		UserAgent:    cfg.Images.UserAgent,
	})

	return app.New(sources, generator, images)
}
