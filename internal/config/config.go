// Package config holds the application configuration, loaded from a YAML
// file via viper with environment-variable overrides for secrets.
package config

import (
	"os"
	"time"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr        string `mapstructure:"addr"`
	CORSEnabled bool   `mapstructure:"cors_enabled"`
}

// SerpAPIConfig controls the search-aggregation API used as the news proxy.
type SerpAPIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DeepSeekConfig controls the hosted text-generation endpoint. The endpoint
// speaks the OpenAI chat-completions protocol with bearer-token auth.
type DeepSeekConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// ImagesConfig controls representative-image extraction from article pages.
type ImagesConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxRedirects int           `mapstructure:"max_redirects"`
	Concurrency  int           `mapstructure:"concurrency"` // parallel extractions per batch
	UserAgent    string        `mapstructure:"user_agent"`
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	SerpAPI  SerpAPIConfig  `mapstructure:"serpapi"`
	DeepSeek DeepSeekConfig `mapstructure:"deepseek"`
	Images   ImagesConfig   `mapstructure:"images"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.SerpAPI.BaseURL == "" {
		c.SerpAPI.BaseURL = "https://serpapi.com/search.json"
	}
	if c.SerpAPI.Timeout <= 0 {
		c.SerpAPI.Timeout = 30 * time.Second
	}
	if c.DeepSeek.BaseURL == "" {
		c.DeepSeek.BaseURL = "https://integrate.api.nvidia.com/v1"
	}
	if c.DeepSeek.Model == "" {
		c.DeepSeek.Model = "deepseek-ai/deepseek-r1"
	}
	if c.Images.Timeout <= 0 {
		c.Images.Timeout = 10 * time.Second
	}
	if c.Images.MaxRedirects <= 0 {
		c.Images.MaxRedirects = 5
	}
	if c.Images.Concurrency <= 0 {
		c.Images.Concurrency = 8
	}
	if c.Images.UserAgent == "" {
		c.Images.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
}

// ApplyEnv overlays secrets from well-known environment variables. Absence of
// a key is not an error; the affected component degrades to its fallback path.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SERPAPI_KEY"); v != "" {
		c.SerpAPI.APIKey = v
	}
	if v := os.Getenv("NVIDIA_DEEPSEEK_KEY"); v != "" {
		c.DeepSeek.APIKey = v
	}
	if v := os.Getenv("DEBUG"); v == "true" {
		c.App.LogLevel = "debug"
	}
}
