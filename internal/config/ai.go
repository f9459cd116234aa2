package config

import (
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default models per provider
const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4o"
)

// LLMConfig holds all LLM-related configuration
type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	APIKey   string        `mapstructure:"api_key" json:"-"` // Never serialize
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// IsEnabled returns true if an LLM provider is configured
func (c *LLMConfig) IsEnabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ModelName returns the configured model or the provider default
func (c *LLMConfig) ModelName() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	if c.Provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}
