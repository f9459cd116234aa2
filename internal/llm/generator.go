package llm

import (
	"context"
	"errors"
	"fmt"

	"jobquest/internal/config"
)

// ErrDisabled is returned when no provider key is configured
var ErrDisabled = errors.New("llm provider disabled")

// Generator sends a prompt to a model and returns its text reply
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type disabled struct{}

func (disabled) GenerateContent(context.Context, string) (string, error) {
	return "", ErrDisabled
}

// Disabled returns a generator that always fails with ErrDisabled
func Disabled() Generator {
	return disabled{}
}

// New builds the generator for the configured provider. A missing key yields Disabled().
func New(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	if !cfg.IsEnabled() {
		return Disabled(), nil
	}
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.ModelName())
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.APIKey, cfg.ModelName())
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
