package factory

import (
	"fmt"
	"time"

	"ai-support-be/internal/config"
	"ai-support-be/pkg/llm"
	"ai-support-be/pkg/llm/gemini"
	"ai-support-be/pkg/llm/ollama"
	"ai-support-be/pkg/llm/openai"
)

// Registry maps the provider names used by AI profiles ("gemini",
// "openai", "ollama") to ready clients. Built once at bootstrap.
type Registry struct {
	providers map[string]llm.LLMProvider
}

func NewRegistry(cfg config.AIConfig) *Registry {
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	return &Registry{
		providers: map[string]llm.LLMProvider{
			"gemini": gemini.NewGeminiProvider(cfg.GeminiAPIKey, "gemini-1.5-flash-latest", timeout),
			"openai": openai.NewOpenAIProvider(cfg.OpenAIAPIKey, "", timeout),
			"ollama": ollama.NewOllamaProvider(cfg.OllamaBaseURL, "llama3", timeout),
		},
	}
}

// NewRegistryFromProviders is for tests and custom wiring.
func NewRegistryFromProviders(providers map[string]llm.LLMProvider) *Registry {
	return &Registry{providers: providers}
}

func (r *Registry) Get(name string) (llm.LLMProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported LLM provider: %s", name)
	}
	return p, nil
}
