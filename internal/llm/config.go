package llm

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider and LEVELUP_LLM_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects a provider and carries the settings of every provider,
// so switching LEVELUP_LLM_PROVIDER needs no other change.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Mock       MockConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL points the client at an OpenAI-compatible endpoint.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// MockConfig configures the offline mock provider.
type MockConfig struct {
	// ResponseFile holds the JSON document served for every request.
	// Empty means the mock answers every request with an error.
	ResponseFile string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the configuration used when nothing is overridden.
// Gemini is the default provider.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 60 * time.Second,
	}
}

// credentials points at the key and model fields of one provider.
type credentials struct {
	name   string
	apiKey *string
	model  *string
	// discoverEnv is the vendor's own key variable, probed when no
	// LEVELUP_LLM_PROVIDER is set.
	discoverEnv string
}

// providers lists the keyed providers in discovery order.
func (c *Config) providers() []credentials {
	return []credentials{
		{ProviderGemini, &c.Gemini.APIKey, &c.Gemini.Model, "GEMINI_API_KEY"},
		{ProviderOpenAI, &c.OpenAI.APIKey, &c.OpenAI.Model, "OPENAI_API_KEY"},
		{ProviderAnthropic, &c.Anthropic.APIKey, &c.Anthropic.Model, "ANTHROPIC_API_KEY"},
		{ProviderOpenRouter, &c.OpenRouter.APIKey, &c.OpenRouter.Model, "OPENROUTER_API_KEY"},
	}
}

func envName(provider, field string) string {
	return "LEVELUP_" + strings.ToUpper(provider) + "_" + field
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv overlays the LEVELUP_* environment variables on
// DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "LEVELUP_LLM_PROVIDER")

	for _, p := range cfg.providers() {
		setFromEnv(p.apiKey, envName(p.name, "API_KEY"))
		setFromEnv(p.model, envName(p.name, "MODEL"))
	}
	setFromEnv(&cfg.OpenAI.BaseURL, "LEVELUP_OPENAI_BASE_URL")
	setFromEnv(&cfg.OpenRouter.BaseURL, "LEVELUP_OPENROUTER_BASE_URL")
	setFromEnv(&cfg.Mock.ResponseFile, "LEVELUP_MOCK_RESPONSE")

	if d, err := time.ParseDuration(os.Getenv("LEVELUP_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// ResolveConfig uses the LEVELUP_* configuration when LEVELUP_LLM_PROVIDER
// is set and falls back to DiscoverConfig otherwise.
func ResolveConfig() (Config, error) {
	if os.Getenv("LEVELUP_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		return cfg, cfg.Validate()
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg, nil
	}

	var (
		vars []string
		cfg  = DefaultConfig()
	)
	for _, p := range cfg.providers() {
		vars = append(vars, p.discoverEnv)
	}
	return Config{}, fmt.Errorf("no LLM provider configured: set LEVELUP_LLM_PROVIDER or one of %s", strings.Join(vars, ", "))
}

// DiscoverConfig picks the first provider whose vendor key variable is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, p := range cfg.providers() {
		if k := os.Getenv(p.discoverEnv); k != "" {
			cfg.Provider = p.name
			*p.apiKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider is known and has its API key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	for _, p := range c.providers() {
		if p.name != c.Provider {
			continue
		}
		if *p.apiKey == "" {
			return fmt.Errorf("%s is required for the %s provider", envName(p.name, "API_KEY"), p.name)
		}
		return nil
	}
	if c.Provider == "" {
		return errors.New("no LLM provider selected")
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
