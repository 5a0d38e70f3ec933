// Package config builds the immutable startup configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port     string `toml:"port"`
	Provider string `toml:"provider"`

	GeminiBaseURL string `toml:"gemini_base_url"`
	GeminiModel   string `toml:"gemini_model"`
	GeminiAPIKey  string `toml:"gemini_api_key"`

	OpenAIAPIKey  string `toml:"openai_api_key"`
	OpenAIModel   string `toml:"openai_model"`
	OpenAIBaseURL string `toml:"openai_base_url"`

	DatabaseURL   string `toml:"database_url"`
	SignatureName string `toml:"signature_name"`

	HTTPTimeoutSeconds int `toml:"http_timeout_seconds"`
}

func defaults() Config {
	return Config{
		Port:          "8080",
		Provider:      ProviderGemini,
		GeminiBaseURL: "https://generativelanguage.googleapis.com",
		OpenAIModel:   "gpt-4o-mini",
	}
}

// Load applies defaults, then the TOML file at path (if any), then the environment.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	for key, dst := range map[string]*string{
		"PORT":            &cfg.Port,
		"MODEL_PROVIDER":  &cfg.Provider,
		"GEMINI_BASE_URL": &cfg.GeminiBaseURL,
		"GEMINI_MODEL":    &cfg.GeminiModel,
		"GEMINI_API_KEY":  &cfg.GeminiAPIKey,
		"OPENAI_API_KEY":  &cfg.OpenAIAPIKey,
		"OPENAI_MODEL":    &cfg.OpenAIModel,
		"OPENAI_BASE_URL": &cfg.OpenAIBaseURL,
		"DATABASE_URL":    &cfg.DatabaseURL,
		"SIGNATURE_NAME":  &cfg.SignatureName,
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT_SECONDS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("HTTP_TIMEOUT_SECONDS: invalid value %q", v)
		}
		cfg.HTTPTimeoutSeconds = n
	}

	return nil
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set")
		}
		if c.GeminiModel == "" {
			return fmt.Errorf("GEMINI_MODEL is not set")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set")
		}
	default:
		return fmt.Errorf("unknown model provider %q", c.Provider)
	}

	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("http_timeout_seconds must not be negative")
	}
	return nil
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
