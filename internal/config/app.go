package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/ai"
)

// AppConfig holds process-level settings read from the environment.
type AppConfig struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`

	AIProvider    string `env:"AI_PROVIDER" envDefault:"gemini"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL"`

	InterviewConfigPath string `env:"INTERVIEW_CONFIG_PATH" envDefault:"config/interview.yaml"`

	LogJSON  bool `env:"LOG_JSON" envDefault:"false"`
	LogDebug bool `env:"LOG_DEBUG" envDefault:"false"`
}

// LoadAppConfig parses the environment into an AppConfig.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// ProviderAPIKey returns the API key for the configured AI provider.
func (c *AppConfig) ProviderAPIKey() string {
	if c.AIProvider == ai.ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// ProviderModel returns the model name for the configured AI provider.
// Empty means the provider default.
func (c *AppConfig) ProviderModel() string {
	if c.AIProvider == ai.ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// ValidateAI checks that the configured provider has credentials.
func (c *AppConfig) ValidateAI() error {
	if c.ProviderAPIKey() == "" {
		return fmt.Errorf("no API key configured for provider %q", c.AIProvider)
	}
	return nil
}
