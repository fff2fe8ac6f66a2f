package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the interview policy from a YAML file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &config, nil
}

// validateConfig checks that the policy keeps the interview well-formed.
func validateConfig(config *Config) error {
	if config.Interview.RetryThreshold <= 0 {
		return fmt.Errorf("retry_threshold must be greater than 0")
	}

	if config.Interview.AITimeoutSeconds <= 0 {
		return fmt.Errorf("ai_timeout_seconds must be greater than 0")
	}

	if config.Interview.SessionMaxAgeMinutes <= 0 {
		return fmt.Errorf("session_max_age_minutes must be greater than 0")
	}

	// The fallback set stands in for the generated questions, so it must
	// satisfy the same bounds.
	if len(config.FallbackQuestions) < 3 || len(config.FallbackQuestions) > 5 {
		return fmt.Errorf("fallback_questions must contain 3 to 5 questions, got %d",
			len(config.FallbackQuestions))
	}

	for i, question := range config.FallbackQuestions {
		if question == "" {
			return fmt.Errorf("fallback question %d is empty", i+1)
		}
	}

	if len(config.ExitPhrases) == 0 {
		return fmt.Errorf("exit_phrases must not be empty")
	}

	return nil
}
