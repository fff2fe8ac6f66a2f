package config

import "time"

// Config is the interview policy loaded from YAML. It carries the knobs
// that tune the conversation flow without touching engine code.
type Config struct {
	Interview         InterviewConfig `yaml:"interview"`
	FallbackQuestions []string        `yaml:"fallback_questions"`
	FillerAnswers     []string        `yaml:"filler_answers"`
	ExitPhrases       []string        `yaml:"exit_phrases"`
}

// InterviewConfig contains general interview settings.
type InterviewConfig struct {
	RetryThreshold       int `yaml:"retry_threshold"`
	AITimeoutSeconds     int `yaml:"ai_timeout_seconds"`
	SessionMaxAgeMinutes int `yaml:"session_max_age_minutes"`
}

// RetryThreshold returns how many consecutive invalid inputs trigger the
// escalation message.
func (c *Config) RetryThreshold() int {
	return c.Interview.RetryThreshold
}

// AITimeout returns the per-call timeout for the AI adapter.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.Interview.AITimeoutSeconds) * time.Second
}

// SessionMaxAge returns how long an inactive session is kept.
func (c *Config) SessionMaxAge() time.Duration {
	return time.Duration(c.Interview.SessionMaxAgeMinutes) * time.Minute
}

// Default returns the built-in interview policy, used when no YAML file
// is provided.
func Default() *Config {
	return &Config{
		Interview: InterviewConfig{
			RetryThreshold:       3,
			AITimeoutSeconds:     15,
			SessionMaxAgeMinutes: 60,
		},
		FallbackQuestions: []string{
			"Describe a challenging project you've worked on.",
			"How do you approach debugging?",
			"How do you stay updated with new technologies?",
		},
		ExitPhrases: []string{"bye", "exit", "quit", "end", "stop"},
	}
}
