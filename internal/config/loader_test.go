package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
interview:
  retry_threshold: 3
  ai_timeout_seconds: 15
  session_max_age_minutes: 60
fallback_questions:
  - "Describe a challenging project you've worked on."
  - "How do you approach debugging?"
  - "How do you stay updated with new technologies?"
filler_answers:
  - "maybe later"
exit_phrases:
  - "bye"
  - "quit"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interview.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.RetryThreshold() != 3 {
		t.Fatalf("unexpected retry threshold: %d", cfg.RetryThreshold())
	}
	if cfg.AITimeout().Seconds() != 15 {
		t.Fatalf("unexpected timeout: %v", cfg.AITimeout())
	}
	if len(cfg.FallbackQuestions) != 3 {
		t.Fatalf("unexpected fallback questions: %v", cfg.FallbackQuestions)
	}
	if len(cfg.FillerAnswers) != 1 || cfg.FillerAnswers[0] != "maybe later" {
		t.Fatalf("unexpected filler answers: %v", cfg.FillerAnswers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	bad := []string{
		`
interview:
  retry_threshold: 0
  ai_timeout_seconds: 15
  session_max_age_minutes: 60
fallback_questions: ["a", "b", "c"]
exit_phrases: ["bye"]
`,
		`
interview:
  retry_threshold: 3
  ai_timeout_seconds: 15
  session_max_age_minutes: 60
fallback_questions: ["a", "b"]
exit_phrases: ["bye"]
`,
		`
interview:
  retry_threshold: 3
  ai_timeout_seconds: 15
  session_max_age_minutes: 60
fallback_questions: ["a", "b", "c"]
exit_phrases: []
`,
	}

	for i, content := range bad {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := validateConfig(Default()); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}
