package ai

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/logger"
)

// Sentiment labels a candidate answer's tone. Advisory only.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)

// ErrNoName is the sentinel returned when no name could be identified,
// whether the model said NONE or the call failed. The caller falls back
// to validating the raw text itself.
var ErrNoName = errors.New("no name identified")

// ErrNotEnoughQuestions signals that the model did not produce enough
// usable questions even after the retry.
var ErrNotEnoughQuestions = errors.New("not enough usable questions")

// Question count bounds for a technical round.
const (
	MinQuestions = 3
	MaxQuestions = 5
)

const defaultTimeout = 15 * time.Second

// Capability is the narrow contract the conversation engine depends on.
// A deterministic stub of this interface is all engine tests need.
type Capability interface {
	GenerateQuestions(ctx context.Context, techStack string, years float64) ([]string, error)
	ExtractName(ctx context.Context, freeText string) (string, error)
	ClassifySentiment(ctx context.Context, answer string) Sentiment
}

// Adapter implements Capability on top of a Client. Every operation gets
// a per-call timeout and at most one retry before the caller's fallback
// path takes over.
type Adapter struct {
	client  Client
	timeout time.Duration
	log     *zap.Logger
}

// NewAdapter wraps the client. A zero timeout selects the default.
func NewAdapter(client Client, timeout time.Duration, log *zap.Logger) *Adapter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{client: client, timeout: timeout, log: log}
}

var numberedLinePattern = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s*`)

// GenerateQuestions asks the model for MaxQuestions questions and returns
// between MinQuestions and MaxQuestions distinct, non-empty strings.
func (a *Adapter) GenerateQuestions(ctx context.Context, techStack string, years float64) ([]string, error) {
	messages := buildQuestionsPrompt(techStack, years, MaxQuestions)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		raw, err := a.generate(ctx, messages)
		if err != nil {
			lastErr = err
			a.log.Warn("question generation failed",
				zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		questions := parseQuestionList(raw)
		if len(questions) >= MinQuestions {
			return questions, nil
		}

		lastErr = fmt.Errorf("%w: got %d", ErrNotEnoughQuestions, len(questions))
		a.log.Warn("question generation returned too few items",
			zap.Int("attempt", attempt+1), zap.Int("count", len(questions)))
	}

	return nil, lastErr
}

// ExtractName pulls a full name out of free-form greeting text. Returns
// ErrNoName when the model declines or the call fails.
func (a *Adapter) ExtractName(ctx context.Context, freeText string) (string, error) {
	messages := buildExtractNamePrompt(freeText)

	for attempt := 0; attempt < 2; attempt++ {
		raw, err := a.generate(ctx, messages)
		if err != nil {
			a.log.Warn("name extraction failed",
				zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		name := strings.TrimSpace(raw)
		if idx := strings.IndexByte(name, '\n'); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}
		if name == "" || strings.Contains(strings.ToUpper(name), "NONE") {
			return "", ErrNoName
		}
		if len([]rune(name)) > 100 {
			// a paragraph is not a name
			return "", ErrNoName
		}

		return name, nil
	}

	return "", ErrNoName
}

// ClassifySentiment labels an answer's tone. Never fails: anything the
// model cannot settle resolves to NEUTRAL.
func (a *Adapter) ClassifySentiment(ctx context.Context, answer string) Sentiment {
	messages := buildSentimentPrompt(answer)

	for attempt := 0; attempt < 2; attempt++ {
		raw, err := a.generate(ctx, messages)
		if err != nil {
			a.log.Warn("sentiment classification failed",
				zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		upper := strings.ToUpper(raw)
		switch {
		case strings.Contains(upper, string(SentimentPositive)):
			return SentimentPositive
		case strings.Contains(upper, string(SentimentNegative)):
			return SentimentNegative
		default:
			return SentimentNeutral
		}
	}

	return SentimentNeutral
}

// generate performs one transport call under the adapter timeout.
func (a *Adapter) generate(ctx context.Context, messages []Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.client.Generate(callCtx, messages)
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", errors.New("model returned empty output")
	}

	a.log.Debug("model output", zap.String("output", logger.Truncate(out, 200)))
	return out, nil
}

// parseQuestionList turns "1. ..." numbered output into a distinct,
// bounded question slice.
func parseQuestionList(raw string) []string {
	seen := make(map[string]bool)
	var questions []string

	for _, line := range strings.Split(raw, "\n") {
		question := strings.TrimSpace(numberedLinePattern.ReplaceAllString(line, ""))
		if question == "" || seen[strings.ToLower(question)] {
			continue
		}
		seen[strings.ToLower(question)] = true
		questions = append(questions, question)
		if len(questions) == MaxQuestions {
			break
		}
	}

	return questions
}
