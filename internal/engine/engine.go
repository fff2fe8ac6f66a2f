package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/ai"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/config"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/logger"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/metrics"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/session"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/validator"
)

// Reply is what the UI collaborator renders after each turn.
type Reply struct {
	Message string
	Stage   session.Stage
	Done    bool
}

// stageFunc handles one candidate utterance for one stage. It mutates
// the session and returns the outbound message.
type stageFunc func(ctx context.Context, s *session.Session, text string) string

// Engine drives the interview state machine. It owns no session state of
// its own, so a single engine serves any number of independent sessions.
type Engine struct {
	capability ai.Capability
	cfg        *config.Config
	metrics    *metrics.Metrics
	log        *zap.Logger

	blacklist []string
	stages    map[session.Stage]stageFunc
}

// New wires the engine. cfg, m and log may be nil; sensible defaults are
// used so tests can pass only a capability stub.
func New(capability ai.Capability, cfg *config.Config, m *metrics.Metrics, log *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if m == nil {
		m = metrics.New()
	}
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		capability: capability,
		cfg:        cfg,
		metrics:    m,
		log:        log,
		blacklist:  append(append([]string{}, validator.DefaultBlacklist...), cfg.FillerAnswers...),
	}

	// The greeting reply is the name answer, so both stages share a handler.
	e.stages = map[session.Stage]stageFunc{
		session.StageGreeting:          e.collectName,
		session.StageCollectName:       e.collectName,
		session.StageCollectEmail:      e.collectEmail,
		session.StageCollectPhone:      e.collectPhone,
		session.StageCollectExperience: e.collectExperience,
		session.StageCollectPosition:   e.collectPosition,
		session.StageCollectLocation:   e.collectLocation,
		session.StageCollectTechStack:  e.collectTechStack,
		session.StageQuestionLoop:      e.answerQuestion,
		session.StageSummary:           e.acknowledgeSummary,
	}

	return e
}

// StartSession creates a session and returns it with the greeting.
func (e *Engine) StartSession() (*session.Session, string) {
	s := session.New()
	return s, e.Greet(s)
}

// Greet opens the interview for an externally created session.
func (e *Engine) Greet(s *session.Session) string {
	s.AppendAssistant(msgGreeting)
	e.metrics.IncrementSessionsStarted()
	e.log.Info("session started", zap.String("session_id", s.ID))
	return msgGreeting
}

// HandleInput advances the interview by one turn. The exit-intent and
// fallback detectors run before any stage logic.
func (e *Engine) HandleInput(ctx context.Context, s *session.Session, raw string) Reply {
	if s.Done() {
		return Reply{Message: msgSessionOver, Stage: s.Stage, Done: true}
	}

	text := validator.Sanitize(raw)
	s.AppendCandidate(text)

	var msg string
	switch {
	case e.isExitIntent(text):
		s.Stage = session.StageEnd
		e.metrics.IncrementSessionsAbandoned()
		e.log.Info("exit intent", zap.String("session_id", s.ID))
		msg = endingMessage(s)

	case e.needsRedirect(s, text):
		msg = e.rejectInput(s, msgRedirect, reprompt[s.Stage])

	default:
		handler, ok := e.stages[s.Stage]
		if !ok {
			// transient stages are never a resting position
			e.log.Error("no handler for stage", zap.String("stage", string(s.Stage)))
			msg = msgSessionOver
		} else {
			msg = handler(ctx, s, text)
		}
	}

	s.AppendAssistant(msg)
	e.log.Debug("turn handled",
		zap.String("session_id", s.ID),
		zap.String("stage", string(s.Stage)),
		zap.String("input", logger.Truncate(text, 80)))

	return Reply{Message: msg, Stage: s.Stage, Done: s.Done()}
}

// isExitIntent matches deliberate stop phrases ("bye", "quit", ...).
func (e *Engine) isExitIntent(text string) bool {
	lower := strings.ToLower(text)
	words := strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) })

	for _, phrase := range e.cfg.ExitPhrases {
		if strings.Contains(phrase, " ") {
			if strings.Contains(lower, phrase) {
				return true
			}
			continue
		}
		for _, word := range words {
			if word == phrase {
				return true
			}
		}
	}
	return false
}

// needsRedirect implements the global fallback detector. Free-text stages
// get the full informative-content check; structured stages only reject
// emptiness and filler, their validators handle the rest. The summary
// acknowledgement accepts anything.
func (e *Engine) needsRedirect(s *session.Session, text string) bool {
	switch s.Stage {
	case session.StageCollectPosition, session.StageCollectLocation,
		session.StageCollectTechStack, session.StageQuestionLoop:
		return !validator.IsMeaningful(text, e.blacklist)
	case session.StageSummary:
		return false
	default:
		return strings.TrimSpace(text) == "" || validator.IsBlacklisted(text, e.blacklist)
	}
}

// rejectInput counts a failed attempt and composes the re-prompt,
// escalating once the retry threshold is crossed. The stage never
// force-advances: the candidate supplies a valid value or exits.
func (e *Engine) rejectInput(s *session.Session, prefix, restate string) string {
	s.Retries++
	if s.Retries >= e.cfg.RetryThreshold() {
		e.log.Warn("retry threshold crossed",
			zap.String("session_id", s.ID),
			zap.String("stage", string(s.Stage)),
			zap.Int("retries", s.Retries))
		return msgEscalation + restate
	}
	return prefix + restate
}

// advance stores a validated field value and moves to the next stage.
func (e *Engine) advance(s *session.Session, field string, value any, next session.Stage) {
	s.SetField(field, value)
	s.Retries = 0
	s.Stage = next
}

func (e *Engine) collectName(ctx context.Context, s *session.Session, text string) string {
	name, err := e.capability.ExtractName(ctx, text)
	e.metrics.IncrementAICall(err != nil)
	if err != nil && !errors.Is(err, ai.ErrNoName) {
		e.log.Warn("name extraction error", zap.String("session_id", s.ID), zap.Error(err))
	}

	if err == nil {
		if _, shapeErr := validator.ValidateName(name); shapeErr != nil {
			// the model returned something that is not a name
			err = ai.ErrNoName
		}
	}

	if err != nil {
		fallback, shapeErr := validator.ValidateName(text)
		if shapeErr != nil {
			return e.rejectInput(s, "", msgAskName)
		}
		if words := strings.Fields(fallback); len(words) > 2 {
			fallback = strings.Join(words[:2], " ")
		}
		name = fallback
	}

	e.advance(s, session.FieldFullName, name, session.StageCollectEmail)
	return fmt.Sprintf(msgAskEmail, name)
}

func (e *Engine) collectEmail(_ context.Context, s *session.Session, text string) string {
	email, err := validator.ValidateEmail(text)
	if err != nil {
		return e.rejectInput(s, "", msgEmailRetry)
	}

	e.advance(s, session.FieldEmail, email, session.StageCollectPhone)
	return msgAskPhone
}

func (e *Engine) collectPhone(_ context.Context, s *session.Session, text string) string {
	phone, err := validator.ValidatePhone(text)
	if err != nil {
		return e.rejectInput(s, "", msgPhoneRetry)
	}

	e.advance(s, session.FieldPhone, phone, session.StageCollectExperience)
	return msgAskExperience
}

func (e *Engine) collectExperience(_ context.Context, s *session.Session, text string) string {
	years, err := validator.ExtractExperience(text)
	if err != nil {
		return e.rejectInput(s, "", msgExperienceRetry)
	}

	e.advance(s, session.FieldExperience, years, session.StageCollectPosition)
	return msgAskPosition
}

func (e *Engine) collectPosition(_ context.Context, s *session.Session, text string) string {
	e.advance(s, session.FieldPosition, strings.TrimSpace(text), session.StageCollectLocation)
	return msgAskLocation
}

func (e *Engine) collectLocation(_ context.Context, s *session.Session, text string) string {
	e.advance(s, session.FieldLocation, strings.TrimSpace(text), session.StageCollectTechStack)
	return msgAskTechStack
}

// collectTechStack stores the stack and immediately runs the
// non-interactive question-generation transition.
func (e *Engine) collectTechStack(ctx context.Context, s *session.Session, text string) string {
	e.advance(s, session.FieldTechStack, strings.TrimSpace(text), session.StageGenerateQuestions)
	return e.prepareQuestions(ctx, s)
}

// prepareQuestions fills the question queue, falling back to the fixed
// set when the adapter cannot deliver. The interview never blocks here.
func (e *Engine) prepareQuestions(ctx context.Context, s *session.Session) string {
	techStack, _ := s.Field(session.FieldTechStack)
	years := 0.0
	if v, ok := s.Field(session.FieldExperience); ok {
		if f, isFloat := v.(float64); isFloat {
			years = f
		}
	}

	questions, err := e.capability.GenerateQuestions(ctx, fmt.Sprintf("%v", techStack), years)
	e.metrics.IncrementAICall(err != nil)
	if err != nil || len(questions) < ai.MinQuestions {
		e.log.Warn("question generation failed, using fallback set",
			zap.String("session_id", s.ID), zap.Error(err))
		questions = append([]string(nil), e.cfg.FallbackQuestions...)
	}
	if len(questions) > ai.MaxQuestions {
		questions = questions[:ai.MaxQuestions]
	}

	s.PushQuestions(questions)
	s.Stage = session.StageQuestionLoop

	first, _ := s.CurrentQuestion()
	return fmt.Sprintf(msgQuestionsIntro, s.QuestionTotal, s.QuestionTotal, first)
}

func (e *Engine) answerQuestion(ctx context.Context, s *session.Session, text string) string {
	sentiment := e.capability.ClassifySentiment(ctx, text)
	e.metrics.IncrementAICall(false)

	s.RecordAnswer(text, sentiment)
	s.Retries = 0
	e.metrics.IncrementAnswersCollected()

	if next, ok := s.CurrentQuestion(); ok {
		answered := s.QuestionTotal - len(s.Pending)
		return fmt.Sprintf(msgNextQuestion, answered+1, s.QuestionTotal, next)
	}

	s.Stage = session.StageSummary
	return renderSummary(s)
}

func (e *Engine) acknowledgeSummary(_ context.Context, s *session.Session, _ string) string {
	s.Stage = session.StageEnd
	e.metrics.IncrementSessionsCompleted()
	e.log.Info("session completed", zap.String("session_id", s.ID))
	return endingMessage(s)
}
