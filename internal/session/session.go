package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/ai"
)

// Stage is a named position in the interview state machine.
type Stage string

const (
	StageGreeting          Stage = "greeting"
	StageCollectName       Stage = "collect_name"
	StageCollectEmail      Stage = "collect_email"
	StageCollectPhone      Stage = "collect_phone"
	StageCollectExperience Stage = "collect_experience"
	StageCollectPosition   Stage = "collect_position"
	StageCollectLocation   Stage = "collect_location"
	StageCollectTechStack  Stage = "collect_tech_stack"
	StageGenerateQuestions Stage = "generate_questions"
	StageQuestionLoop      Stage = "question_loop"
	StageSummary           Stage = "summary"
	StageEnd               Stage = "end"
)

// Profile field keys.
const (
	FieldFullName   = "full_name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldExperience = "years_experience"
	FieldPosition   = "desired_position"
	FieldLocation   = "location"
	FieldTechStack  = "tech_stack"
)

// Transcript speakers.
const (
	SpeakerCandidate = "candidate"
	SpeakerAssistant = "assistant"
)

// Entry is one transcript line.
type Entry struct {
	Speaker string
	Text    string
}

// Answer is one answered technical question with its sentiment label.
type Answer struct {
	Question  string
	Answer    string
	Sentiment ai.Sentiment
}

// Session is the record of one interview. It lives in memory only and is
// owned by a single engine instance; there are no concurrent callers
// within one session.
type Session struct {
	ID         string
	Stage      Stage
	Transcript []Entry
	Profile    map[string]any
	Pending    []string
	Answers    []Answer

	// Retries counts consecutive invalid inputs for the current stage.
	// Reset on every successful advance.
	Retries int

	// QuestionTotal remembers how many questions were generated, for
	// "question i of N" prompts while Pending shrinks.
	QuestionTotal int

	questionsGenerated bool

	CreatedAt    time.Time
	LastActivity time.Time
}

// New creates a fresh session positioned at the greeting.
func New() *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.NewString(),
		Stage:        StageGreeting,
		Profile:      make(map[string]any),
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Done reports whether the interview reached its terminal stage.
func (s *Session) Done() bool {
	return s.Stage == StageEnd
}

// AppendCandidate records a candidate utterance in the transcript.
func (s *Session) AppendCandidate(text string) {
	s.Transcript = append(s.Transcript, Entry{Speaker: SpeakerCandidate, Text: text})
	s.LastActivity = time.Now()
}

// AppendAssistant records an outbound message in the transcript.
func (s *Session) AppendAssistant(text string) {
	s.Transcript = append(s.Transcript, Entry{Speaker: SpeakerAssistant, Text: text})
}

// SetField stores a validated profile value. A field that is already set
// is never silently overwritten; the method reports whether it wrote.
func (s *Session) SetField(field string, value any) bool {
	if _, exists := s.Profile[field]; exists {
		return false
	}
	s.Profile[field] = value
	return true
}

// Field returns a profile value.
func (s *Session) Field(field string) (any, bool) {
	v, ok := s.Profile[field]
	return v, ok
}

// PushQuestions installs the generated question queue. Only the first
// call takes effect: the queue is populated exactly once per session.
func (s *Session) PushQuestions(questions []string) bool {
	if s.questionsGenerated {
		return false
	}
	s.Pending = append([]string(nil), questions...)
	s.QuestionTotal = len(questions)
	s.questionsGenerated = true
	return true
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (string, bool) {
	if len(s.Pending) == 0 {
		return "", false
	}
	return s.Pending[0], true
}

// RecordAnswer stores the answer to the current question, labels it and
// pops the question off the queue.
func (s *Session) RecordAnswer(answer string, sentiment ai.Sentiment) {
	question, ok := s.CurrentQuestion()
	if !ok {
		return
	}
	s.Answers = append(s.Answers, Answer{
		Question:  question,
		Answer:    answer,
		Sentiment: sentiment,
	})
	s.Pending = s.Pending[1:]
}

// ProfileSnapshot returns a copy of the profile safe to hand off.
func (s *Session) ProfileSnapshot() map[string]any {
	snapshot := make(map[string]any, len(s.Profile))
	for k, v := range s.Profile {
		snapshot[k] = v
	}
	return snapshot
}

// AnswersSnapshot returns a copy of the answered questions.
func (s *Session) AnswersSnapshot() []Answer {
	return append([]Answer(nil), s.Answers...)
}

// SentimentDistribution counts answers per sentiment label.
func (s *Session) SentimentDistribution() map[ai.Sentiment]int {
	distribution := make(map[ai.Sentiment]int)
	for _, a := range s.Answers {
		distribution[a.Sentiment]++
	}
	return distribution
}
