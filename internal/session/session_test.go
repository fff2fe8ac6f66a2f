package session

import (
	"errors"
	"testing"
	"time"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/ai"
)

func TestNewSession(t *testing.T) {
	s := New()

	if s.ID == "" {
		t.Fatal("expected a session ID")
	}
	if s.Stage != StageGreeting {
		t.Fatalf("expected greeting stage, got %s", s.Stage)
	}
	if s.Done() {
		t.Fatal("fresh session must not be done")
	}
}

func TestSetFieldNeverOverwrites(t *testing.T) {
	s := New()

	if !s.SetField(FieldEmail, "john@example.com") {
		t.Fatal("first write should succeed")
	}
	if s.SetField(FieldEmail, "other@example.com") {
		t.Fatal("second write should be rejected")
	}

	v, ok := s.Field(FieldEmail)
	if !ok || v != "john@example.com" {
		t.Fatalf("unexpected field value: %v", v)
	}
}

func TestPushQuestionsOnlyOnce(t *testing.T) {
	s := New()

	if !s.PushQuestions([]string{"q1", "q2", "q3"}) {
		t.Fatal("first push should succeed")
	}
	if s.PushQuestions([]string{"other"}) {
		t.Fatal("second push should be rejected")
	}
	if s.QuestionTotal != 3 || len(s.Pending) != 3 {
		t.Fatalf("unexpected queue state: total=%d pending=%d", s.QuestionTotal, len(s.Pending))
	}
}

func TestRecordAnswerConsumesQueue(t *testing.T) {
	s := New()
	s.PushQuestions([]string{"q1", "q2", "q3"})

	s.RecordAnswer("a1", ai.SentimentPositive)
	s.RecordAnswer("a2", ai.SentimentNeutral)

	if len(s.Pending) != 1 {
		t.Fatalf("expected 1 pending question, got %d", len(s.Pending))
	}
	if len(s.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(s.Answers))
	}
	if s.Answers[0].Question != "q1" || s.Answers[0].Sentiment != ai.SentimentPositive {
		t.Fatalf("unexpected first answer: %+v", s.Answers[0])
	}

	q, ok := s.CurrentQuestion()
	if !ok || q != "q3" {
		t.Fatalf("unexpected current question: %q", q)
	}

	dist := s.SentimentDistribution()
	if dist[ai.SentimentPositive] != 1 || dist[ai.SentimentNeutral] != 1 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New()
	s.SetField(FieldFullName, "John Doe")
	s.PushQuestions([]string{"q1", "q2", "q3"})
	s.RecordAnswer("a1", ai.SentimentNeutral)

	profile := s.ProfileSnapshot()
	profile[FieldFullName] = "mutated"
	if v, _ := s.Field(FieldFullName); v != "John Doe" {
		t.Fatal("profile snapshot leaked internal state")
	}

	answers := s.AnswersSnapshot()
	answers[0].Answer = "mutated"
	if s.Answers[0].Answer != "a1" {
		t.Fatal("answers snapshot leaked internal state")
	}
}

func TestStore(t *testing.T) {
	st := NewStore()

	if _, err := st.Get(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	created := st.Create(1)
	got, err := st.Get(1)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.ID != created.ID {
		t.Fatal("store returned a different session")
	}

	// a new interview replaces the old session for the same chat
	replaced := st.Create(1)
	if replaced.ID == created.ID {
		t.Fatal("Create should replace the session")
	}

	st.Delete(1)
	if st.Count() != 0 {
		t.Fatalf("expected empty store, got %d", st.Count())
	}
}

func TestStoreCleanupInactive(t *testing.T) {
	st := NewStore()
	stale := st.Create(1)
	stale.LastActivity = time.Now().Add(-2 * time.Hour)
	st.Create(2)

	if removed := st.CleanupInactive(time.Hour); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if st.Count() != 1 {
		t.Fatalf("expected 1 live session, got %d", st.Count())
	}
}
