package ai

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// scriptedClient returns queued responses/errors in order.
type scriptedClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedClient) Generate(_ context.Context, _ []Message) (string, error) {
	i := c.calls
	c.calls++
	var resp string
	var err error
	if i < len(c.responses) {
		resp = c.responses[i]
	}
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return resp, err
}

func newTestAdapter(client Client) *Adapter {
	return NewAdapter(client, 0, zap.NewNop())
}

func TestGenerateQuestionsParsesNumberedList(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"1. What is a goroutine?\n2) How does the GC work?\n- Explain interfaces.\n4. What is a channel?",
	}}

	questions, err := newTestAdapter(client).GenerateQuestions(context.Background(), "Go", 3)
	if err != nil {
		t.Fatalf("GenerateQuestions err: %v", err)
	}

	want := []string{
		"What is a goroutine?",
		"How does the GC work?",
		"Explain interfaces.",
		"What is a channel?",
	}
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %d: %v", len(want), len(questions), questions)
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Fatalf("question %d = %q, want %q", i, questions[i], want[i])
		}
	}
}

func TestGenerateQuestionsCapsAtMax(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"1. a1\n2. b2\n3. c3\n4. d4\n5. e5\n6. f6\n7. g7",
	}}

	questions, err := newTestAdapter(client).GenerateQuestions(context.Background(), "Python, Django", 2)
	if err != nil {
		t.Fatalf("GenerateQuestions err: %v", err)
	}
	if len(questions) != MaxQuestions {
		t.Fatalf("expected %d questions, got %d", MaxQuestions, len(questions))
	}
}

func TestGenerateQuestionsRetriesOnce(t *testing.T) {
	client := &scriptedClient{
		responses: []string{"", "1. q one\n2. q two\n3. q three"},
		errs:      []error{errors.New("transient"), nil},
	}

	questions, err := newTestAdapter(client).GenerateQuestions(context.Background(), "Go", 1)
	if err != nil {
		t.Fatalf("GenerateQuestions err: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if client.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", client.calls)
	}
}

func TestGenerateQuestionsFailsAfterRetry(t *testing.T) {
	client := &scriptedClient{errs: []error{errors.New("down"), errors.New("down")}}

	_, err := newTestAdapter(client).GenerateQuestions(context.Background(), "Go", 1)
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if client.calls != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", client.calls)
	}
}

func TestGenerateQuestionsTooFewIsAnError(t *testing.T) {
	client := &scriptedClient{responses: []string{"1. only one", "1. still one"}}

	_, err := newTestAdapter(client).GenerateQuestions(context.Background(), "Go", 1)
	if !errors.Is(err, ErrNotEnoughQuestions) {
		t.Fatalf("expected ErrNotEnoughQuestions, got %v", err)
	}
}

func TestGenerateQuestionsDeduplicates(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"1. same question\n2. same question\n3. other one\n4. third one",
	}}

	questions, err := newTestAdapter(client).GenerateQuestions(context.Background(), "Go", 1)
	if err != nil {
		t.Fatalf("GenerateQuestions err: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 distinct questions, got %d: %v", len(questions), questions)
	}
}

func TestExtractName(t *testing.T) {
	client := &scriptedClient{responses: []string{"John Doe"}}

	name, err := newTestAdapter(client).ExtractName(context.Background(), "hi, I am John Doe")
	if err != nil {
		t.Fatalf("ExtractName err: %v", err)
	}
	if name != "John Doe" {
		t.Fatalf("unexpected name: %q", name)
	}
}

func TestExtractNameSentinel(t *testing.T) {
	client := &scriptedClient{responses: []string{"NONE"}}

	_, err := newTestAdapter(client).ExtractName(context.Background(), "asdf")
	if !errors.Is(err, ErrNoName) {
		t.Fatalf("expected ErrNoName, got %v", err)
	}
}

func TestExtractNameTransportFailureBecomesSentinel(t *testing.T) {
	client := &scriptedClient{errs: []error{errors.New("down"), errors.New("down")}}

	_, err := newTestAdapter(client).ExtractName(context.Background(), "hello")
	if !errors.Is(err, ErrNoName) {
		t.Fatalf("expected ErrNoName, got %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", client.calls)
	}
}

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		response string
		want     Sentiment
	}{
		{"POSITIVE", SentimentPositive},
		{"negative.", SentimentNegative},
		{"Neutral", SentimentNeutral},
		{"something unexpected", SentimentNeutral},
	}

	for _, c := range cases {
		client := &scriptedClient{responses: []string{c.response}}
		got := newTestAdapter(client).ClassifySentiment(context.Background(), "answer")
		if got != c.want {
			t.Fatalf("ClassifySentiment with %q = %s, want %s", c.response, got, c.want)
		}
	}
}

func TestClassifySentimentFailureIsNeutral(t *testing.T) {
	client := &scriptedClient{errs: []error{errors.New("down"), errors.New("down")}}

	got := newTestAdapter(client).ClassifySentiment(context.Background(), "answer")
	if got != SentimentNeutral {
		t.Fatalf("expected NEUTRAL on failure, got %s", got)
	}
}
