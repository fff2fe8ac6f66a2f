package ai

import "context"

// Chat roles shared by all providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn of a model exchange.
type Message struct {
	Role    string
	Content string
}

// Client is the low-level text-generation transport. Implementations are
// stateless per call; all conversation memory stays with the caller.
type Client interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}
