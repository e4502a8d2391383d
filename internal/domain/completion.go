package domain

import "context"

// ChatRole tags a message with its speaker.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one role-tagged message sent to the completion service.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// CompletionRequest describes a single completion call. Zero-valued Model,
// Temperature and MaxTokens fall back to the client's configured defaults.
type CompletionRequest struct {
	Messages    []ChatMessage
	Model       string
	Temperature float64
	MaxTokens   int
}

// TokenUsage reports token accounting for a completion, when available.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResult is a single non-streaming completion.
type CompletionResult struct {
	Content      string
	Model        string
	FinishReason string
	Usage        *TokenUsage
}

// CompletionClient is the port to the LLM completion API.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
	// ResolveModel maps a requested model name onto the allow-list, falling
	// back to the default model for unknown names.
	ResolveModel(requested string) string
	// Models returns the allow-listed model identifiers.
	Models() map[string]string
	// DefaultModel returns the model used when none is requested.
	DefaultModel() string
	// DefaultTemperature returns the sampling temperature used when the
	// request leaves it unset.
	DefaultTemperature() float64
	// Configured reports whether an API key is present. Generation attempts
	// without one fail; startup does not.
	Configured() bool
}
