package dto

// ChatMessage is one message in a conversation request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message     string   `json:"message"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"maxTokens,omitempty"`
	SessionID   string   `json:"session_id,omitempty"`
}

// ConversationRequest is the body of POST /chat/conversation.
type ConversationRequest struct {
	Messages     []ChatMessage `json:"messages"`
	Model        string        `json:"model,omitempty"`
	SystemPrompt string        `json:"systemPrompt,omitempty"`
	Temperature  *float64      `json:"temperature,omitempty"`
	MaxTokens    int           `json:"maxTokens,omitempty"`
}

// TokenUsage reports token accounting for a completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the body returned by the chat endpoints.
type ChatResponse struct {
	Response     string      `json:"response"`
	Model        string      `json:"model"`
	Usage        *TokenUsage `json:"usage,omitempty"`
	FinishReason string      `json:"finishReason,omitempty"`
	SessionID    string      `json:"session_id,omitempty"`
}
