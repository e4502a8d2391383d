package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"quizforge/internal/config"
	"quizforge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrNotConfigured is returned by Complete when no API key is configured.
// Startup tolerates a missing key; only actual completion attempts fail.
var ErrNotConfigured = errors.New("groq API key is not configured")

// availableModels is the fixed allow-list of hosted models. Requests for
// anything else fall back to the default.
var availableModels = map[string]string{
	"llama-3.1-8b-instant":    "llama-3.1-8b-instant",
	"llama-3.1-70b-versatile": "llama-3.1-70b-versatile",
	"llama3-70b-8192":         "llama3-70b-8192",
	"mixtral-8x7b-32768":      "mixtral-8x7b-32768",
	"gemma-7b-it":             "gemma-7b-it",
	"gemma2-9b-it":            "gemma2-9b-it",
}

// GroqClient implements domain.CompletionClient against Groq's
// OpenAI-compatible API using the langchaingo openai client.
type GroqClient struct {
	llm *openai.LLM
	cfg config.GroqConfig
}

// NewGroqClient creates a GroqClient. A missing API key is not an error here;
// the client reports Configured() == false and completion calls fail until a
// key is provided.
func NewGroqClient(cfg config.GroqConfig) (*GroqClient, error) {
	client := &GroqClient{cfg: cfg}
	if cfg.APIKey == "" {
		return client, nil
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	llmClient, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.DefaultModel),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	client.llm = llmClient
	return client, nil
}

// Configured implements domain.CompletionClient.
func (c *GroqClient) Configured() bool {
	return c.llm != nil
}

// DefaultModel implements domain.CompletionClient.
func (c *GroqClient) DefaultModel() string {
	return c.cfg.DefaultModel
}

// DefaultTemperature implements domain.CompletionClient.
func (c *GroqClient) DefaultTemperature() float64 {
	return c.cfg.DefaultTemperature
}

// Models implements domain.CompletionClient.
func (c *GroqClient) Models() map[string]string {
	models := make(map[string]string, len(availableModels))
	for k, v := range availableModels {
		models[k] = v
	}
	return models
}

// ResolveModel implements domain.CompletionClient.
func (c *GroqClient) ResolveModel(requested string) string {
	if requested != "" {
		if _, ok := availableModels[requested]; ok {
			return requested
		}
	}
	return c.cfg.DefaultModel
}

// Complete implements domain.CompletionClient.
func (c *GroqClient) Complete(ctx context.Context, req domain.CompletionRequest) (*domain.CompletionResult, error) {
	if c.llm == nil {
		return nil, ErrNotConfigured
	}

	model := c.ResolveModel(req.Model)
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.cfg.DefaultTemperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}

	content := make([]llms.MessageContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		content = append(content, llms.TextParts(chatMessageType(msg.Role), msg.Content))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.llm.GenerateContent(ctx, content,
		llms.WithModel(model),
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no response generated")
	}

	choice := resp.Choices[0]
	return &domain.CompletionResult{
		Content:      choice.Content,
		Model:        model,
		FinishReason: choice.StopReason,
		Usage:        usageFromGenerationInfo(choice.GenerationInfo),
	}, nil
}

func chatMessageType(role domain.ChatRole) llms.ChatMessageType {
	switch role {
	case domain.RoleSystem:
		return llms.ChatMessageTypeSystem
	case domain.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

func usageFromGenerationInfo(info map[string]any) *domain.TokenUsage {
	if info == nil {
		return nil
	}
	usage := &domain.TokenUsage{
		PromptTokens:     intFromInfo(info, "PromptTokens"),
		CompletionTokens: intFromInfo(info, "CompletionTokens"),
		TotalTokens:      intFromInfo(info, "TotalTokens"),
	}
	if usage.TotalTokens == 0 && usage.PromptTokens == 0 && usage.CompletionTokens == 0 {
		return nil
	}
	return usage
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
