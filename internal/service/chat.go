package service

import (
	"context"
	"encoding/json"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"

	"go.uber.org/zap"
)

const chatSystemMessage = "You are a helpful assistant. Provide clear and concise responses."

// ChatService handles free-form completions, with sessions and messages
// persisted so conversations can be resumed.
type ChatService interface {
	Chat(ctx context.Context, req dto.ChatRequest, userID string) (*dto.ChatResponse, error)
	Conversation(ctx context.Context, req dto.ConversationRequest, userID string) (*dto.ChatResponse, error)
}

type chatService struct {
	completion domain.CompletionClient
	chatRepo   repository.ChatRepository
}

// NewChatService creates a ChatService.
func NewChatService(completion domain.CompletionClient, chatRepo repository.ChatRepository) ChatService {
	return &chatService{completion: completion, chatRepo: chatRepo}
}

// Chat answers a single user message. When the request carries a session id
// the prior messages of that session are replayed as history; otherwise a new
// session is created.
func (s *chatService) Chat(ctx context.Context, req dto.ChatRequest, userID string) (*dto.ChatResponse, error) {
	if req.Message == "" {
		return nil, domain.NewInvalidInputError("Message is required")
	}
	if userID == "" {
		userID = AnonymousUserID
	}

	messages := []domain.ChatMessage{{Role: domain.RoleSystem, Content: chatSystemMessage}}

	session, err := s.resolveSession(ctx, req.SessionID, req.Model, chatSystemMessage, userID)
	if err != nil {
		return nil, err
	}
	for _, msg := range session.Messages {
		messages = append(messages, domain.ChatMessage{
			Role:    domain.ChatRole(msg.Role),
			Content: msg.Content,
		})
	}
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: req.Message})

	result, err := s.complete(ctx, messages, req.Model, req.Temperature, req.MaxTokens)
	if err != nil {
		return nil, err
	}

	s.recordExchange(ctx, session.ID, req.Message, result)

	resp := chatResponse(result)
	resp.SessionID = session.ID
	return resp, nil
}

// Conversation answers against a caller-supplied message history. The history
// is persisted as a fresh session together with the reply.
func (s *chatService) Conversation(ctx context.Context, req dto.ConversationRequest, userID string) (*dto.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, domain.NewInvalidInputError("Messages array is required")
	}
	if userID == "" {
		userID = AnonymousUserID
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = chatSystemMessage
	}

	messages := make([]domain.ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: systemPrompt})
	for _, msg := range req.Messages {
		messages = append(messages, domain.ChatMessage{
			Role:    domain.ChatRole(msg.Role),
			Content: msg.Content,
		})
	}

	result, err := s.complete(ctx, messages, req.Model, req.Temperature, req.MaxTokens)
	if err != nil {
		return nil, err
	}

	session := &models.ChatSession{
		ID:           util.NewULID(),
		UserID:       userID,
		Model:        s.completion.ResolveModel(req.Model),
		SystemPrompt: systemPrompt,
	}
	if err := s.chatRepo.CreateSession(ctx, session); err != nil {
		logger.Get().Warn("failed to persist conversation session", zap.Error(err))
	} else {
		records := make([]*models.ChatMessage, 0, len(req.Messages)+1)
		for _, msg := range req.Messages {
			records = append(records, &models.ChatMessage{
				ID:        util.NewULID(),
				SessionID: session.ID,
				Role:      msg.Role,
				Content:   msg.Content,
			})
		}
		records = append(records, assistantRecord(session.ID, result))
		if err := s.chatRepo.AddMessages(ctx, session.ID, records); err != nil {
			logger.Get().Warn("failed to persist conversation messages", zap.Error(err))
		}
	}

	resp := chatResponse(result)
	resp.SessionID = session.ID
	return resp, nil
}

func (s *chatService) complete(ctx context.Context, messages []domain.ChatMessage, model string, temperature *float64, maxTokens int) (*domain.CompletionResult, error) {
	temp := 0.0
	if temperature != nil {
		temp = *temperature
	}
	result, err := s.completion.Complete(ctx, domain.CompletionRequest{
		Messages:    messages,
		Model:       model,
		Temperature: temp,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, domain.NewUpstreamFailureError(err)
	}
	return result, nil
}

// resolveSession loads an existing session or creates a new one. An unknown
// session id degrades to a fresh session rather than erroring.
func (s *chatService) resolveSession(ctx context.Context, sessionID, model, systemPrompt, userID string) (*models.ChatSession, error) {
	if sessionID != "" {
		session, err := s.chatRepo.GetSessionByID(ctx, sessionID)
		if err != nil {
			return nil, domain.NewInternalError("failed to load chat session", err)
		}
		if session != nil {
			return session, nil
		}
	}

	session := &models.ChatSession{
		ID:           util.NewULID(),
		UserID:       userID,
		Model:        s.completion.ResolveModel(model),
		SystemPrompt: systemPrompt,
	}
	if err := s.chatRepo.CreateSession(ctx, session); err != nil {
		logger.Get().Warn("failed to persist chat session", zap.Error(err))
	}
	return session, nil
}

// recordExchange appends the user message and the model's reply to a session.
func (s *chatService) recordExchange(ctx context.Context, sessionID, userMessage string, result *domain.CompletionResult) {
	records := []*models.ChatMessage{
		{
			ID:        util.NewULID(),
			SessionID: sessionID,
			Role:      string(domain.RoleUser),
			Content:   userMessage,
		},
		assistantRecord(sessionID, result),
	}
	if err := s.chatRepo.AddMessages(ctx, sessionID, records); err != nil {
		logger.Get().Warn("failed to persist chat messages",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

func assistantRecord(sessionID string, result *domain.CompletionResult) *models.ChatMessage {
	record := &models.ChatMessage{
		ID:           util.NewULID(),
		SessionID:    sessionID,
		Role:         string(domain.RoleAssistant),
		Content:      result.Content,
		Model:        result.Model,
		FinishReason: result.FinishReason,
	}
	if result.Usage != nil {
		if data, err := json.Marshal(dto.TokenUsage{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		}); err == nil {
			record.Usage = string(data)
		}
	}
	return record
}

func chatResponse(result *domain.CompletionResult) *dto.ChatResponse {
	resp := &dto.ChatResponse{
		Response:     result.Content,
		Model:        result.Model,
		FinishReason: result.FinishReason,
	}
	if result.Usage != nil {
		resp.Usage = &dto.TokenUsage{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		}
	}
	return resp
}
