package repository

import (
	"context"
	"errors"
	"time"

	"quizforge/internal/repository/models"

	"gorm.io/gorm"
)

// ChatRepository is the persistence gateway for chat sessions and messages.
type ChatRepository interface {
	CreateSession(ctx context.Context, session *models.ChatSession) error
	GetSessionByID(ctx context.Context, id string) (*models.ChatSession, error)
	AddMessages(ctx context.Context, sessionID string, messages []*models.ChatMessage) error
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a gorm-backed ChatRepository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateSession(ctx context.Context, session *models.ChatSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *chatRepository) GetSessionByID(ctx context.Context, id string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// AddMessages appends messages to a session and bumps its updated_at.
func (r *chatRepository) AddMessages(ctx context.Context, sessionID string, messages []*models.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&messages).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatSession{}).
			Where("id = ?", sessionID).
			Update("updated_at", time.Now()).Error
	})
}
