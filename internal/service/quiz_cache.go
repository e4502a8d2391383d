package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizforge/internal/cache"
	"quizforge/internal/domain"
)

// QuizCacheService stores JSON snapshots of generated quizzes so submissions
// can be scored even when the persistence write failed. One key per quiz id,
// expiring after the configured TTL.
type QuizCacheService interface {
	SetSnapshot(ctx context.Context, quiz *domain.GeneratedQuiz) error
	GetSnapshot(ctx context.Context, quizID string) (*domain.GeneratedQuiz, error)
	DeleteSnapshot(ctx context.Context, quizID string) error
}

type quizCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizCacheService creates a QuizCacheService over the given cache.
func NewQuizCacheService(c domain.Cache, ttl time.Duration) QuizCacheService {
	return &quizCacheService{cache: c, ttl: ttl}
}

func snapshotKey(quizID string) string {
	return cache.GenerateCacheKey("quiz", "snapshot", quizID)
}

func (s *quizCacheService) SetSnapshot(ctx context.Context, quiz *domain.GeneratedQuiz) error {
	if quiz.QuizID == "" {
		return errors.New("cannot snapshot a quiz without an id")
	}
	data, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz snapshot: %w", err)
	}
	return s.cache.Set(ctx, snapshotKey(quiz.QuizID), string(data), s.ttl)
}

// GetSnapshot returns nil without error when no snapshot exists.
func (s *quizCacheService) GetSnapshot(ctx context.Context, quizID string) (*domain.GeneratedQuiz, error) {
	data, err := s.cache.Get(ctx, snapshotKey(quizID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	var quiz domain.GeneratedQuiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz snapshot: %w", err)
	}
	return &quiz, nil
}

func (s *quizCacheService) DeleteSnapshot(ctx context.Context, quizID string) error {
	return s.cache.Delete(ctx, snapshotKey(quizID))
}
