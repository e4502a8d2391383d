package repository

import (
	"context"
	"errors"

	"quizforge/internal/repository/models"

	"gorm.io/gorm"
)

// QuizRepository is the persistence gateway for quizzes and their questions.
type QuizRepository interface {
	CreateQuizWithQuestions(ctx context.Context, quiz *models.Quiz, questions []*models.QuizQuestion) error
	GetQuizByID(ctx context.Context, id string) (*models.Quiz, error)
	GetQuizWithQuestions(ctx context.Context, id string) (*models.Quiz, error)
	GetQuestionsByQuizID(ctx context.Context, quizID string) ([]models.QuizQuestion, error)
	ListQuizzes(ctx context.Context, skip, limit int) ([]models.Quiz, error)
	CountQuestions(ctx context.Context, quizID string) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

// NewQuizRepository creates a gorm-backed QuizRepository.
func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// CreateQuizWithQuestions writes the quiz and its questions in one transaction.
func (r *quizRepository) CreateQuizWithQuestions(ctx context.Context, quiz *models.Quiz, questions []*models.QuizQuestion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *quizRepository) GetQuizByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) GetQuizWithQuestions(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) GetQuestionsByQuizID(ctx context.Context, quizID string) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("question_order ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) ListQuizzes(ctx context.Context, skip, limit int) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) CountQuestions(ctx context.Context, quizID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.QuizQuestion{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error
	return count, err
}
