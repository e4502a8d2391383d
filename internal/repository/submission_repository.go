package repository

import (
	"context"

	"quizforge/internal/repository/models"

	"gorm.io/gorm"
)

// SubmissionStats aggregates persisted submissions for one quiz.
type SubmissionStats struct {
	Count        int64
	AverageScore *float64
}

// SubmissionRepository is the persistence gateway for quiz submissions.
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *models.QuizSubmission, answers []*models.QuizAnswer) error
	GetByQuizID(ctx context.Context, quizID string) ([]models.QuizSubmission, error)
	ListSubmissions(ctx context.Context, skip, limit int) ([]models.QuizSubmission, error)
	ListByUserID(ctx context.Context, userID string, skip, limit int) ([]models.QuizSubmission, error)
	GetStatsByQuizID(ctx context.Context, quizID string) (*SubmissionStats, error)
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a gorm-backed SubmissionRepository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// CreateSubmission writes the submission and its per-question answers in one
// transaction.
func (r *submissionRepository) CreateSubmission(ctx context.Context, submission *models.QuizSubmission, answers []*models.QuizAnswer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		if len(answers) == 0 {
			return nil
		}
		return tx.Create(&answers).Error
	})
}

func (r *submissionRepository) GetByQuizID(ctx context.Context, quizID string) ([]models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) ListSubmissions(ctx context.Context, skip, limit int) ([]models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Order("submitted_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) ListByUserID(ctx context.Context, userID string, skip, limit int) ([]models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetStatsByQuizID returns the submission count and average percentage for a
// quiz. AverageScore is nil when the quiz has no submissions.
func (r *submissionRepository) GetStatsByQuizID(ctx context.Context, quizID string) (*SubmissionStats, error) {
	var row struct {
		Count        int64
		AverageScore *float64
	}
	err := r.db.WithContext(ctx).
		Model(&models.QuizSubmission{}).
		Select("COUNT(id) AS count, AVG(percentage) AS average_score").
		Where("quiz_id = ?", quizID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &SubmissionStats{Count: row.Count, AverageScore: row.AverageScore}, nil
}
