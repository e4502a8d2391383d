package service

import (
	"context"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/repository"
)

// UserService serves authenticated-user profile and activity lookups.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	GetSubmissions(ctx context.Context, userID string, skip, limit int) (*dto.UserSubmissionsResponse, error)
}

type userService struct {
	userRepo       repository.UserRepository
	quizRepo       repository.QuizRepository
	submissionRepo repository.SubmissionRepository
}

// NewUserService creates a UserService.
func NewUserService(userRepo repository.UserRepository, quizRepo repository.QuizRepository, submissionRepo repository.SubmissionRepository) UserService {
	return &userService{
		userRepo:       userRepo,
		quizRepo:       quizRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	return &dto.UserProfileResponse{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name.String,
		ProfilePictureURL: user.ProfilePictureURL.String,
		CreatedAt:         user.CreatedAt,
	}, nil
}

// GetSubmissions lists the user's quiz attempts newest first with the quiz
// topic resolved for each.
func (s *userService) GetSubmissions(ctx context.Context, userID string, skip, limit int) (*dto.UserSubmissionsResponse, error) {
	submissions, err := s.submissionRepo.ListByUserID(ctx, userID, skip, limit)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user submissions", err)
	}

	topics := make(map[string]string)
	items := make([]dto.UserSubmissionItem, 0, len(submissions))
	for _, sub := range submissions {
		topic, ok := topics[sub.QuizID]
		if !ok {
			quiz, err := s.quizRepo.GetQuizByID(ctx, sub.QuizID)
			if err != nil {
				return nil, domain.NewInternalError("failed to load quiz for submission", err)
			}
			if quiz != nil {
				topic = quiz.Topic
			}
			topics[sub.QuizID] = topic
		}
		items = append(items, dto.UserSubmissionItem{
			ID:             sub.ID,
			QuizID:         sub.QuizID,
			Topic:          topic,
			Score:          sub.Score,
			TotalQuestions: sub.TotalQuestions,
			Percentage:     sub.Percentage,
			SubmittedAt:    sub.SubmittedAt,
		})
	}

	return &dto.UserSubmissionsResponse{Submissions: items, Total: len(items)}, nil
}
