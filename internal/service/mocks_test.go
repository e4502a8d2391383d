package service

import (
	"context"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"

	"github.com/stretchr/testify/mock"
)

// MockCompletionClient is a mock type for domain.CompletionClient
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, req domain.CompletionRequest) (*domain.CompletionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionResult), args.Error(1)
}

func (m *MockCompletionClient) ResolveModel(requested string) string {
	args := m.Called(requested)
	return args.String(0)
}

func (m *MockCompletionClient) Models() map[string]string {
	args := m.Called()
	return args.Get(0).(map[string]string)
}

func (m *MockCompletionClient) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCompletionClient) DefaultTemperature() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockCompletionClient) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockWikipediaClient is a mock type for domain.WikipediaClient
type MockWikipediaClient struct {
	mock.Mock
}

func (m *MockWikipediaClient) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchResult), args.Error(1)
}

func (m *MockWikipediaClient) GetArticle(ctx context.Context, title string) (*domain.Article, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

// MockCache is a mock type for domain.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockQuizRepository is a mock type for repository.QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuizWithQuestions(ctx context.Context, quiz *models.Quiz, questions []*models.QuizQuestion) error {
	args := m.Called(ctx, quiz, questions)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*models.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuizWithQuestions(ctx context.Context, id string) (*models.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuestionsByQuizID(ctx context.Context, quizID string) ([]models.QuizQuestion, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizQuestion), args.Error(1)
}

func (m *MockQuizRepository) ListQuizzes(ctx context.Context, skip, limit int) ([]models.Quiz, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) CountQuestions(ctx context.Context, quizID string) (int64, error) {
	args := m.Called(ctx, quizID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubmissionRepository is a mock type for repository.SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) CreateSubmission(ctx context.Context, submission *models.QuizSubmission, answers []*models.QuizAnswer) error {
	args := m.Called(ctx, submission, answers)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetByQuizID(ctx context.Context, quizID string) ([]models.QuizSubmission, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) ListSubmissions(ctx context.Context, skip, limit int) ([]models.QuizSubmission, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) ListByUserID(ctx context.Context, userID string, skip, limit int) ([]models.QuizSubmission, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetStatsByQuizID(ctx context.Context, quizID string) (*repository.SubmissionStats, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SubmissionStats), args.Error(1)
}

// MockUserRepository is a mock type for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockChatRepository is a mock type for repository.ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateSession(ctx context.Context, session *models.ChatSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockChatRepository) GetSessionByID(ctx context.Context, id string) (*models.ChatSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSession), args.Error(1)
}

func (m *MockChatRepository) AddMessages(ctx context.Context, sessionID string, messages []*models.ChatMessage) error {
	args := m.Called(ctx, sessionID, messages)
	return args.Error(0)
}

// MockQuizCacheService is a mock type for QuizCacheService
type MockQuizCacheService struct {
	mock.Mock
}

func (m *MockQuizCacheService) SetSnapshot(ctx context.Context, quiz *domain.GeneratedQuiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizCacheService) GetSnapshot(ctx context.Context, quizID string) (*domain.GeneratedQuiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedQuiz), args.Error(1)
}

func (m *MockQuizCacheService) DeleteSnapshot(ctx context.Context, quizID string) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

// emptyGatherer satisfies ContextGatherer without network lookups.
type emptyGatherer struct{}

func (emptyGatherer) GatherContext(ctx context.Context, topic string) *domain.ContextSummary {
	return &domain.ContextSummary{}
}
