package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuizService is a mock type for service.QuizService
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) Generate(ctx context.Context, req dto.QuizRequest, forceModel string) (*dto.QuizResponse, error) {
	args := m.Called(ctx, req, forceModel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResponse), args.Error(1)
}

func (m *MockQuizService) Submit(ctx context.Context, submission dto.QuizSubmission, userID string) (*dto.QuizResult, error) {
	args := m.Called(ctx, submission, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResult), args.Error(1)
}

func (m *MockQuizService) GetResults(ctx context.Context) (*dto.QuizResultsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResultsResponse), args.Error(1)
}

func (m *MockQuizService) GetHistory(ctx context.Context, skip, limit int) ([]dto.QuizHistory, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QuizHistory), args.Error(1)
}

func (m *MockQuizService) GetQuizDetail(ctx context.Context, quizID string) (*dto.QuizDetail, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizDetail), args.Error(1)
}

func setupQuizApp(svc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewQuizHandler(svc)
	app.Post("/api/quiz/generate", h.Generate)
	app.Post("/api/quiz/submit", h.Submit)
	app.Get("/api/quiz/results", h.GetResults)
	app.Get("/api/quiz/history", h.GetHistory)
	app.Get("/api/quiz/history/:id", h.GetQuizDetail)
	return app
}

func decodeErrorResponse(t *testing.T, body io.Reader) middleware.ErrorResponse {
	t.Helper()
	var resp middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestQuizHandler_Generate(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("Generate", mock.Anything, dto.QuizRequest{Topic: "Jazz"}, "").
		Return(&dto.QuizResponse{QuizID: "01A", Topic: "Jazz"}, nil)
	app := setupQuizApp(svc)

	req := httptest.NewRequest("POST", "/api/quiz/generate",
		bytes.NewBufferString(`{"topic":"Jazz"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.QuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "01A", body.QuizID)
}

func TestQuizHandler_Generate_ForceModelQueryParam(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("Generate", mock.Anything, mock.Anything, "qwen/qwen3-32b").
		Return(&dto.QuizResponse{QuizID: "01A"}, nil)
	app := setupQuizApp(svc)

	req := httptest.NewRequest("POST", "/api/quiz/generate?force_model=qwen%2Fqwen3-32b",
		bytes.NewBufferString(`{"topic":"Jazz"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestQuizHandler_Generate_InappropriateTopic(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("Generate", mock.Anything, mock.Anything, "").
		Return(nil, domain.NewInappropriateTopicError())
	app := setupQuizApp(svc)

	req := httptest.NewRequest("POST", "/api/quiz/generate",
		bytes.NewBufferString(`{"topic":"explicit content"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeErrorResponse(t, resp.Body)
	assert.Equal(t, "INAPPROPRIATE_TOPIC", body.Code)
}

func TestQuizHandler_Generate_InvalidBody(t *testing.T) {
	svc := new(MockQuizService)
	app := setupQuizApp(svc)

	req := httptest.NewRequest("POST", "/api/quiz/generate",
		bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuizHandler_Generate_UpstreamFailure(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("Generate", mock.Anything, mock.Anything, "").
		Return(nil, domain.NewUpstreamFailureError(assert.AnError))
	app := setupQuizApp(svc)

	req := httptest.NewRequest("POST", "/api/quiz/generate",
		bytes.NewBufferString(`{"topic":"Jazz"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	body := decodeErrorResponse(t, resp.Body)
	assert.Equal(t, "UPSTREAM_FAILURE", body.Code)
}

func TestQuizHandler_Submit(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("Submit", mock.Anything,
		dto.QuizSubmission{QuizID: "01A", Answers: []int{0, 1}}, "").
		Return(&dto.QuizResult{QuizID: "01A", Score: 2, TotalQuestions: 2, Percentage: 100.0}, nil)
	app := setupQuizApp(svc)

	req := httptest.NewRequest("POST", "/api/quiz/submit",
		bytes.NewBufferString(`{"quiz_id":"01A","answers":[0,1]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.QuizResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Score)
}

func TestQuizHandler_Submit_UnknownQuiz(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("Submit", mock.Anything, mock.Anything, "").
		Return(nil, domain.NewQuizNotFoundError("missing"))
	app := setupQuizApp(svc)

	req := httptest.NewRequest("POST", "/api/quiz/submit",
		bytes.NewBufferString(`{"quiz_id":"missing","answers":[0]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	// Unknown quiz ids are a client mistake, not a missing resource.
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeErrorResponse(t, resp.Body)
	assert.Equal(t, "QUIZ_NOT_FOUND", body.Code)
}

func TestQuizHandler_GetHistory_ClampsPagination(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("GetHistory", mock.Anything, 0, 20).Return([]dto.QuizHistory{}, nil)
	app := setupQuizApp(svc)

	req := httptest.NewRequest("GET", "/api/quiz/history?skip=-5&limit=500", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestQuizHandler_GetQuizDetail_NotFound(t *testing.T) {
	svc := new(MockQuizService)
	svc.On("GetQuizDetail", mock.Anything, "missing").
		Return(nil, domain.NewNotFoundError("Quiz not found"))
	app := setupQuizApp(svc)

	req := httptest.NewRequest("GET", "/api/quiz/history/missing", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
