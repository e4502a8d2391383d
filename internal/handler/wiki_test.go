package handler

import (
	"context"
	"encoding/json"
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

// MockWikipediaService is a mock type for service.WikipediaService
type MockWikipediaService struct {
	mock.Mock
}

func (m *MockWikipediaService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchResult), args.Error(1)
}

func (m *MockWikipediaService) GetArticle(ctx context.Context, title string) (*domain.Article, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockWikipediaService) GetArticlesForTopic(ctx context.Context, topic string, limit int) ([]domain.Article, error) {
	args := m.Called(ctx, topic, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *MockWikipediaService) FactCheck(ctx context.Context, content, topic string) (*domain.FactCheckResult, error) {
	args := m.Called(ctx, content, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FactCheckResult), args.Error(1)
}

func setupWikiApp(svc *MockWikipediaService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewWikipediaHandler(svc)
	app.Get("/api/wikipedia/search", h.Search)
	app.Get("/api/wikipedia/article/:title", h.GetArticle)
	app.Get("/api/wikipedia/articles", h.GetArticles)
	app.Post("/api/wikipedia/fact-check", h.FactCheck)
	return app
}

func TestWikipediaHandler_Search(t *testing.T) {
	svc := new(MockWikipediaService)
	svc.On("Search", mock.Anything, "jazz", 5).Return([]domain.SearchResult{
		{Title: "Jazz", Snippet: "A music genre", PageID: 1},
	}, nil)
	app := setupWikiApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wikipedia/search?query=jazz", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "Jazz", body.Results[0].Title)
}

func TestWikipediaHandler_Search_MissingQuery(t *testing.T) {
	svc := new(MockWikipediaService)
	app := setupWikiApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wikipedia/search", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestWikipediaHandler_Search_ClampsLimit(t *testing.T) {
	svc := new(MockWikipediaService)
	svc.On("Search", mock.Anything, "jazz", 5).Return([]domain.SearchResult{}, nil)
	app := setupWikiApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wikipedia/search?query=jazz&limit=99", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestWikipediaHandler_GetArticle(t *testing.T) {
	svc := new(MockWikipediaService)
	svc.On("GetArticle", mock.Anything, "Jazz").
		Return(&domain.Article{Title: "Jazz", Extract: "Jazz is a music genre.", PageID: 1}, nil)
	app := setupWikiApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wikipedia/article/Jazz", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ArticleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Jazz", body.Title)
}

func TestWikipediaHandler_GetArticle_NotFound(t *testing.T) {
	svc := new(MockWikipediaService)
	svc.On("GetArticle", mock.Anything, "Nope").Return(nil, nil)
	app := setupWikiApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wikipedia/article/Nope", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestWikipediaHandler_FactCheck(t *testing.T) {
	svc := new(MockWikipediaService)
	svc.On("FactCheck", mock.Anything, "jazz began in New Orleans", "jazz").
		Return(&domain.FactCheckResult{
			Query:          "jazz began in New Orleans",
			Found:          true,
			Article:        &domain.Article{Title: "Jazz"},
			Confidence:     "high",
			RelevanceScore: 0.9,
		}, nil)
	app := setupWikiApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST",
		"/api/wikipedia/fact-check?content=jazz+began+in+New+Orleans&topic=jazz", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.FactCheckResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Found)
	assert.Equal(t, "high", body.Confidence)
	require.NotNil(t, body.Article)
	assert.Equal(t, "Jazz", body.Article.Title)
}

func TestWikipediaHandler_FactCheck_MissingContent(t *testing.T) {
	svc := new(MockWikipediaService)
	app := setupWikiApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/wikipedia/fact-check", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
