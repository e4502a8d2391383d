package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// WikipediaHandler serves encyclopedia lookups.
type WikipediaHandler struct {
	service service.WikipediaService
}

// NewWikipediaHandler creates a WikipediaHandler.
func NewWikipediaHandler(service service.WikipediaService) *WikipediaHandler {
	return &WikipediaHandler{service: service}
}

// Search godoc
// @Summary Search Wikipedia
// @Description Searches Wikipedia articles for a query
// @Tags wikipedia
// @Produce json
// @Param query query string true "Search query"
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /wikipedia/search [get]
func (h *WikipediaHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return domain.NewInvalidInputError("query is required")
	}
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 20 {
		limit = 5
	}

	results, err := h.service.Search(c.Context(), query, limit)
	if err != nil {
		return domain.NewInternalError("Wikipedia search failed", err)
	}

	items := make([]dto.SearchResultItem, 0, len(results))
	for _, result := range results {
		items = append(items, searchResultItem(result))
	}
	return c.JSON(dto.SearchResponse{Results: items, Total: len(items)})
}

// GetArticle godoc
// @Summary Get a Wikipedia article
// @Description Returns one article summary by title
// @Tags wikipedia
// @Produce json
// @Param title path string true "Article title"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /wikipedia/article/{title} [get]
func (h *WikipediaHandler) GetArticle(c *fiber.Ctx) error {
	title := c.Params("title")
	article, err := h.service.GetArticle(c.Context(), title)
	if err != nil {
		return domain.NewInternalError("Failed to fetch article", err)
	}
	if article == nil {
		return domain.NewNotFoundError("Article not found")
	}
	return c.JSON(articleDTO(article))
}

// GetArticles godoc
// @Summary Get articles for a topic
// @Description Resolves the top search hits for a topic to article summaries
// @Tags wikipedia
// @Produce json
// @Param topic query string true "Topic"
// @Param limit query int false "Maximum articles" default(3)
// @Success 200 {array} dto.ArticleResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /wikipedia/articles [get]
func (h *WikipediaHandler) GetArticles(c *fiber.Ctx) error {
	topic := c.Query("topic")
	if topic == "" {
		return domain.NewInvalidInputError("topic is required")
	}
	limit := c.QueryInt("limit", 3)
	if limit < 1 || limit > 10 {
		limit = 3
	}

	articles, err := h.service.GetArticlesForTopic(c.Context(), topic, limit)
	if err != nil {
		return domain.NewInternalError("Failed to get articles", err)
	}

	out := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, articleDTO(&articles[i]))
	}
	return c.JSON(out)
}

// FactCheck godoc
// @Summary Fact-check content
// @Description Checks content against the most relevant Wikipedia article
// @Tags wikipedia
// @Produce json
// @Param content query string true "Content to check"
// @Param topic query string false "Optional topic context"
// @Success 200 {object} dto.FactCheckResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /wikipedia/fact-check [post]
func (h *WikipediaHandler) FactCheck(c *fiber.Ctx) error {
	content := c.Query("content")
	if content == "" {
		return domain.NewInvalidInputError("content is required")
	}
	topic := c.Query("topic")

	result, err := h.service.FactCheck(c.Context(), content, topic)
	if err != nil {
		return domain.NewInternalError("Fact-checking failed", err)
	}

	resp := dto.FactCheckResponse{
		Query:          result.Query,
		Found:          result.Found,
		SearchResults:  make([]dto.SearchResultItem, 0, len(result.SearchResults)),
		Confidence:     result.Confidence,
		RelevanceScore: result.RelevanceScore,
	}
	if result.Article != nil {
		article := articleDTO(result.Article)
		resp.Article = &article
	}
	for _, hit := range result.SearchResults {
		resp.SearchResults = append(resp.SearchResults, searchResultItem(hit))
	}
	return c.JSON(resp)
}

func searchResultItem(result domain.SearchResult) dto.SearchResultItem {
	return dto.SearchResultItem{
		Title:   result.Title,
		Snippet: result.Snippet,
		PageID:  result.PageID,
		URL:     result.URL,
	}
}

func articleDTO(a *domain.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		Title:     a.Title,
		Extract:   a.Extract,
		URL:       a.URL,
		PageID:    a.PageID,
		LastRevID: a.LastRevID,
		Sections:  a.Sections,
	}
}
