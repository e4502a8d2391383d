package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// Generate godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz about the given topic
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz request"
// @Param force_model query string false "Override the requested model"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	forceModel := c.Query("force_model")
	resp, err := h.service.Generate(c.Context(), req, forceModel)
	if err != nil {
		logger.Get().Warn("quiz generation failed",
			zap.String("topic", req.Topic), zap.Error(err))
		return err
	}
	return c.JSON(resp)
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Scores a set of answers against a generated quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizSubmission true "Quiz submission"
// @Success 200 {object} dto.QuizResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	var submission dto.QuizSubmission
	if err := c.BodyParser(&submission); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	userID := middleware.UserIDFromContext(c)
	result, err := h.service.Submit(c.Context(), submission, userID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetResults godoc
// @Summary List recent quiz results
// @Description Returns recently scored submissions, newest first
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizResultsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/results [get]
func (h *QuizHandler) GetResults(c *fiber.Ctx) error {
	resp, err := h.service.GetResults(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetHistory godoc
// @Summary List generated quizzes
// @Description Returns generated quizzes with per-quiz statistics
// @Tags quiz
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {array} dto.QuizHistory
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/history [get]
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 20)
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	history, err := h.service.GetHistory(c.Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(history)
}

// GetQuizDetail godoc
// @Summary Get one quiz with submissions
// @Description Returns a quiz, its questions and its submissions
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizDetail
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/history/{id} [get]
func (h *QuizHandler) GetQuizDetail(c *fiber.Ctx) error {
	quizID := c.Params("id")
	detail, err := h.service.GetQuizDetail(c.Context(), quizID)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}
