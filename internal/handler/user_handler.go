package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/middleware"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler serves authenticated-user endpoints.
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetProfile godoc
// @Summary Get own profile
// @Description Returns the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}

	profile, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetSubmissions godoc
// @Summary Get own submissions
// @Description Returns the authenticated user's quiz attempts, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {object} dto.UserSubmissionsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me/submissions [get]
func (h *UserHandler) GetSubmissions(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}

	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 20)
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	submissions, err := h.service.GetSubmissions(c.Context(), userID, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(submissions)
}
