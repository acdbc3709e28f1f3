package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/dto"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	quizService service.QuizService
}

func NewUserController(quizService service.QuizService) *UserController {
	return &UserController{quizService: quizService}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile and stats
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Router /user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := CurrentUser(ctx)
	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		UserID:         user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		TotalPoints:    user.TotalPoints,
		WalletBalance:  user.WalletBalance,
		TotalQuizzes:   user.TotalQuizzes,
		CorrectAnswers: user.CorrectAnswers,
	})
}

// GetHistory godoc
// @Summary List the authenticated user's completed quizzes
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries (default 20)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Router /user/history [get]
func (c *UserController) GetHistory(ctx *gin.Context) {
	limit, ok := parseLimitQuery(ctx)
	if !ok {
		return
	}

	user := CurrentUser(ctx)
	resp, err := c.quizService.GetHistory(user.ID, limit)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz history"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// parseLimitQuery reads an optional positive "limit" query parameter. It
// writes the 400 response itself and returns ok=false on a bad value; a
// missing parameter yields 0 so services apply their own default.
func parseLimitQuery(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit parameter"})
		return 0, false
	}
	return limit, true
}
