package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/dto"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GetCategories godoc
// @Summary List quiz categories
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /quiz/categories [get]
func (c *QuizController) GetCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.CategoriesResponse{Categories: service.QuizCategories})
}

// GenerateQuiz godoc
// @Summary Generate a new quiz
// @Description Generates a quiz for the authenticated user. Correct answers and explanations are withheld from the payload.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuizRequest true "Category, difficulty, and question count"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Router /quiz/generate [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user := CurrentUser(ctx)
	resp, err := c.quizService.GenerateQuiz(ctx.Request.Context(), user.ID, req)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("GenerateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate quiz"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Scores the submission, reveals correct answers, and updates the user's cumulative stats. A quiz can be submitted only once.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.SubmitQuizRequest true "Quiz id and answers"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or quiz already completed"
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user := CurrentUser(ctx)
	resp, err := c.quizService.SubmitQuiz(user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: model.ErrQuizNotFound.Error()})
		case errors.Is(err, model.ErrQuizCompleted):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: model.ErrQuizCompleted.Error()})
		default:
			log.Error().Err(err).Str("quizID", req.QuizID).Msg("SubmitQuiz: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit quiz"})
		}
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
