package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/dto"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/service"
	"github.com/rs/zerolog/log"
)

type StatsController struct {
	leaderboardService service.LeaderboardService
}

func NewStatsController(leaderboardService service.LeaderboardService) *StatsController {
	return &StatsController{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary Get the global leaderboard
// @Description Users ranked by total points, descending. Rank is positional starting at 1.
// @Tags Stats
// @Produce json
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Router /leaderboard [get]
func (c *StatsController) GetLeaderboard(ctx *gin.Context) {
	limit, ok := parseLimitQuery(ctx)
	if !ok {
		return
	}

	resp, err := c.leaderboardService.GetLeaderboard(limit)
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary Get service-wide counters
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	resp, err := c.leaderboardService.GetStats()
	if err != nil {
		log.Error().Err(err).Msg("GetStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve stats"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
