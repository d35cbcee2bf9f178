package handlers

import (
	"net/http"

	"baseball-replay/internal/analysis"
	"baseball-replay/internal/api/models"
	"baseball-replay/internal/data"
	"baseball-replay/internal/model"

	"github.com/gin-gonic/gin"
)

// RankHandler handles ranking requests
type RankHandler struct {
	league *data.League
}

// NewRankHandler creates a new rank handler
func NewRankHandler(league *data.League) *RankHandler {
	return &RankHandler{league: league}
}

// RankTeams handles GET /api/v1/rank
func (h *RankHandler) RankTeams(c *gin.Context) {
	var req models.RankQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	teams := make([]model.Team, 0, h.league.Len())
	for _, code := range h.league.Codes() {
		if team, ok := h.league.Team(code); ok {
			teams = append(teams, team)
		}
	}
	ranked := analysis.Rank(teams)

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	ranked = ranked[:limit]

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:            r.Rank,
			Team:            r.Code,
			Name:            data.DisplayName(r.Code),
			LineupOPS:       r.LineupOPS,
			LineupOverall:   r.LineupOverall,
			RotationERA:     r.RotationERA,
			RotationOverall: r.RotationOverall,
			Defense:         r.Defense,
			Overall:         r.Overall,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
