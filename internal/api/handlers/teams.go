package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"baseball-replay/internal/api/models"
	"baseball-replay/internal/data"
	"baseball-replay/internal/model"

	"github.com/gin-gonic/gin"
)

// TeamsHandler handles team roster requests
type TeamsHandler struct {
	league *data.League
}

// NewTeamsHandler creates a new teams handler
func NewTeamsHandler(league *data.League) *TeamsHandler {
	return &TeamsHandler{league: league}
}

// ListTeams handles GET /api/v1/teams
func (h *TeamsHandler) ListTeams(c *gin.Context) {
	codes := h.league.Codes()
	teams := make([]models.TeamInfo, 0, len(codes))
	for _, code := range codes {
		team, ok := h.league.Team(code)
		if !ok {
			continue
		}
		teams = append(teams, teamInfo(team))
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeam handles GET /api/v1/teams/:code
func (h *TeamsHandler) GetTeam(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	team, ok := h.league.Team(code)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "TEAM_NOT_FOUND",
				Message: fmt.Sprintf("unknown team %q", code),
			},
		})
		return
	}

	detail := models.TeamDetail{TeamInfo: teamInfo(team)}
	for _, b := range team.StartingLineup() {
		detail.Lineup = append(detail.Lineup, models.BatterInfo{
			Name:    b.Name,
			OBP:     b.OBP,
			SLG:     b.SLG,
			OPS:     b.OPS,
			WAR:     b.WAR,
			Overall: b.Overall(),
		})
	}
	for _, p := range team.Rotation() {
		detail.Rotation = append(detail.Rotation, models.PitcherInfo{
			Name:    p.Name,
			ERA:     p.ERA,
			WHIP:    p.WHIP,
			WAR:     p.WAR,
			Overall: p.Overall(),
		})
	}
	c.JSON(http.StatusOK, detail)
}

func teamInfo(team model.Team) models.TeamInfo {
	return models.TeamInfo{
		Code:     team.Code,
		Name:     data.DisplayName(team.Code),
		Stadium:  data.Stadium(team.Code),
		Batters:  len(team.Batters),
		Pitchers: len(team.Pitchers),
		Defense:  team.Defense,
	}
}
