package handlers

import (
	"errors"
	"log"
	"net/http"

	"baseball-replay/internal/api/models"
	"baseball-replay/internal/config"
	"baseball-replay/internal/data"
	"baseball-replay/internal/model"
	"baseball-replay/internal/sim"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SimulateHandler handles game simulation requests
type SimulateHandler struct {
	league   *data.League
	defaults config.GameConfig
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(league *data.League, defaults config.GameConfig) *SimulateHandler {
	return &SimulateHandler{league: league, defaults: defaults}
}

// RunGame handles POST /api/v1/simulate
func (h *SimulateHandler) RunGame(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	away, home, err := h.league.Matchup(req.Away, req.Home)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "TEAM_NOT_FOUND",
				Message: err.Error(),
			},
		})
		return
	}

	gameCfg, err := buildGame(h.defaults, away, home, req.Seed, req.ScoringRule, req.MaxInnings, req.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	engine, err := sim.NewEngine(gameCfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	res, err := engine.Run()
	if err != nil {
		var div *sim.DivergenceError
		if errors.As(err, &div) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "GAME_DIVERGED",
					Message: err.Error(),
					Details: map[string]interface{}{
						"max_innings": div.Limit,
						"away_score":  div.AwayScore,
						"home_score":  div.HomeScore,
					},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	log.Printf("simulated %s %d, %s %d in %d innings",
		res.AwayCode, res.AwayScore, res.HomeCode, res.HomeScore, res.Innings)

	response := models.GameResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Summary: buildGameSummary(res),
	}
	if req.Options.IncludePlays {
		response.Plays = convertPlays(res.Plays)
	}
	c.JSON(http.StatusOK, response)
}

// buildGame layers request fields over the server defaults and produces a
// ready-to-run engine config.
func buildGame(defaults config.GameConfig, away, home model.Team, seed uint64, ruleStr string, maxInnings int, override models.ParamsOverride) (sim.GameConfig, error) {
	if ruleStr == "" {
		ruleStr = defaults.ScoringRule
	}
	rule, err := model.ParseScoringRule(ruleStr)
	if err != nil {
		return sim.GameConfig{}, err
	}

	merged := config.MergeParams(defaults.Params, overrideParams(override))
	params := merged.ToSimParams()
	if err := params.Validate(); err != nil {
		return sim.GameConfig{}, err
	}

	if maxInnings == 0 {
		maxInnings = defaults.MaxInnings
	}
	if seed == 0 {
		seed = defaults.Seed
	}
	var source sim.RandomSource
	if seed != 0 {
		source = sim.NewSeededSource(seed)
	}

	return sim.GameConfig{
		Away:       away,
		Home:       home,
		Rule:       rule,
		Params:     params,
		Source:     source,
		MaxInnings: maxInnings,
	}, nil
}

func overrideParams(o models.ParamsOverride) config.ParamsConfig {
	return config.ParamsConfig{
		LeagueWHIP:     o.LeagueWHIP,
		WHIPWeight:     o.WHIPWeight,
		OnBaseFloor:    o.OnBaseFloor,
		OnBaseCeil:     o.OnBaseCeil,
		DefenseDivisor: o.DefenseDivisor,
		WalkRate:       o.WalkRate,
		SingleRate:     o.SingleRate,
		XBHRate:        o.XBHRate,
		TripleShare:    o.TripleShare,
		PowerScale:     o.PowerScale,
		FatigueStep:    o.FatigueStep,
	}
}

func buildGameSummary(res *sim.Result) models.GameSummary {
	return models.GameSummary{
		Away:        buildTeamSummary(res.AwayCode, res.AwayScore, res.AwayBatting, res.AwayPitching),
		Home:        buildTeamSummary(res.HomeCode, res.HomeScore, res.HomeBatting, res.HomePitching),
		Winner:      res.Winner,
		Innings:     res.Innings,
		TotalAtBats: res.TotalAtBats(),
		ScoringRule: string(res.Rule),
	}
}

func buildTeamSummary(code string, runs int, batting []sim.BattingLine, pitching sim.PitchingLine) models.TeamSummary {
	summary := models.TeamSummary{
		Code: code,
		Name: data.DisplayName(code),
		Runs: runs,
		Hits: sim.Hits(batting),
	}
	for _, line := range batting {
		summary.Batting = append(summary.Batting, models.BattingRow{
			Name:     line.Name,
			AtBats:   line.AtBats,
			Runs:     line.Runs,
			Hits:     line.Hits,
			Doubles:  line.Doubles,
			Triples:  line.Triples,
			HomeRuns: line.HomeRuns,
			RBI:      line.RBI,
			Walks:    line.Walks,
		})
	}
	summary.Pitching = []models.PitchingRow{{
		Name:           pitching.Pitcher,
		InningsPitched: pitching.InningsPitched(),
		Hits:           pitching.HitsAllowed,
		Walks:          pitching.WalksAllowed,
		Runs:           pitching.RunsAllowed,
		Robberies:      pitching.Robberies,
	}}
	return summary
}

func convertPlays(plays []sim.PlayEvent) []models.PlayRow {
	result := make([]models.PlayRow, len(plays))
	for i, play := range plays {
		result[i] = convertPlay(play)
	}
	return result
}

func convertPlay(play sim.PlayEvent) models.PlayRow {
	return models.PlayRow{
		Index:       play.Index,
		Inning:      play.Inning,
		Half:        string(play.Half),
		BattingTeam: play.BattingTeam,
		Batter:      play.Batter,
		Pitcher:     play.Pitcher,
		Outcome:     play.Outcome.String(),
		Robbed:      play.Robbed,
		RunsScored:  play.RunsScored,
		ScoredBy:    play.ScoredBy,
		AwayScore:   play.AwayScore,
		HomeScore:   play.HomeScore,
		Bases:       play.Bases,
		Outs:        play.Outs,
	}
}
