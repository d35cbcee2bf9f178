package models

import "time"

// GameResponse represents the response from a simulated game
type GameResponse struct {
	ID      string      `json:"id"`
	Status  string      `json:"status"`
	Summary GameSummary `json:"summary"`
	Plays   []PlayRow   `json:"plays,omitempty"`
}

// GameSummary contains the final score and box score for both sides
type GameSummary struct {
	Away        TeamSummary `json:"away"`
	Home        TeamSummary `json:"home"`
	Winner      string      `json:"winner"`
	Innings     int         `json:"innings"`
	TotalAtBats int         `json:"total_at_bats"`
	ScoringRule string      `json:"scoring_rule"`
}

// TeamSummary is one side of the box score
type TeamSummary struct {
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	Runs     int           `json:"runs"`
	Hits     int           `json:"hits"`
	Batting  []BattingRow  `json:"batting"`
	Pitching []PitchingRow `json:"pitching"`
}

// BattingRow is one batter's line in the box score
type BattingRow struct {
	Name     string `json:"name"`
	AtBats   int    `json:"at_bats"`
	Runs     int    `json:"runs"`
	Hits     int    `json:"hits"`
	Doubles  int    `json:"doubles"`
	Triples  int    `json:"triples"`
	HomeRuns int    `json:"home_runs"`
	RBI      int    `json:"rbi"`
	Walks    int    `json:"walks"`
}

// PitchingRow is one pitcher's line in the box score
type PitchingRow struct {
	Name           string  `json:"name"`
	InningsPitched float64 `json:"innings_pitched"` // a.b form, e.g. 8.2
	Hits           int     `json:"hits"`
	Walks          int     `json:"walks"`
	Runs           int     `json:"runs"`
	Robberies      int     `json:"robberies"`
}

// PlayRow represents one plate appearance in the play-by-play ledger
type PlayRow struct {
	Index       int      `json:"index"`
	Inning      int      `json:"inning"`
	Half        string   `json:"half"` // "TOP", "BOTTOM"
	BattingTeam string   `json:"batting_team"`
	Batter      string   `json:"batter"`
	Pitcher     string   `json:"pitcher"`
	Outcome     string   `json:"outcome"` // "OUT", "WALK", "SINGLE", ...
	Robbed      bool     `json:"robbed"`
	RunsScored  int      `json:"runs_scored"`
	ScoredBy    []string `json:"scored_by,omitempty"`
	AwayScore   int      `json:"away_score"`
	HomeScore   int      `json:"home_score"`
	Bases       string   `json:"bases"`
	Outs        int      `json:"outs"`
}

// HalfInningRow marks the end of a half-inning on the stream
type HalfInningRow struct {
	Inning    int     `json:"inning"`
	Half      string  `json:"half"`
	Pitcher   string  `json:"pitcher"`
	Fatigue   float64 `json:"fatigue"`
	AwayScore int     `json:"away_score"`
	HomeScore int     `json:"home_score"`
}

// RankResponse represents the response from ranking teams
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked team
type Ranking struct {
	Rank            int     `json:"rank"`
	Team            string  `json:"team"`
	Name            string  `json:"name"`
	LineupOPS       float64 `json:"lineup_ops"`
	LineupOverall   float64 `json:"lineup_overall"`
	RotationERA     float64 `json:"rotation_era"`
	RotationOverall float64 `json:"rotation_overall"`
	Defense         float64 `json:"defense"`
	Overall         float64 `json:"overall"`
}

// TeamInfo represents summary information about a team
type TeamInfo struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Stadium  string  `json:"stadium,omitempty"`
	Batters  int     `json:"batters"`
	Pitchers int     `json:"pitchers"`
	Defense  float64 `json:"defense"`
}

// TeamDetail adds the projected lineup and rotation to TeamInfo
type TeamDetail struct {
	TeamInfo
	Lineup   []BatterInfo  `json:"lineup"`
	Rotation []PitcherInfo `json:"rotation"`
}

// BatterInfo describes one batter on a roster
type BatterInfo struct {
	Name    string  `json:"name"`
	OBP     float64 `json:"obp"`
	SLG     float64 `json:"slg"`
	OPS     float64 `json:"ops"`
	WAR     float64 `json:"war"`
	Overall float64 `json:"overall"`
}

// PitcherInfo describes one pitcher on a roster
type PitcherInfo struct {
	Name    string  `json:"name"`
	ERA     float64 `json:"era"`
	WHIP    float64 `json:"whip"`
	WAR     float64 `json:"war"`
	Overall float64 `json:"overall"`
}

// RuleInfo represents information about a scoring rule
type RuleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

// Stream message types
const (
	StreamTypeStart      = "start"
	StreamTypePlay       = "play"
	StreamTypeHalfInning = "half_inning"
	StreamTypeFinal      = "final"
	StreamTypeError      = "error"
)

// StreamMessage is the envelope for every websocket frame
type StreamMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// StreamHeader opens a stream with the matchup being played
type StreamHeader struct {
	ID          string `json:"id"`
	Away        string `json:"away"`
	Home        string `json:"home"`
	ScoringRule string `json:"scoring_rule"`
	Seed        uint64 `json:"seed,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
