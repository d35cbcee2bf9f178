package models

// SimulateRequest represents the request body for running a game
type SimulateRequest struct {
	Away string `json:"away" binding:"required"` // team code, e.g. "NYY"
	Home string `json:"home" binding:"required"`

	// Seed makes the game reproducible; 0 lets the server draw a fresh game.
	Seed uint64 `json:"seed,omitempty"`
	// ScoringRule is "hold" or "aggressive"; empty uses the server default.
	ScoringRule string `json:"scoring_rule,omitempty"`
	// MaxInnings caps game length; 0 uses the engine default.
	MaxInnings int `json:"max_innings,omitempty"`

	Params  ParamsOverride  `json:"params,omitempty"`
	Options SimulateOptions `json:"options,omitempty"`
}

// ParamsOverride tunes the probability model per request. Zero fields keep
// the server's configured values.
type ParamsOverride struct {
	LeagueWHIP     float64 `json:"league_whip,omitempty"`
	WHIPWeight     float64 `json:"whip_weight,omitempty"`
	OnBaseFloor    float64 `json:"on_base_floor,omitempty"`
	OnBaseCeil     float64 `json:"on_base_ceil,omitempty"`
	DefenseDivisor float64 `json:"defense_divisor,omitempty"`
	WalkRate       float64 `json:"walk_rate,omitempty"`
	SingleRate     float64 `json:"single_rate,omitempty"`
	XBHRate        float64 `json:"xbh_rate,omitempty"`
	TripleShare    float64 `json:"triple_share,omitempty"`
	PowerScale     float64 `json:"power_scale,omitempty"`
	FatigueStep    float64 `json:"fatigue_step,omitempty"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludePlays bool `json:"include_plays,omitempty"` // default: false
}

// RankQuery represents query parameters for the rankings endpoint
type RankQuery struct {
	Limit int `form:"limit,omitempty"` // default: 10
}

// StreamRequest represents query parameters for the live stream endpoint
type StreamRequest struct {
	Away        string `form:"away" binding:"required"`
	Home        string `form:"home" binding:"required"`
	Seed        uint64 `form:"seed"`
	ScoringRule string `form:"scoring_rule"`
	MaxInnings  int    `form:"max_innings"`
	// PaceMS is the delay between streamed plays in milliseconds; 0 streams
	// as fast as the client reads.
	PaceMS int `form:"pace_ms"`
}
