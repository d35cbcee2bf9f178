package sim

import "baseball-replay/internal/model"

// Half identifies which side of the inning is batting.
// Keep these values stable; they are intended for CSV and API output.
type Half string

const (
	HalfTop    Half = "TOP"
	HalfBottom Half = "BOTTOM"
)

// PlayEvent is one row of play-by-play output.
// This is the primary artifact for "what happened" in a game.
type PlayEvent struct {
	Index  int
	Inning int
	Half   Half

	BattingTeam string
	Batter      string
	Pitcher     string

	Outcome model.Outcome
	// Robbed marks a would-be hit converted to an out by the defense.
	Robbed bool

	RunsScored int
	ScoredBy   []string

	AwayScore int
	HomeScore int

	// Bases renders the post-play base state first-to-third, x for a
	// runner and - for an open base.
	Bases string
	Outs  int
}

// HalfInningEvent marks the end of a half-inning. Fatigue is the fielding
// pitcher's WHIP penalty going into their next half.
type HalfInningEvent struct {
	Inning  int
	Half    Half
	Pitcher string
	Fatigue float64

	AwayScore int
	HomeScore int
}

// Sink observes a game as it is simulated. Calls arrive synchronously from
// Run, in order, so implementations that do I/O should return quickly.
type Sink interface {
	OnPlay(PlayEvent)
	OnHalfInning(HalfInningEvent)
}
