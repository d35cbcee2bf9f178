package sim

import "baseball-replay/internal/model"

// BattingLine is one lineup slot's line in the box score. Walks are not
// at-bats; robbed hits are outs and count against the at-bat total.
type BattingLine struct {
	Name     string
	AtBats   int
	Runs     int
	Hits     int
	Doubles  int
	Triples  int
	HomeRuns int
	RBI      int
	Walks    int
}

// PitchingLine aggregates what a team allowed while in the field.
// Robberies counts hits its defense took away behind the pitcher.
type PitchingLine struct {
	Pitcher      string
	OutsRecorded int
	HitsAllowed  int
	WalksAllowed int
	RunsAllowed  int
	Robberies    int
}

// InningsPitched renders recorded outs in the conventional a.b form, where
// the fractional digit is outs beyond the last full inning.
func (p PitchingLine) InningsPitched() float64 {
	return float64(p.OutsRecorded/3) + float64(p.OutsRecorded%3)/10
}

// Result is the full record of one simulated game.
type Result struct {
	AwayCode string
	HomeCode string

	AwayScore int
	HomeScore int
	// Winner is the code of the winning team. Games never end tied; a
	// stuck tie surfaces as a DivergenceError from Run instead.
	Winner string
	// Innings is the inning in which play ended.
	Innings int

	Rule model.ScoringRule

	Plays       []PlayEvent
	HalfInnings []HalfInningEvent

	AwayBatting []BattingLine
	HomeBatting []BattingLine

	AwayPitching PitchingLine
	HomePitching PitchingLine
}

// TotalAtBats sums both sides' official at-bats. Walks are not at-bats.
func (r *Result) TotalAtBats() int {
	n := 0
	for _, l := range r.AwayBatting {
		n += l.AtBats
	}
	for _, l := range r.HomeBatting {
		n += l.AtBats
	}
	return n
}

// Hits sums a team's hit total from its batting lines.
func Hits(lines []BattingLine) int {
	n := 0
	for _, l := range lines {
		n += l.Hits
	}
	return n
}
