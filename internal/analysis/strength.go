package analysis

import (
	"baseball-replay/internal/model"
)

// TeamStrength is a team-level summary you can use for ranking.
// It intentionally does not depend on simulation parameters; it blends
// the same ratings the game uses to pick lineups and starters:
//   - lineup: mean overall rating of the starting nine
//   - rotation: mean overall rating of the top three pitchers
//   - defense: runs saved, scaled down to rating points (10 runs = 1 point)
type TeamStrength struct {
	Code string

	BatterCount  int
	PitcherCount int

	LineupOPS     float64
	LineupOverall float64

	RotationERA     float64
	RotationOverall float64

	Defense float64

	// Overall = 0.55*lineup + 0.45*rotation + defense/10.
	Overall float64
}

func ComputeStrength(team model.Team) TeamStrength {
	s := TeamStrength{
		Code:         team.Code,
		BatterCount:  len(team.Batters),
		PitcherCount: len(team.Pitchers),
		Defense:      team.Defense,
	}

	lineup := team.StartingLineup()
	if len(lineup) > 0 {
		var ops, overall float64
		for _, b := range lineup {
			ops += b.OPS
			overall += b.Overall()
		}
		s.LineupOPS = ops / float64(len(lineup))
		s.LineupOverall = overall / float64(len(lineup))
	}

	rotation := team.Rotation()
	if len(rotation) > 0 {
		var era, overall float64
		for _, p := range rotation {
			era += p.ERA
			overall += p.Overall()
		}
		s.RotationERA = era / float64(len(rotation))
		s.RotationOverall = overall / float64(len(rotation))
	}

	s.Overall = 0.55*s.LineupOverall + 0.45*s.RotationOverall + s.Defense/10
	return s
}
