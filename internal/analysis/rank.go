package analysis

import (
	"sort"

	"baseball-replay/internal/model"
)

type RankedTeam struct {
	Rank int
	TeamStrength
}

// Rank computes strengths per team and sorts descending by Overall.
// Ties break alphabetically by code so the order is stable.
func Rank(teams []model.Team) []RankedTeam {
	out := make([]RankedTeam, 0, len(teams))
	for _, t := range teams {
		out = append(out, RankedTeam{TeamStrength: ComputeStrength(t)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Overall != out[j].Overall {
			return out[i].Overall > out[j].Overall
		}
		return out[i].Code < out[j].Code
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
