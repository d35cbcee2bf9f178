package main

import (
	"flag"
	"fmt"
	"strings"

	"baseball-replay/internal/model"
	"baseball-replay/internal/sim"
)

// Demo:
// - Build two small rosters by hand (no CSV files needed)
// - Run one seeded game to show how the models fit together
// - Print the first few plays and the final score
func main() {
	seed := flag.Uint64("seed", 42, "Random seed (0 = non-reproducible)")
	rule := flag.String("rule", "hold", "Scoring rule: hold or aggressive")
	n := flag.Int("n", 12, "Number of plays to print")
	flag.Parse()

	scoringRule, err := model.ParseScoringRule(*rule)
	if err != nil {
		panic(err)
	}

	away := model.Team{
		Code:    "RIV",
		Defense: 12,
		Batters: []model.Batter{
			batter("Reyes", 0.385, 0.540, 6.2),
			batter("Okafor", 0.362, 0.505, 5.1),
			batter("Delgado", 0.348, 0.470, 4.4),
			batter("Marsh", 0.341, 0.455, 3.8),
			batter("Ito", 0.330, 0.430, 3.1),
			batter("Fontaine", 0.322, 0.410, 2.5),
			batter("Griggs", 0.315, 0.395, 1.9),
			batter("Whitlock", 0.305, 0.380, 1.2),
			batter("Beaumont", 0.296, 0.360, 0.6),
		},
		Pitchers: []model.Pitcher{
			pitcher("Castellanos", 2.85, 1.05, 5.4),
			pitcher("Brandt", 3.40, 1.18, 3.9),
			pitcher("Usher", 4.10, 1.31, 2.2),
		},
	}
	home := model.Team{
		Code:    "HBR",
		Defense: -4,
		Batters: []model.Batter{
			batter("Calloway", 0.401, 0.575, 7.0),
			batter("Braddock", 0.355, 0.490, 4.6),
			batter("Nguyen", 0.344, 0.465, 4.0),
			batter("Sorrell", 0.336, 0.445, 3.3),
			batter("Palafox", 0.327, 0.425, 2.8),
			batter("Kimble", 0.318, 0.400, 2.1),
			batter("Asher", 0.309, 0.385, 1.5),
			batter("Trent", 0.300, 0.370, 0.9),
			batter("Villanueva", 0.290, 0.350, 0.3),
		},
		Pitchers: []model.Pitcher{
			pitcher("Holloway", 3.10, 1.10, 4.7),
			pitcher("Drummond", 3.75, 1.24, 3.0),
		},
	}

	var source sim.RandomSource
	if *seed != 0 {
		source = sim.NewSeededSource(*seed)
	}
	engine, err := sim.NewEngine(sim.GameConfig{
		Away:   away,
		Home:   home,
		Rule:   scoringRule,
		Source: source,
	})
	if err != nil {
		panic(err)
	}
	result, err := engine.Run()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s at %s  rule=%s seed=%d\n", away.Code, home.Code, result.Rule, *seed)
	fmt.Printf("Starters: %s (away), %s (home)\n\n", result.AwayPitching.Pitcher, result.HomePitching.Pitcher)

	for i := 0; i < min(*n, len(result.Plays)); i++ {
		p := result.Plays[i]
		scored := ""
		if p.RunsScored > 0 {
			scored = " in: " + strings.Join(p.ScoredBy, ", ")
		}
		fmt.Printf(
			"%-4s %-12s outcome=%-9s robbed=%-5t runs=%d%s  score=%d-%d  bases=%-4s outs=%d\n",
			fmt.Sprintf("%s%d", string(p.Half)[:1], p.Inning),
			p.Batter,
			p.Outcome,
			p.Robbed,
			p.RunsScored,
			scored,
			p.AwayScore,
			p.HomeScore,
			p.Bases,
			p.Outs,
		)
	}

	fmt.Printf("\nDone. Final: %s %d, %s %d in %d innings (%d at-bats, %d plays). %s win.\n",
		result.AwayCode, result.AwayScore,
		result.HomeCode, result.HomeScore,
		result.Innings, result.TotalAtBats(), len(result.Plays), result.Winner)
}

func batter(name string, obp, slg, war float64) model.Batter {
	return model.Batter{Name: name, OBP: obp, SLG: slg, OPS: obp + slg, WAR: war}
}

func pitcher(name string, era, whip, war float64) model.Pitcher {
	return model.Pitcher{Name: name, ERA: era, WHIP: whip, WAR: war, IP: 150}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
