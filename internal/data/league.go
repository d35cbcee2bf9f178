package data

import (
	"fmt"
	"sort"
	"strings"

	"baseball-replay/internal/model"
)

// League indexes every team assembled from the season exports.
type League struct {
	teams map[string]*model.Team
}

// BuildLeague groups players by team code and applies defensive ratings.
// Blank codes and the combined rows for players who changed clubs (codes
// ending in "TM") are dropped. Defense ratings for codes without any players
// are ignored.
func BuildLeague(batters []model.Batter, pitchers []model.Pitcher, defense map[string]float64) *League {
	teams := map[string]*model.Team{}
	team := func(code string) *model.Team {
		t, ok := teams[code]
		if !ok {
			t = &model.Team{Code: code}
			teams[code] = t
		}
		return t
	}

	for _, b := range batters {
		if skipCode(b.Team) {
			continue
		}
		t := team(b.Team)
		t.Batters = append(t.Batters, b)
	}
	for _, p := range pitchers {
		if skipCode(p.Team) {
			continue
		}
		t := team(p.Team)
		t.Pitchers = append(t.Pitchers, p)
	}
	for code, saved := range defense {
		if t, ok := teams[code]; ok {
			t.Defense += saved
		}
	}
	return &League{teams: teams}
}

// LoadLeague reads the three season exports and assembles the league.
func LoadLeague(battingPath, pitchingPath, fieldingPath string) (*League, error) {
	batters, err := LoadBatters(battingPath)
	if err != nil {
		return nil, fmt.Errorf("batting: %w", err)
	}
	pitchers, err := LoadPitchers(pitchingPath)
	if err != nil {
		return nil, fmt.Errorf("pitching: %w", err)
	}
	defense, err := LoadDefense(fieldingPath)
	if err != nil {
		return nil, fmt.Errorf("fielding: %w", err)
	}
	return BuildLeague(batters, pitchers, defense), nil
}

// Team returns a copy of the named team.
func (l *League) Team(code string) (model.Team, bool) {
	t, ok := l.teams[code]
	if !ok {
		return model.Team{}, false
	}
	return *t, true
}

// Matchup fetches both sides of a game in one call.
func (l *League) Matchup(awayCode, homeCode string) (away, home model.Team, err error) {
	away, ok := l.Team(awayCode)
	if !ok {
		return model.Team{}, model.Team{}, fmt.Errorf("unknown team %q", awayCode)
	}
	home, ok = l.Team(homeCode)
	if !ok {
		return model.Team{}, model.Team{}, fmt.Errorf("unknown team %q", homeCode)
	}
	return away, home, nil
}

// Codes lists every team code in the league, sorted.
func (l *League) Codes() []string {
	codes := make([]string, 0, len(l.teams))
	for code := range l.teams {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (l *League) Len() int { return len(l.teams) }

func skipCode(code string) bool {
	return code == "" || strings.HasSuffix(code, "TM")
}
