package model

import "testing"

func rosterOf(n int) []Batter {
	batters := make([]Batter, n)
	for i := range batters {
		// Descending quality: batter 0 is the best.
		ops := 1.000 - float64(i)*0.020
		batters[i] = Batter{
			Name: string(rune('A' + i)),
			OBP:  0.350,
			SLG:  ops - 0.350,
			OPS:  ops,
			WAR:  4.0 - float64(i)*0.2,
		}
	}
	return batters
}

func TestStartingLineupTakesTopNine(t *testing.T) {
	team := Team{Code: "NYY", Batters: rosterOf(12)}
	lineup := team.StartingLineup()
	if len(lineup) != LineupSize {
		t.Fatalf("lineup size = %d, want %d", len(lineup), LineupSize)
	}
	for i := 1; i < len(lineup); i++ {
		if lineup[i-1].Overall() < lineup[i].Overall() {
			t.Fatalf("lineup not sorted by overall at slot %d", i)
		}
	}
	if lineup[0].Name != "A" {
		t.Fatalf("best batter %q not leading off", lineup[0].Name)
	}
}

func TestStartingLineupShortRoster(t *testing.T) {
	team := Team{Code: "BOS", Batters: rosterOf(5)}
	if got := len(team.StartingLineup()); got != 5 {
		t.Fatalf("lineup size = %d, want all 5", got)
	}
}

func TestStartingPitcherPicksFromTopThree(t *testing.T) {
	team := Team{
		Code: "NYY",
		Pitchers: []Pitcher{
			{Name: "Fourth", ERA: 5.0, WHIP: 1.5, WAR: 0.5},
			{Name: "Best", ERA: 2.0, WHIP: 0.9, WAR: 6.0},
			{Name: "Second", ERA: 3.0, WHIP: 1.1, WAR: 4.0},
			{Name: "Third", ERA: 3.8, WHIP: 1.2, WAR: 2.0},
		},
	}
	tcs := []struct {
		u    float64
		want string
	}{
		{u: 0.0, want: "Best"},
		{u: 0.34, want: "Second"},
		{u: 0.99, want: "Third"},
	}
	for _, tc := range tcs {
		got, err := team.StartingPitcher(tc.u)
		if err != nil {
			t.Fatalf("StartingPitcher(%v): %v", tc.u, err)
		}
		if got.Name != tc.want {
			t.Fatalf("StartingPitcher(%v) = %q, want %q", tc.u, got.Name, tc.want)
		}
	}
}

func TestStartingPitcherNoPitchers(t *testing.T) {
	team := Team{Code: "NYY"}
	if _, err := team.StartingPitcher(0.5); err == nil {
		t.Fatal("expected error for empty staff")
	}
}

func TestTeamValidateRejectsBadRoster(t *testing.T) {
	team := Team{
		Code:     "NYY",
		Batters:  []Batter{{Name: "", OBP: 0.3, SLG: 0.4, OPS: 0.7}},
		Pitchers: []Pitcher{{Name: "P", ERA: 3.0, WHIP: 1.1}},
	}
	if err := team.Validate(); err == nil {
		t.Fatal("expected error for unnamed batter")
	}
}
