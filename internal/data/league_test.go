package data

import (
	"reflect"
	"testing"

	"baseball-replay/internal/model"
)

func TestBuildLeague(t *testing.T) {
	batters := []model.Batter{
		{Name: "A", Team: "NYY", OBP: 0.35, SLG: 0.45, OPS: 0.80, WAR: 3},
		{Name: "B", Team: "BOS", OBP: 0.33, SLG: 0.40, OPS: 0.73, WAR: 2},
		{Name: "Traded", Team: "2TM", OBP: 0.30, SLG: 0.40, OPS: 0.70, WAR: 1},
		{Name: "Ghost", Team: "", OBP: 0.30, SLG: 0.40, OPS: 0.70, WAR: 1},
	}
	pitchers := []model.Pitcher{
		{Name: "P1", Team: "NYY", ERA: 3.0, WHIP: 1.1, WAR: 4, IP: 150},
		{Name: "P2", Team: "3TM", ERA: 3.5, WHIP: 1.2, WAR: 2, IP: 120},
	}
	defense := map[string]float64{"NYY": 20, "BOS": -5, "SEA": 99}

	league := BuildLeague(batters, pitchers, defense)

	if got, want := league.Codes(), []string{"BOS", "NYY"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}
	nyy, ok := league.Team("NYY")
	if !ok {
		t.Fatal("NYY missing")
	}
	if len(nyy.Batters) != 1 || len(nyy.Pitchers) != 1 || nyy.Defense != 20 {
		t.Fatalf("NYY roster wrong: %+v", nyy)
	}
	bos, _ := league.Team("BOS")
	if bos.Defense != -5 {
		t.Fatalf("BOS defense = %v, want -5", bos.Defense)
	}
	if _, ok := league.Team("SEA"); ok {
		t.Fatal("defense-only team should not exist")
	}
	if league.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", league.Len())
	}
}

func TestMatchup(t *testing.T) {
	league := BuildLeague(
		[]model.Batter{
			{Name: "A", Team: "NYY", OBP: 0.35, SLG: 0.45, OPS: 0.80},
			{Name: "B", Team: "BOS", OBP: 0.33, SLG: 0.40, OPS: 0.73},
		},
		[]model.Pitcher{
			{Name: "P1", Team: "NYY", ERA: 3.0, WHIP: 1.1, IP: 150},
			{Name: "P2", Team: "BOS", ERA: 3.8, WHIP: 1.3, IP: 140},
		},
		nil,
	)

	away, home, err := league.Matchup("NYY", "BOS")
	if err != nil {
		t.Fatalf("Matchup: %v", err)
	}
	if away.Code != "NYY" || home.Code != "BOS" {
		t.Fatalf("matchup = %s at %s, want NYY at BOS", away.Code, home.Code)
	}
	if _, _, err := league.Matchup("NYY", "LAD"); err == nil {
		t.Fatal("expected error for unknown home team")
	}
}

func TestLoadLeague(t *testing.T) {
	batting := writeCSV(t, "batting.csv", `Player,Team,OBP,SLG,OPS,WAR
Hitter One,NYY,0.350,0.450,0.800,3.0
Hitter Two,BOS,0.330,0.410,0.740,2.0
`)
	pitching := writeCSV(t, "pitching.csv", `Player,Team,ERA,WHIP,WAR,IP
Arm One,NYY,3.10,1.05,4.0,180
Arm Two,BOS,3.90,1.25,2.0,160
`)
	fielding := writeCSV(t, "fielding.csv", `Team,Rdrs
NYY,15
BOS,-3
`)

	league, err := LoadLeague(batting, pitching, fielding)
	if err != nil {
		t.Fatalf("LoadLeague: %v", err)
	}
	if league.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", league.Len())
	}
	nyy, _ := league.Team("NYY")
	if nyy.Defense != 15 || nyy.Batters[0].Name != "Hitter One" {
		t.Fatalf("NYY loaded wrong: %+v", nyy)
	}
}

func TestLookupTeam(t *testing.T) {
	info, ok := LookupTeam("NYY")
	if !ok || info.Name != "New York Yankees" || info.Stadium != "Yankee Stadium" {
		t.Fatalf("LookupTeam(NYY) = %+v, %v", info, ok)
	}
	if _, ok := LookupTeam("ZZZ"); ok {
		t.Fatal("unknown code should miss")
	}
	if got := DisplayName("ZZZ"); got != "ZZZ" {
		t.Fatalf("DisplayName(ZZZ) = %q, want the code back", got)
	}
}
