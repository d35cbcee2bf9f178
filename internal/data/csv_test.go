package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadBatters(t *testing.T) {
	path := writeCSV(t, "batting.csv", `Player,Team,OBP,SLG,OPS,WAR
Aaron Judge*,NYY,0.457,0.701,1.158,9.7
Shy Rookie#,BOS,0.310,0.425,0.735,1.2
Part Timer,NYY,,0.400,0.700,0.5
`)
	batters, err := LoadBatters(path)
	if err != nil {
		t.Fatalf("LoadBatters: %v", err)
	}
	if len(batters) != 3 {
		t.Fatalf("batters = %d, want 3", len(batters))
	}
	if batters[0].Name != "Aaron Judge" || batters[1].Name != "Shy Rookie" {
		t.Fatalf("name markers not cleaned: %q, %q", batters[0].Name, batters[1].Name)
	}
	if math.Abs(batters[0].OBP-0.457) > 1e-9 || math.Abs(batters[0].WAR-9.7) > 1e-9 {
		t.Fatalf("stats misparsed: %+v", batters[0])
	}
	// One blank cell zeroes the whole line.
	if batters[2].OBP != 0 || batters[2].SLG != 0 || batters[2].OPS != 0 || batters[2].WAR != 0 {
		t.Fatalf("bad row not zeroed: %+v", batters[2])
	}
}

func TestLoadBattersMissingColumn(t *testing.T) {
	path := writeCSV(t, "batting.csv", `Player,Team,OBP,SLG,WAR
Somebody,NYY,0.3,0.4,1.0
`)
	if _, err := LoadBatters(path); err == nil {
		t.Fatal("expected error for missing OPS column")
	}
}

func TestLoadPitchers(t *testing.T) {
	path := writeCSV(t, "pitching.csv", `Player,Team,ERA,WHIP,WAR,IP
Workhorse,NYY,2.95,1.02,6.1,201.1
Cup of Coffee,NYY,1.50,0.80,0.4,12.0
Mystery Arm,BOS,bad,1.10,2.0,88.2
`)
	pitchers, err := LoadPitchers(path)
	if err != nil {
		t.Fatalf("LoadPitchers: %v", err)
	}
	if len(pitchers) != 2 {
		t.Fatalf("pitchers = %d, want the 12-inning arm filtered", len(pitchers))
	}
	if pitchers[0].Name != "Workhorse" || math.Abs(pitchers[0].ERA-2.95) > 1e-9 {
		t.Fatalf("stats misparsed: %+v", pitchers[0])
	}
	// Unparseable rate stats keep the arm out of any rotation.
	if pitchers[1].ERA != invalidERA || pitchers[1].WHIP != invalidWHIP || pitchers[1].WAR != 0 {
		t.Fatalf("bad row not sanitized: %+v", pitchers[1])
	}
	if math.Abs(pitchers[1].IP-88.2) > 1e-9 {
		t.Fatalf("IP should survive sanitizing: %+v", pitchers[1])
	}
}

func TestLoadDefenseAccumulates(t *testing.T) {
	path := writeCSV(t, "fielding.csv", `Team,Rdrs
NYY,31
NYY,4
BOS,-12
COL,junk
`)
	defense, err := LoadDefense(path)
	if err != nil {
		t.Fatalf("LoadDefense: %v", err)
	}
	if math.Abs(defense["NYY"]-35) > 1e-9 {
		t.Fatalf("NYY = %v, want rows summed to 35", defense["NYY"])
	}
	if math.Abs(defense["BOS"]+12) > 1e-9 {
		t.Fatalf("BOS = %v, want -12", defense["BOS"])
	}
	if defense["COL"] != 0 {
		t.Fatalf("COL = %v, want junk to count as 0", defense["COL"])
	}
}

func TestReadTableMissingFile(t *testing.T) {
	if _, err := LoadBatters(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
