package sim

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// WritePlaysCSV writes the play-by-play to path, one row per plate
// appearance.
func WritePlaysCSV(path string, plays []PlayEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"inning",
		"half",
		"batting_team",
		"batter",
		"pitcher",
		"outcome",
		"robbed",
		"runs_scored",
		"scored_by",
		"away_score",
		"home_score",
		"bases",
		"outs",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range plays {
		row := []string{
			strconv.Itoa(p.Index),
			strconv.Itoa(p.Inning),
			string(p.Half),
			p.BattingTeam,
			p.Batter,
			p.Pitcher,
			p.Outcome.String(),
			strconv.FormatBool(p.Robbed),
			strconv.Itoa(p.RunsScored),
			strings.Join(p.ScoredBy, "; "),
			strconv.Itoa(p.AwayScore),
			strconv.Itoa(p.HomeScore),
			p.Bases,
			strconv.Itoa(p.Outs),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
