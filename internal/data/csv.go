package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"baseball-replay/internal/model"
)

const (
	// minInningsPitched filters out position players moonlighting on the
	// mound and arms too rarely used to rate.
	minInningsPitched = 20.0

	invalidERA  = 99.99
	invalidWHIP = 99.99
)

// LoadBatters parses a batting export. A row with any unparseable stat cell
// loads with a zeroed stat line instead of failing the file.
func LoadBatters(path string) ([]model.Batter, error) {
	t, err := readTable(path, "Player", "Team", "OBP", "SLG", "OPS", "WAR")
	if err != nil {
		return nil, err
	}
	batters := make([]model.Batter, 0, len(t.rows))
	for _, row := range t.rows {
		b := model.Batter{
			Name: cleanName(t.get(row, "Player")),
			Team: t.get(row, "Team"),
		}
		obp, err1 := strconv.ParseFloat(t.get(row, "OBP"), 64)
		slg, err2 := strconv.ParseFloat(t.get(row, "SLG"), 64)
		ops, err3 := strconv.ParseFloat(t.get(row, "OPS"), 64)
		war, err4 := strconv.ParseFloat(t.get(row, "WAR"), 64)
		if err1 == nil && err2 == nil && err3 == nil && err4 == nil {
			b.OBP, b.SLG, b.OPS, b.WAR = obp, slg, ops, war
		}
		batters = append(batters, b)
	}
	return batters, nil
}

// LoadPitchers parses a pitching export, keeping only pitchers past the
// innings threshold. A row with unparseable rate stats loads with sentinel
// ratings that keep it out of any rotation.
func LoadPitchers(path string) ([]model.Pitcher, error) {
	t, err := readTable(path, "Player", "Team", "ERA", "WHIP", "WAR", "IP")
	if err != nil {
		return nil, err
	}
	pitchers := make([]model.Pitcher, 0, len(t.rows))
	for _, row := range t.rows {
		ip, err := strconv.ParseFloat(t.get(row, "IP"), 64)
		if err != nil {
			ip = 0
		}
		if ip <= minInningsPitched {
			continue
		}
		p := model.Pitcher{
			Name: cleanName(t.get(row, "Player")),
			Team: t.get(row, "Team"),
			IP:   ip,
		}
		era, err1 := strconv.ParseFloat(t.get(row, "ERA"), 64)
		whip, err2 := strconv.ParseFloat(t.get(row, "WHIP"), 64)
		war, err3 := strconv.ParseFloat(t.get(row, "WAR"), 64)
		if err1 == nil && err2 == nil && err3 == nil {
			p.ERA, p.WHIP, p.WAR = era, whip, war
		} else {
			p.ERA, p.WHIP, p.WAR = invalidERA, invalidWHIP, 0
		}
		pitchers = append(pitchers, p)
	}
	return pitchers, nil
}

// LoadDefense parses a fielding export into runs saved by team code.
// Multiple rows for one club accumulate; unparseable cells count as zero.
func LoadDefense(path string) (map[string]float64, error) {
	t, err := readTable(path, "Team", "Rdrs")
	if err != nil {
		return nil, err
	}
	out := map[string]float64{}
	for _, row := range t.rows {
		code := t.get(row, "Team")
		if code == "" {
			continue
		}
		saved, err := strconv.ParseFloat(t.get(row, "Rdrs"), 64)
		if err != nil {
			saved = 0
		}
		out[code] += saved
	}
	return out, nil
}

type table struct {
	header map[string]int
	rows   [][]string
}

func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	header := map[string]int{}
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := header[name]; !ok {
			return nil, fmt.Errorf("%s: missing %q column", path, name)
		}
	}
	return &table{header: header, rows: records[1:]}, nil
}

func (t *table) get(row []string, col string) string {
	i, ok := t.header[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cleanName drops the award and handedness markers the exports append to
// player names.
func cleanName(s string) string {
	return strings.TrimSpace(strings.Trim(s, "*#"))
}
