package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"baseball-replay/internal/analysis"
	"baseball-replay/internal/config"
	"baseball-replay/internal/data"
	"baseball-replay/internal/model"
	"baseball-replay/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "play":
		cmdPlay(os.Args[2:])
	case "teams":
		cmdTeams(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli play --config examples/config.yaml --away NYY --home BOS --seed 42 --out results/plays.csv")
	fmt.Println("  cli teams --config examples/config.yaml")
	fmt.Println("  cli rank --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - play simulates one game and prints the play-by-play, line score and box score")
	fmt.Println("  - play prompts for either team left unset by --away/--home and the config")
	fmt.Println("  - a zero seed plays a fresh game every run; any other seed replays the same game")
	fmt.Println("  - rank scores every loaded team on lineup, rotation and defense")
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	away := fs.String("away", "", "Away team code (overrides config)")
	home := fs.String("home", "", "Home team code (overrides config)")
	seed := fs.Uint64("seed", 0, "Random seed (0 = non-reproducible, overrides config)")
	rule := fs.String("rule", "", "Scoring rule: hold or aggressive (overrides config)")
	outPath := fs.String("out", "", "Optional: write play-by-play CSV to this path")
	quiet := fs.Bool("quiet", false, "Skip the play-by-play, print only the line and box scores")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	league, err := data.LoadLeague(cfg.Data.BattingFile, cfg.Data.PitchingFile, cfg.Data.FieldingFile)
	if err != nil {
		panic(err)
	}

	awayCode, homeCode := *away, *home
	if awayCode == "" {
		awayCode = cfg.Game.Away
	}
	if homeCode == "" {
		homeCode = cfg.Game.Home
	}
	awayCode = strings.ToUpper(awayCode)
	homeCode = strings.ToUpper(homeCode)
	// Any side still unset falls back to an interactive pick.
	if awayCode == "" || homeCode == "" {
		awayCode, homeCode = promptMatchup(league, awayCode, homeCode)
	}
	awayTeam, homeTeam, err := league.Matchup(awayCode, homeCode)
	if err != nil {
		panic(err)
	}

	ruleStr := *rule
	if ruleStr == "" {
		ruleStr = cfg.Game.ScoringRule
	}
	scoringRule, err := model.ParseScoringRule(ruleStr)
	if err != nil {
		panic(err)
	}

	gameSeed := *seed
	if gameSeed == 0 {
		gameSeed = cfg.Game.Seed
	}
	var source sim.RandomSource
	if gameSeed != 0 {
		source = sim.NewSeededSource(gameSeed)
	}

	engine, err := sim.NewEngine(sim.GameConfig{
		Away:       awayTeam,
		Home:       homeTeam,
		Rule:       scoringRule,
		Params:     cfg.Game.Params.ToSimParams(),
		Source:     source,
		MaxInnings: cfg.Game.MaxInnings,
	})
	if err != nil {
		panic(err)
	}
	res, err := engine.Run()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s at %s (%s)\n", data.DisplayName(res.AwayCode), data.DisplayName(res.HomeCode), data.Stadium(res.HomeCode))
	if gameSeed != 0 {
		fmt.Printf("rule=%s seed=%d\n", res.Rule, gameSeed)
	} else {
		fmt.Printf("rule=%s\n", res.Rule)
	}
	fmt.Println("")

	if !*quiet {
		printPlays(res.Plays)
		fmt.Println("")
	}
	printLineScore(res)
	fmt.Println("")
	printBoxScore(res.AwayCode, res.AwayBatting, res.AwayPitching)
	fmt.Println("")
	printBoxScore(res.HomeCode, res.HomeBatting, res.HomePitching)
	fmt.Println("")
	fmt.Printf("Final: %s %d, %s %d in %d innings. %s win.\n",
		res.AwayCode, res.AwayScore, res.HomeCode, res.HomeScore, res.Innings, res.Winner)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WritePlaysCSV(*outPath, res.Plays); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d plays to %s\n", len(res.Plays), *outPath)
	}
}

// promptMatchup asks on stdin for any side not already set by flag or config.
func promptMatchup(league *data.League, awayCode, homeCode string) (string, string) {
	fmt.Printf("Available teams: %s\n", strings.Join(league.Codes(), " "))
	in := bufio.NewScanner(os.Stdin)
	for awayCode == "" {
		awayCode = promptTeam(in, league, "Away team: ")
	}
	for homeCode == "" {
		homeCode = promptTeam(in, league, "Home team: ")
	}
	return awayCode, homeCode
}

func promptTeam(in *bufio.Scanner, league *data.League, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		fmt.Println("\nno team chosen")
		os.Exit(2)
	}
	code := strings.ToUpper(strings.TrimSpace(in.Text()))
	if _, ok := league.Team(code); !ok {
		if code != "" {
			fmt.Printf("unknown team %q\n", code)
		}
		return ""
	}
	return code
}

func cmdTeams(args []string) {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	league, err := data.LoadLeague(cfg.Data.BattingFile, cfg.Data.PitchingFile, cfg.Data.FieldingFile)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-5s %-24s %-28s %8s %9s %8s\n", "code", "team", "stadium", "batters", "pitchers", "defense")
	for _, code := range league.Codes() {
		team, _ := league.Team(code)
		fmt.Printf("%-5s %-24s %-28s %8d %9d %8.0f\n",
			code,
			data.DisplayName(code),
			data.Stadium(code),
			len(team.Batters),
			len(team.Pitchers),
			team.Defense,
		)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	league, err := data.LoadLeague(cfg.Data.BattingFile, cfg.Data.PitchingFile, cfg.Data.FieldingFile)
	if err != nil {
		panic(err)
	}

	teams := make([]model.Team, 0, league.Len())
	for _, code := range league.Codes() {
		team, _ := league.Team(code)
		teams = append(teams, team)
	}

	ranked := analysis.Rank(teams)
	fmt.Printf("%-4s %-5s %-24s %-8s %-8s %-8s %-8s %-8s\n", "rank", "team", "name", "ops", "lineup", "era", "rotation", "overall")
	for _, r := range ranked {
		fmt.Printf(
			"%-4d %-5s %-24s %-8.3f %-8.1f %-8.2f %-8.1f %-8.1f\n",
			r.Rank,
			r.Code,
			data.DisplayName(r.Code),
			r.LineupOPS,
			r.LineupOverall,
			r.RotationERA,
			r.RotationOverall,
			r.Overall,
		)
	}
}

func printPlays(plays []sim.PlayEvent) {
	for _, p := range plays {
		mark := fmt.Sprintf("%s%d", strings.ToUpper(string(p.Half)[:1]), p.Inning)
		note := ""
		if p.Robbed {
			note = " (robbed)"
		} else if p.RunsScored > 0 {
			note = fmt.Sprintf(" (%d in: %s)", p.RunsScored, strings.Join(p.ScoredBy, ", "))
		}
		fmt.Printf("%-4s %-24s %-9s%s [%d-%d]\n", mark, p.Batter, p.Outcome, note, p.AwayScore, p.HomeScore)
	}
}

// printLineScore rebuilds per-inning runs from the cumulative half-inning
// scores. A skipped bottom of the ninth prints as X.
func printLineScore(res *sim.Result) {
	awayRuns := make(map[int]int)
	homeRuns := make(map[int]int)
	prevAway, prevHome := 0, 0
	for _, h := range res.HalfInnings {
		if h.Half == sim.HalfTop {
			awayRuns[h.Inning] = h.AwayScore - prevAway
			prevAway = h.AwayScore
		} else {
			homeRuns[h.Inning] = h.HomeScore - prevHome
			prevHome = h.HomeScore
		}
	}

	header := "     "
	for i := 1; i <= res.Innings; i++ {
		header += fmt.Sprintf("%3d", i)
	}
	fmt.Printf("%s    R   H\n", header)

	awayRow := fmt.Sprintf("%-5s", res.AwayCode)
	homeRow := fmt.Sprintf("%-5s", res.HomeCode)
	for i := 1; i <= res.Innings; i++ {
		awayRow += fmt.Sprintf("%3d", awayRuns[i])
		if runs, played := homeRuns[i]; played {
			homeRow += fmt.Sprintf("%3d", runs)
		} else {
			homeRow += fmt.Sprintf("%3s", "X")
		}
	}
	fmt.Printf("%s  %3d %3d\n", awayRow, res.AwayScore, sim.Hits(res.AwayBatting))
	fmt.Printf("%s  %3d %3d\n", homeRow, res.HomeScore, sim.Hits(res.HomeBatting))
}

func printBoxScore(code string, batting []sim.BattingLine, pitching sim.PitchingLine) {
	fmt.Printf("%s batting\n", code)
	fmt.Printf("%-24s %3s %3s %3s %3s %3s %3s %4s %3s\n", "batter", "ab", "r", "h", "2b", "3b", "hr", "rbi", "bb")
	for _, b := range batting {
		fmt.Printf("%-24s %3d %3d %3d %3d %3d %3d %4d %3d\n",
			b.Name, b.AtBats, b.Runs, b.Hits, b.Doubles, b.Triples, b.HomeRuns, b.RBI, b.Walks)
	}
	fmt.Printf("pitching: %s  %.1f ip, %d h, %d bb, %d r, %d robbed\n",
		pitching.Pitcher,
		pitching.InningsPitched(),
		pitching.HitsAllowed,
		pitching.WalksAllowed,
		pitching.RunsAllowed,
		pitching.Robberies,
	)
}
