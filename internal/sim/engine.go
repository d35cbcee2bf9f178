package sim

import (
	"errors"
	"fmt"

	"baseball-replay/internal/model"
)

const (
	// regulationInnings is the earliest inning a decided game can end.
	regulationInnings = 9
	// DefaultMaxInnings is the safety limit on extra innings. The longest
	// game in league history went 26 innings; a game still tied past this
	// limit is treated as a runaway simulation, not a ballgame.
	DefaultMaxInnings = 30
)

// ErrDiverged flags a simulation that ran past its inning safety limit.
var ErrDiverged = errors.New("simulation diverged")

// DivergenceError reports the state of a game that could not reach a
// decision within the inning limit.
type DivergenceError struct {
	Limit     int
	AwayScore int
	HomeScore int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("game undecided after %d innings (away %d, home %d)",
		e.Limit, e.AwayScore, e.HomeScore)
}

func (e *DivergenceError) Unwrap() error { return ErrDiverged }

// GameConfig is the canonical "inputs to a game" object.
type GameConfig struct {
	Away model.Team
	Home model.Team

	// Rule selects baserunning; empty means RuleHold.
	Rule model.ScoringRule

	// Params tunes the at-bat model; the zero value means DefaultParams.
	Params Params

	// Source supplies randomness; nil means the crypto-backed default.
	// Pass a seeded source to make the whole game replayable.
	Source RandomSource

	// MaxInnings caps game length; 0 means DefaultMaxInnings.
	MaxInnings int

	// Sink, when set, observes every play and half-inning.
	Sink Sink
}

type teamState struct {
	team     model.Team
	lineup   []model.Batter
	cursor   int
	pitcher  model.Pitcher
	fatigue  float64
	runs     int
	batting  []BattingLine
	pitching PitchingLine
}

func newTeamState(team model.Team, starterPick float64) (*teamState, error) {
	pitcher, err := team.StartingPitcher(starterPick)
	if err != nil {
		return nil, err
	}
	lineup := team.StartingLineup()
	batting := make([]BattingLine, len(lineup))
	for i, b := range lineup {
		batting[i].Name = b.Name
	}
	return &teamState{
		team:     team,
		lineup:   lineup,
		pitcher:  pitcher,
		batting:  batting,
		pitching: PitchingLine{Pitcher: pitcher.Name},
	}, nil
}

// Engine simulates one game from first pitch to the final out.
type Engine struct {
	rule       model.ScoringRule
	params     Params
	maxInnings int
	resolver   *Resolver
	rng        RandomSource
	sink       Sink

	away *teamState
	home *teamState

	inning int
	half   Half
	outs   int
	bases  model.Bases

	plays  []PlayEvent
	halves []HalfInningEvent

	done bool
}

func NewEngine(cfg GameConfig) (*Engine, error) {
	if err := cfg.Away.Validate(); err != nil {
		return nil, fmt.Errorf("away team: %w", err)
	}
	if err := cfg.Home.Validate(); err != nil {
		return nil, fmt.Errorf("home team: %w", err)
	}
	if cfg.Away.Code == cfg.Home.Code {
		return nil, fmt.Errorf("%s cannot play itself", cfg.Home.Code)
	}

	rule := cfg.Rule
	if rule == "" {
		rule = model.RuleHold
	}
	if rule != model.RuleHold && rule != model.RuleAggressive {
		return nil, fmt.Errorf("unknown scoring rule %q", rule)
	}

	params := cfg.Params
	if params == (Params{}) {
		params = DefaultParams()
	}
	resolver, err := NewResolver(params)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}

	maxInnings := cfg.MaxInnings
	if maxInnings == 0 {
		maxInnings = DefaultMaxInnings
	}
	if maxInnings < 1 {
		return nil, fmt.Errorf("MaxInnings must be >= 1, got %d", maxInnings)
	}

	rng := cfg.Source
	if rng == nil {
		rng = NewSource()
	}

	// Starter picks consume the first two draws, away then home, so a
	// seeded game is reproducible end to end.
	away, err := newTeamState(cfg.Away, rng.Float64())
	if err != nil {
		return nil, fmt.Errorf("away team: %w", err)
	}
	home, err := newTeamState(cfg.Home, rng.Float64())
	if err != nil {
		return nil, fmt.Errorf("home team: %w", err)
	}

	return &Engine{
		rule:       rule,
		params:     params,
		maxInnings: maxInnings,
		resolver:   resolver,
		rng:        rng,
		sink:       cfg.Sink,
		away:       away,
		home:       home,
		inning:     1,
		half:       HalfTop,
		bases:      model.EmptyBases(),
	}, nil
}

// Run plays the game to completion and assembles the result.
// It may be called once per Engine.
func (e *Engine) Run() (*Result, error) {
	if e.done {
		return nil, errors.New("game already played")
	}
	e.done = true

	for {
		walkOff, err := e.playHalf()
		if err != nil {
			return nil, err
		}
		e.endHalf()
		if walkOff {
			break
		}

		if e.half == HalfTop {
			// Home ahead after the top of the 9th or later wins
			// without batting.
			if e.inning >= regulationInnings && e.home.runs > e.away.runs {
				break
			}
			e.half = HalfBottom
			continue
		}

		if e.inning >= regulationInnings && e.home.runs != e.away.runs {
			break
		}
		e.inning++
		e.half = HalfTop
		if e.inning > e.maxInnings {
			return nil, &DivergenceError{
				Limit:     e.maxInnings,
				AwayScore: e.away.runs,
				HomeScore: e.home.runs,
			}
		}
	}

	return e.result(), nil
}

// playHalf bats one side until the third out, or until a walk-off run in the
// bottom of the 9th or later. It reports whether the game ended on a
// walk-off.
func (e *Engine) playHalf() (bool, error) {
	batting, fielding := e.sides()

	for e.outs < 3 {
		slot := batting.cursor
		batter := batting.lineup[slot]

		outcome, robbed, err := e.resolver.Resolve(batter, fielding.pitcher, fielding.fatigue, fielding.team.Defense, e.rng)
		if err != nil {
			return false, fmt.Errorf("%s of inning %d, %s batting: %w", e.half, e.inning, batting.team.Code, err)
		}

		next, scoredSlots := e.bases.Advance(outcome, slot, e.rule)
		e.bases = next

		line := &batting.batting[slot]
		switch {
		case outcome == model.Walk:
			line.Walks++
			fielding.pitching.WalksAllowed++
		case outcome.IsHit():
			line.AtBats++
			line.Hits++
			fielding.pitching.HitsAllowed++
			switch outcome {
			case model.Double:
				line.Doubles++
			case model.Triple:
				line.Triples++
			case model.HomeRun:
				line.HomeRuns++
			}
		default:
			line.AtBats++
			e.outs++
			fielding.pitching.OutsRecorded++
			if robbed {
				fielding.pitching.Robberies++
			}
		}

		runs := len(scoredSlots)
		line.RBI += runs
		var scoredBy []string
		if runs > 0 {
			scoredBy = make([]string, 0, runs)
			for _, s := range scoredSlots {
				batting.batting[s].Runs++
				scoredBy = append(scoredBy, batting.lineup[s].Name)
			}
			batting.runs += runs
			fielding.pitching.RunsAllowed += runs
		}

		ev := PlayEvent{
			Index:       len(e.plays),
			Inning:      e.inning,
			Half:        e.half,
			BattingTeam: batting.team.Code,
			Batter:      batter.Name,
			Pitcher:     fielding.pitcher.Name,
			Outcome:     outcome,
			Robbed:      robbed,
			RunsScored:  runs,
			ScoredBy:    scoredBy,
			AwayScore:   e.away.runs,
			HomeScore:   e.home.runs,
			Bases:       e.bases.String(),
			Outs:        e.outs,
		}
		e.plays = append(e.plays, ev)
		if e.sink != nil {
			e.sink.OnPlay(ev)
		}

		batting.cursor = (batting.cursor + 1) % len(batting.lineup)

		if e.half == HalfBottom && e.inning >= regulationInnings && e.home.runs > e.away.runs {
			return true, nil
		}
	}
	return false, nil
}

func (e *Engine) sides() (batting, fielding *teamState) {
	if e.half == HalfTop {
		return e.away, e.home
	}
	return e.home, e.away
}

// endHalf charges the fielding pitcher's fatigue, emits the half-inning
// event, and clears the bases for the next half.
func (e *Engine) endHalf() {
	_, fielding := e.sides()
	fielding.fatigue += e.params.FatigueStep

	ev := HalfInningEvent{
		Inning:    e.inning,
		Half:      e.half,
		Pitcher:   fielding.pitcher.Name,
		Fatigue:   fielding.fatigue,
		AwayScore: e.away.runs,
		HomeScore: e.home.runs,
	}
	e.halves = append(e.halves, ev)
	if e.sink != nil {
		e.sink.OnHalfInning(ev)
	}

	e.outs = 0
	e.bases = model.EmptyBases()
}

func (e *Engine) result() *Result {
	winner := e.home.team.Code
	if e.away.runs > e.home.runs {
		winner = e.away.team.Code
	}
	return &Result{
		AwayCode:     e.away.team.Code,
		HomeCode:     e.home.team.Code,
		AwayScore:    e.away.runs,
		HomeScore:    e.home.runs,
		Winner:       winner,
		Innings:      e.inning,
		Rule:         e.rule,
		Plays:        e.plays,
		HalfInnings:  e.halves,
		AwayBatting:  e.away.batting,
		HomeBatting:  e.home.batting,
		AwayPitching: e.away.pitching,
		HomePitching: e.home.pitching,
	}
}
