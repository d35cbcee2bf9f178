package sim

import (
	"errors"
	"fmt"
	"math"

	"baseball-replay/internal/model"
)

// ErrProbabilityBounds flags a computed probability outside [0, 1]. It marks
// a defect in the parameters or the stat line, never a playable outcome.
var ErrProbabilityBounds = errors.New("probability out of [0, 1]")

// Params holds the sabermetric tuning of the at-bat model.
// Units:
// - LeagueWHIP: the league-average WHIP baseline
// - WHIPWeight: dampener applied to the pitcher's gap from the baseline
// - OnBaseFloor/OnBaseCeil: clamp on the adjusted on-base probability
// - DefenseDivisor: runs-saved points per unit of robbery chance
// - WalkRate/SingleRate/XBHRate: cumulative shares of on-base events
// - TripleShare: triples' share of the ordinary extra-base zone
// - PowerScale: multiplier turning isolated power into home-run share
// - FatigueStep: WHIP added to a pitcher per half-inning in the field
type Params struct {
	LeagueWHIP     float64
	WHIPWeight     float64
	OnBaseFloor    float64
	OnBaseCeil     float64
	DefenseDivisor float64
	WalkRate       float64
	SingleRate     float64
	XBHRate        float64
	TripleShare    float64
	PowerScale     float64
	FatigueStep    float64
}

// DefaultParams returns the league-calibrated model. The on-base split
// reflects that roughly a quarter of on-base events are walks and just over
// half are singles.
func DefaultParams() Params {
	return Params{
		LeagueWHIP:     1.30,
		WHIPWeight:     0.40,
		OnBaseFloor:    0.100,
		OnBaseCeil:     0.700,
		DefenseDivisor: 300,
		WalkRate:       0.225,
		SingleRate:     0.755,
		XBHRate:        0.92,
		TripleShare:    0.15,
		PowerScale:     2.5,
		FatigueStep:    0.05,
	}
}

func (p Params) Validate() error {
	for _, v := range []float64{
		p.LeagueWHIP, p.WHIPWeight, p.OnBaseFloor, p.OnBaseCeil,
		p.DefenseDivisor, p.WalkRate, p.SingleRate, p.XBHRate,
		p.TripleShare, p.PowerScale, p.FatigueStep,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("params must be finite")
		}
	}
	if p.LeagueWHIP <= 0 {
		return errors.New("LeagueWHIP must be > 0")
	}
	if p.WHIPWeight < 0 {
		return errors.New("WHIPWeight must be >= 0")
	}
	if p.OnBaseFloor <= 0 || p.OnBaseCeil >= 1 || p.OnBaseFloor > p.OnBaseCeil {
		return errors.New("on-base clamp must satisfy 0<OnBaseFloor<=OnBaseCeil<1")
	}
	if p.DefenseDivisor <= 0 {
		return errors.New("DefenseDivisor must be > 0")
	}
	if p.WalkRate <= 0 || p.WalkRate >= p.SingleRate || p.SingleRate >= p.XBHRate || p.XBHRate >= 1 {
		return errors.New("on-base shares must satisfy 0<WalkRate<SingleRate<XBHRate<1")
	}
	if p.TripleShare < 0 || p.TripleShare > 1 {
		return errors.New("TripleShare must be in [0, 1]")
	}
	if p.PowerScale < 0 {
		return errors.New("PowerScale must be >= 0")
	}
	if p.FatigueStep < 0 {
		return errors.New("FatigueStep must be >= 0")
	}
	return nil
}

// Resolver turns a batter/pitcher/defense matchup into a plate-appearance
// outcome. It holds no mutable state; a single Resolver serves any number of
// concurrent games.
type Resolver struct {
	params Params
}

func NewResolver(params Params) (*Resolver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{params: params}, nil
}

// OnBaseProbability adjusts the batter's OBP by the pitcher's distance from
// the league WHIP baseline, fatigue included, and clamps the result so no
// matchup is ever a certainty either way. Higher fatigue always favors the
// batter.
func (r *Resolver) OnBaseProbability(batter model.Batter, pitcher model.Pitcher, fatigue float64) float64 {
	effWHIP := pitcher.WHIP + fatigue
	adjusted := batter.OBP + (effWHIP-r.params.LeagueWHIP)*r.params.WHIPWeight
	return clamp(adjusted, r.params.OnBaseFloor, r.params.OnBaseCeil)
}

// RobChance converts the fielding team's runs-saved rating into the chance a
// hit is taken away. Negative ratings never help the batter beyond zero.
func (r *Resolver) RobChance(defense float64) float64 {
	return clamp(defense/r.params.DefenseDivisor, 0, 1)
}

type bucket struct {
	threshold float64
	outcome   model.Outcome
}

// buckets builds the cumulative outcome table for one batter. The walk and
// single shares are fixed; the extra-base mass is split by the batter's
// isolated power, with the home-run share growing as PowerScale*power and
// the remainder falling to doubles. The final threshold is pinned to 1 so
// the table always covers the whole draw.
func (r *Resolver) buckets(batter model.Batter) [5]bucket {
	p := r.params
	xbhZone := p.XBHRate - p.SingleRate
	powerZone := 1 - p.XBHRate
	hrShare := clamp(batter.Power()*p.PowerScale, 0, 1)

	tripleMass := xbhZone * p.TripleShare
	doubleMass := xbhZone*(1-p.TripleShare) + powerZone*(1-hrShare)

	return [5]bucket{
		{p.WalkRate, model.Walk},
		{p.SingleRate, model.Single},
		{p.SingleRate + doubleMass, model.Double},
		{p.SingleRate + doubleMass + tripleMass, model.Triple},
		{1, model.HomeRun},
	}
}

// Resolve plays out one plate appearance. The draw order is fixed: first the
// on-base draw, then on a reach the outcome-bucket draw, then for hits only
// the robbery draw. robbed reports a hit converted to an out by the defense;
// walks cannot be robbed.
func (r *Resolver) Resolve(batter model.Batter, pitcher model.Pitcher, fatigue, defense float64, rng RandomSource) (outcome model.Outcome, robbed bool, err error) {
	onBase, err := draw(r.OnBaseProbability(batter, pitcher, fatigue), rng)
	if err != nil {
		return model.Out, false, fmt.Errorf("on-base draw: %w", err)
	}
	if !onBase {
		return model.Out, false, nil
	}

	outcome = model.HomeRun
	u := rng.Float64()
	for _, b := range r.buckets(batter) {
		if err := validateProb(b.threshold); err != nil {
			return model.Out, false, fmt.Errorf("%s threshold: %w", b.outcome, err)
		}
		if u < b.threshold {
			outcome = b.outcome
			break
		}
	}

	if outcome.IsHit() {
		saved, err := draw(r.RobChance(defense), rng)
		if err != nil {
			return model.Out, false, fmt.Errorf("robbery draw: %w", err)
		}
		if saved {
			return model.Out, true, nil
		}
	}
	return outcome, false, nil
}

// draw samples a success with probability p. Certain outcomes short-circuit
// without consuming a draw.
func draw(p float64, rng RandomSource) (bool, error) {
	if err := validateProb(p); err != nil {
		return false, err
	}
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	return rng.Float64() < p, nil
}

func validateProb(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %v", ErrProbabilityBounds, p)
	}
	return nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
