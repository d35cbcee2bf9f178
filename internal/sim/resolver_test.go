package sim

import (
	"errors"
	"math"
	"testing"

	"baseball-replay/internal/model"
)

// scriptedSource pops draws from a fixed script. Once the script runs dry it
// returns 0.99, which the at-bat model always reads as an out against the
// clamped on-base ceiling.
type scriptedSource struct {
	draws     []float64
	next      int
	fallbacks int
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.draws) {
		s.fallbacks++
		return 0.99
	}
	v := s.draws[s.next]
	s.next++
	return v
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func mustResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(DefaultParams())
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func contactBatter() model.Batter {
	// Power 0: every deep drive dies at the wall.
	return model.Batter{Name: "Contact", OBP: 0.350, SLG: 0.350, OPS: 0.350}
}

func powerBatter() model.Batter {
	// Power 0.45 saturates the home-run share.
	return model.Batter{Name: "Power", OBP: 0.350, SLG: 0.450, OPS: 0.800}
}

func leaguePitcher() model.Pitcher {
	return model.Pitcher{Name: "League", ERA: 4.00, WHIP: 1.30, WAR: 1, IP: 150}
}

func TestOnBaseProbability(t *testing.T) {
	r := mustResolver(t)
	tcs := []struct {
		name    string
		obp     float64
		whip    float64
		fatigue float64
		want    float64
	}{
		{name: "league pitcher leaves OBP alone", obp: 0.350, whip: 1.30, want: 0.350},
		{name: "fatigue favors the batter", obp: 0.350, whip: 1.30, fatigue: 0.50, want: 0.550},
		{name: "elite pitcher drags OBP down", obp: 0.350, whip: 0.90, want: 0.190},
		{name: "floor clamp", obp: 0.050, whip: 0.80, want: 0.100},
		{name: "ceiling clamp", obp: 0.450, whip: 2.50, want: 0.700},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			batter := model.Batter{Name: "B", OBP: tc.obp, SLG: 0.4, OPS: tc.obp + 0.4}
			pitcher := model.Pitcher{Name: "P", ERA: 4, WHIP: tc.whip}
			got := r.OnBaseProbability(batter, pitcher, tc.fatigue)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("OnBaseProbability = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOnBaseProbabilityMonotoneInFatigue(t *testing.T) {
	r := mustResolver(t)
	batter := contactBatter()
	pitcher := leaguePitcher()
	prev := 0.0
	for f := 0.0; f <= 2.0; f += 0.05 {
		p := r.OnBaseProbability(batter, pitcher, f)
		if p < prev {
			t.Fatalf("probability fell from %v to %v at fatigue %v", prev, p, f)
		}
		if p <= 0 || p >= 1 {
			t.Fatalf("probability %v escaped (0, 1) at fatigue %v", p, f)
		}
		prev = p
	}
}

func TestOnBaseProbabilityMonotoneInOBP(t *testing.T) {
	r := mustResolver(t)
	pitcher := leaguePitcher()
	prev := 0.0
	for obp := 0.0; obp <= 0.6; obp += 0.02 {
		batter := model.Batter{Name: "B", OBP: obp, SLG: 0.4, OPS: obp + 0.4}
		p := r.OnBaseProbability(batter, pitcher, 0)
		if p < prev {
			t.Fatalf("probability fell from %v to %v at OBP %v", prev, p, obp)
		}
		prev = p
	}
}

func TestRobChance(t *testing.T) {
	r := mustResolver(t)
	tcs := []struct {
		defense float64
		want    float64
	}{
		{defense: 150, want: 0.5},
		{defense: -30, want: 0},
		{defense: 0, want: 0},
		{defense: 600, want: 1},
	}
	for _, tc := range tcs {
		if got := r.RobChance(tc.defense); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("RobChance(%v) = %v, want %v", tc.defense, got, tc.want)
		}
	}
}

func TestBucketsPartitionTheDraw(t *testing.T) {
	r := mustResolver(t)
	tcs := []struct {
		name   string
		batter model.Batter
		want   [5]float64
	}{
		{
			name:   "no power means no home runs",
			batter: contactBatter(),
			want:   [5]float64{0.225, 0.755, 0.975250, 1, 1},
		},
		{
			name:   "saturated power fills the deep zone",
			batter: powerBatter(),
			want:   [5]float64{0.225, 0.755, 0.895250, 0.920, 1},
		},
		{
			name:   "middling power splits it",
			batter: model.Batter{Name: "Mid", OBP: 0.320, SLG: 0.500, OPS: 0.500}, // power 0.18
			want:   [5]float64{0.225, 0.755, 0.939250, 0.964, 1},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := r.buckets(tc.batter)
			prev := 0.0
			for i, b := range got {
				if math.Abs(b.threshold-tc.want[i]) > 1e-9 {
					t.Fatalf("threshold[%d] (%s) = %v, want %v", i, b.outcome, b.threshold, tc.want[i])
				}
				if b.threshold < prev {
					t.Fatalf("thresholds not monotone at %d", i)
				}
				prev = b.threshold
			}
			if got[4].threshold != 1 {
				t.Fatalf("final threshold = %v, want exactly 1", got[4].threshold)
			}
		})
	}
}

func TestResolveDrawOrder(t *testing.T) {
	r := mustResolver(t)
	tcs := []struct {
		name        string
		batter      model.Batter
		defense     float64
		draws       []float64
		wantOutcome model.Outcome
		wantRobbed  bool
		wantDraws   int
	}{
		{
			name:        "miss is an out after one draw",
			batter:      contactBatter(),
			draws:       []float64{0.90},
			wantOutcome: model.Out,
			wantDraws:   1,
		},
		{
			name:        "walks skip the robbery draw",
			batter:      contactBatter(),
			defense:     150,
			draws:       []float64{0.10, 0.10},
			wantOutcome: model.Walk,
			wantDraws:   2,
		},
		{
			name:        "clean single against a live defense",
			batter:      contactBatter(),
			defense:     150,
			draws:       []float64{0.10, 0.50, 0.90},
			wantOutcome: model.Single,
			wantDraws:   3,
		},
		{
			name:        "single robbed",
			batter:      contactBatter(),
			defense:     150,
			draws:       []float64{0.10, 0.50, 0.20},
			wantOutcome: model.Out,
			wantRobbed:  true,
			wantDraws:   3,
		},
		{
			name:        "home run robbed at the wall",
			batter:      powerBatter(),
			defense:     150,
			draws:       []float64{0.10, 0.95, 0.20},
			wantOutcome: model.Out,
			wantRobbed:  true,
			wantDraws:   3,
		},
		{
			name:        "hopeless defense skips the robbery draw",
			batter:      contactBatter(),
			defense:     0,
			draws:       []float64{0.10, 0.50},
			wantOutcome: model.Single,
			wantDraws:   2,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{draws: tc.draws}
			outcome, robbed, err := r.Resolve(tc.batter, leaguePitcher(), 0, tc.defense, src)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if outcome != tc.wantOutcome || robbed != tc.wantRobbed {
				t.Fatalf("Resolve = (%s, %v), want (%s, %v)", outcome, robbed, tc.wantOutcome, tc.wantRobbed)
			}
			if src.next != tc.wantDraws || src.fallbacks != 0 {
				t.Fatalf("consumed %d draws (%d fallbacks), want %d", src.next, src.fallbacks, tc.wantDraws)
			}
		})
	}
}

func TestResolveRejectsBrokenParams(t *testing.T) {
	p := DefaultParams()
	p.WalkRate = math.NaN()
	r := &Resolver{params: p}
	src := &scriptedSource{draws: []float64{0.10, 0.10}}
	_, _, err := r.Resolve(contactBatter(), leaguePitcher(), 0, 0, src)
	if !errors.Is(err, ErrProbabilityBounds) {
		t.Fatalf("err = %v, want ErrProbabilityBounds", err)
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params rejected: %v", err)
	}

	tcs := []struct {
		name string
		mut  func(*Params)
	}{
		{name: "NaN rate", mut: func(p *Params) { p.WalkRate = math.NaN() }},
		{name: "shares out of order", mut: func(p *Params) { p.SingleRate = 0.2 }},
		{name: "ceiling above one", mut: func(p *Params) { p.OnBaseCeil = 1.2 }},
		{name: "floor above ceiling", mut: func(p *Params) { p.OnBaseFloor = 0.9 }},
		{name: "zero divisor", mut: func(p *Params) { p.DefenseDivisor = 0 }},
		{name: "triple share above one", mut: func(p *Params) { p.TripleShare = 1.5 }},
		{name: "negative fatigue step", mut: func(p *Params) { p.FatigueStep = -0.1 }},
	}
	for _, tc := range tcs {
		p := DefaultParams()
		tc.mut(&p)
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
