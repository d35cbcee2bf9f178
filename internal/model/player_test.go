package model

import (
	"math"
	"testing"
)

func TestBatterOverall(t *testing.T) {
	b := Batter{Name: "Slugger", OBP: 0.400, SLG: 0.600, OPS: 1.000, WAR: 6.0}
	// 50 + 3*6 + 25*1.0
	if got, want := b.Overall(), 93.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Overall() = %v, want %v", got, want)
	}
}

func TestBatterPower(t *testing.T) {
	b := Batter{OBP: 0.350, SLG: 0.500, OPS: 0.850}
	if got, want := b.Power(), 0.5; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Power() = %v, want %v", got, want)
	}
}

func TestPitcherOverall(t *testing.T) {
	p := Pitcher{Name: "Ace", ERA: 2.5, WHIP: 1.0, WAR: 5.0}
	// 50 + 3*5 + 8*(5.5-2.5) + 20*(1.5-1.0)
	if got, want := p.Overall(), 99.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Overall() = %v, want %v", got, want)
	}
}

func TestBatterValidate(t *testing.T) {
	valid := Batter{Name: "OK", OBP: 0.350, SLG: 0.450, OPS: 0.800, WAR: 2.0}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid batter rejected: %v", err)
	}

	tcs := []struct {
		name string
		b    Batter
	}{
		{name: "empty name", b: Batter{OBP: 0.3, SLG: 0.4, OPS: 0.7}},
		{name: "NaN stat", b: Batter{Name: "X", OBP: math.NaN(), SLG: 0.4, OPS: 0.7}},
		{name: "OBP above one", b: Batter{Name: "X", OBP: 1.2, SLG: 0.4, OPS: 1.6}},
		{name: "OPS below OBP", b: Batter{Name: "X", OBP: 0.35, SLG: 0.4, OPS: 0.2}},
	}
	for _, tc := range tcs {
		if err := tc.b.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestPitcherValidate(t *testing.T) {
	valid := Pitcher{Name: "OK", ERA: 3.5, WHIP: 1.2, WAR: 1.0, IP: 150}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid pitcher rejected: %v", err)
	}

	tcs := []struct {
		name string
		p    Pitcher
	}{
		{name: "empty name", p: Pitcher{ERA: 3.5, WHIP: 1.2}},
		{name: "negative ERA", p: Pitcher{Name: "X", ERA: -1, WHIP: 1.2}},
		{name: "negative WHIP", p: Pitcher{Name: "X", ERA: 3.5, WHIP: -0.5}},
		{name: "infinite WAR", p: Pitcher{Name: "X", ERA: 3.5, WHIP: 1.2, WAR: math.Inf(1)}},
	}
	for _, tc := range tcs {
		if err := tc.p.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
