package model

import (
	"fmt"
	"strings"
)

// Empty marks an unoccupied base.
const Empty = -1

// Bases tracks the runners. Index 0 is first base, 1 is second, 2 is third.
// An occupied slot holds the batting-order slot (0-8) of the runner so the
// scorer can credit the run to a specific lineup spot.
type Bases [3]int

// EmptyBases returns a base state with nobody aboard.
func EmptyBases() Bases {
	return Bases{Empty, Empty, Empty}
}

// Occupied counts the runners on base.
func (b Bases) Occupied() int {
	n := 0
	for _, slot := range b {
		if slot != Empty {
			n++
		}
	}
	return n
}

// String renders the bases first-to-third as x for a runner and - for an
// open base, e.g. "x-x" for runners on the corners.
func (b Bases) String() string {
	marks := [3]byte{'-', '-', '-'}
	for i, slot := range b {
		if slot != Empty {
			marks[i] = 'x'
		}
	}
	return string(marks[:])
}

// ScoringRule selects how non-forced runners take extra bases on hits.
type ScoringRule string

const (
	// RuleHold advances every runner exactly as many bases as the hit.
	RuleHold ScoringRule = "hold"
	// RuleAggressive also scores any runner in scoring position on every
	// hit, and scores the runner on first on a double.
	RuleAggressive ScoringRule = "aggressive"
)

// ParseScoringRule maps a config or API string to a ScoringRule.
// The empty string selects RuleHold.
func ParseScoringRule(s string) (ScoringRule, error) {
	switch ScoringRule(strings.ToLower(strings.TrimSpace(s))) {
	case RuleHold, "":
		return RuleHold, nil
	case RuleAggressive:
		return RuleAggressive, nil
	default:
		return "", fmt.Errorf("unknown scoring rule %q", s)
	}
}

// Advance applies one plate-appearance outcome to the base state and returns
// the new state plus the batting-order slots that scored, lead runner first.
// The receiver is never mutated.
//
// A walk moves only forced runners: the chain stops at the first open base,
// and with the bases loaded the runner on third scores. Hits follow the
// ScoringRule. For every outcome except Out, occupied-after plus runs equals
// occupied-before plus one; an Out leaves the bases untouched.
func (b Bases) Advance(outcome Outcome, batterSlot int, rule ScoringRule) (Bases, []int) {
	var scored []int
	score := func(slot int) {
		if slot != Empty {
			scored = append(scored, slot)
		}
	}

	next := EmptyBases()
	switch outcome {
	case Out:
		return b, nil
	case Walk:
		next = b
		switch {
		case b[0] == Empty:
			next[0] = batterSlot
		case b[1] == Empty:
			next[1], next[0] = b[0], batterSlot
		case b[2] == Empty:
			next[2], next[1], next[0] = b[1], b[0], batterSlot
		default:
			score(b[2])
			next[2], next[1], next[0] = b[1], b[0], batterSlot
		}
	case Single:
		score(b[2])
		if rule == RuleAggressive {
			score(b[1])
		} else {
			next[2] = b[1]
		}
		next[1] = b[0]
		next[0] = batterSlot
	case Double:
		score(b[2])
		score(b[1])
		if rule == RuleAggressive {
			score(b[0])
		} else {
			next[2] = b[0]
		}
		next[1] = batterSlot
	case Triple:
		score(b[2])
		score(b[1])
		score(b[0])
		next[2] = batterSlot
	case HomeRun:
		score(b[2])
		score(b[1])
		score(b[0])
		score(batterSlot)
	}
	return next, scored
}
