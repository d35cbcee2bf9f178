package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	// LineupSize is the number of batters in a starting lineup.
	LineupSize = 9
	// rotationSize is how many of the best pitchers are candidates to start.
	rotationSize = 3
)

// Team bundles a roster with its team-level defensive rating.
// Defense is total defensive runs saved; negative for bad defenses.
type Team struct {
	Code     string
	Batters  []Batter
	Pitchers []Pitcher
	Defense  float64
}

func (t *Team) Validate() error {
	if t.Code == "" {
		return errors.New("team code must not be empty")
	}
	if len(t.Batters) == 0 {
		return errors.New("team has no batters")
	}
	if len(t.Pitchers) == 0 {
		return errors.New("team has no pitchers")
	}
	if math.IsNaN(t.Defense) || math.IsInf(t.Defense, 0) {
		return errors.New("defense rating must be finite")
	}
	for _, b := range t.Batters {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("batter %q: %w", b.Name, err)
		}
	}
	for _, p := range t.Pitchers {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pitcher %q: %w", p.Name, err)
		}
	}
	return nil
}

// StartingLineup returns the top nine batters by overall rating in batting
// order, or the whole roster when fewer than nine are available. Ties keep
// roster order.
func (t *Team) StartingLineup() []Batter {
	lineup := make([]Batter, len(t.Batters))
	copy(lineup, t.Batters)
	sort.SliceStable(lineup, func(i, j int) bool {
		return lineup[i].Overall() > lineup[j].Overall()
	})
	if len(lineup) > LineupSize {
		lineup = lineup[:LineupSize]
	}
	return lineup
}

// Rotation returns the top pitchers by overall rating, at most three, best
// first. Ties keep roster order.
func (t *Team) Rotation() []Pitcher {
	rotation := make([]Pitcher, len(t.Pitchers))
	copy(rotation, t.Pitchers)
	sort.SliceStable(rotation, func(i, j int) bool {
		return rotation[i].Overall() > rotation[j].Overall()
	})
	if len(rotation) > rotationSize {
		rotation = rotation[:rotationSize]
	}
	return rotation
}

// StartingPitcher picks the starter uniformly from the rotation. u must be a
// uniform draw in [0, 1); the caller supplies it so selection stays
// reproducible under a seeded source.
func (t *Team) StartingPitcher(u float64) (Pitcher, error) {
	rotation := t.Rotation()
	if len(rotation) == 0 {
		return Pitcher{}, errors.New("team has no pitchers")
	}
	idx := int(u * float64(len(rotation)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rotation) {
		idx = len(rotation) - 1
	}
	return rotation[idx], nil
}
