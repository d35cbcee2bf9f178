package model

import (
	"errors"
	"math"
)

// Batter holds the season rate stats the simulation consumes.
// Units:
// - OBP: on-base percentage, fraction 0..1
// - SLG: slugging percentage, total bases per at-bat
// - OPS: OBP + SLG
// - WAR: wins above replacement (may be negative)
type Batter struct {
	Name string
	Team string
	OBP  float64
	SLG  float64
	OPS  float64
	WAR  float64
}

// Overall rates the batter on the scouting scale used to pick lineups:
// 50 + 3*WAR + 25*OPS.
func (b Batter) Overall() float64 {
	return 50 + b.WAR*3 + b.OPS*25
}

// Power is the batter's isolated power, the extra-base component of the
// stat line. It drives the home-run share of the hit distribution.
func (b Batter) Power() float64 {
	return b.OPS - b.OBP
}

func (b Batter) Validate() error {
	if b.Name == "" {
		return errors.New("batter name must not be empty")
	}
	for _, v := range []float64{b.OBP, b.SLG, b.OPS, b.WAR} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("batter stats must be finite")
		}
	}
	if b.OBP < 0 || b.OBP > 1 {
		return errors.New("OBP must be in [0, 1]")
	}
	if b.SLG < 0 || b.OPS < 0 {
		return errors.New("SLG and OPS must be >= 0")
	}
	if b.OPS < b.OBP {
		return errors.New("OPS must be >= OBP")
	}
	return nil
}

// Pitcher holds the season rate stats the simulation consumes.
// Units:
// - ERA: earned runs per nine innings
// - WHIP: walks plus hits per inning pitched
// - WAR: wins above replacement (may be negative)
// - IP: innings pitched, used to filter out position players who pitched
type Pitcher struct {
	Name string
	Team string
	ERA  float64
	WHIP float64
	WAR  float64
	IP   float64
}

// Overall rates the pitcher on the scouting scale used to pick starters:
// 50 + 3*WAR + 8*(5.5-ERA) + 20*(1.5-WHIP).
func (p Pitcher) Overall() float64 {
	return 50 + p.WAR*3 + (5.5-p.ERA)*8 + (1.5-p.WHIP)*20
}

func (p Pitcher) Validate() error {
	if p.Name == "" {
		return errors.New("pitcher name must not be empty")
	}
	for _, v := range []float64{p.ERA, p.WHIP, p.WAR, p.IP} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("pitcher stats must be finite")
		}
	}
	if p.ERA < 0 {
		return errors.New("ERA must be >= 0")
	}
	if p.WHIP < 0 {
		return errors.New("WHIP must be >= 0")
	}
	if p.IP < 0 {
		return errors.New("IP must be >= 0")
	}
	return nil
}
