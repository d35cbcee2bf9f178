package sim

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource supplies the uniform draws the simulation consumes.
type RandomSource interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// Keep 53 bits so the value fits a float64 mantissa exactly.
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// NewSource returns the default, non-reproducible source.
func NewSource() RandomSource { return cryptoSource{} }

type seededSource struct{ r *rand.Rand }

// NewSeededSource returns a deterministic source. Two sources built from the
// same seed yield identical draw sequences, which makes whole games
// replayable.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
