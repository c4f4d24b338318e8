package crash

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source yields uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }

// CryptoSource reads from crypto/rand (CSPRNG). It is the default source for live rounds.
type CryptoSource struct{}

// Float64 uses the top 53 bits of a random uint64, so the result is always < 1.
func (CryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return mrand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

type seededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a reproducible PCG source, for simulations and replays.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
