package qscore

import "time"

// Config bounds the engine and carries the numeric tolerances shared by
// every run. Memory per state vector is O(2^n) complex128 values, so
// MaxQubits is a hard cap checked before allocation.
type Config struct {
	MaxQubits int

	// NormTolerance is the unit-norm drift allowed on the unitary path.
	NormTolerance float64

	// DriftTolerance is the probability-sum drift allowed before
	// sampling triggers the single renormalization pass.
	DriftTolerance float64

	// NoiseScale and NoiseSigma control the decoherence perturbation:
	// each amplitude component gains NoiseScale * N(0, NoiseSigma).
	NoiseScale float64
	NoiseSigma float64

	// TunnelChance is the per-qubit probability of a random phase kick
	// during amplification rounds when noise is enabled.
	TunnelChance float64

	SchedulingTimeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		MaxQubits:         24,
		NormTolerance:     1e-9,
		DriftTolerance:    1e-6,
		NoiseScale:        0.1,
		NoiseSigma:        0.01,
		TunnelChance:      0.1,
		SchedulingTimeout: 10 * time.Second,
	}
}
