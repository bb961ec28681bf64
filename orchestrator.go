package qscore

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/theapemachine/errnie"
)

// Sequence names an operator schedule the orchestrator knows how to
// run.
type Sequence string

const (
	// SequenceAmplify: mixing layer, per-variable phase rotations, then
	// diffusion rounds with renormalization.
	SequenceAmplify Sequence = "amplify"
	// SequenceFourier: the Fourier-style transform schedule followed by
	// per-variable phase rotations.
	SequenceFourier Sequence = "fourier"
)

// ScoreRequest is everything one scoring run needs from the caller.
// Seed fixes the injected random source, so identical requests produce
// bit-identical results.
type ScoreRequest struct {
	Domain           Domain
	Qubits           int
	Encodings        []ProblemEncoding
	Sequence         Sequence
	DiffusionRounds  int
	Noise            bool
	Seed             int64
	Baseline         float64
	WantDistribution bool
	WantSample       bool
}

// Result carries the blended score plus the raw metrics it was derived
// from. Probabilities is only populated when requested; Sample is -1
// unless a draw was requested.
type Result struct {
	Score          float64
	Advantage      float64
	Purity         float64
	UpperHalf      float64
	Improvement    float64
	ConfidenceLow  float64
	ConfidenceHigh float64
	Probabilities  []float64
	Sample         int
}

// Orchestrator maps domain variables to rotation angles, sequences the
// operators, and reduces the final state to a scalar advantage score.
// One orchestrator can serve concurrent runs: each run owns its state
// vector and random source exclusively.
type Orchestrator struct {
	cfg *Config
}

func NewOrchestrator(cfg *Config) *Orchestrator {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Orchestrator{cfg: cfg}
}

// Score runs one circuit evaluation end to end. All configuration
// failures surface before the state vector is allocated.
func (o *Orchestrator) Score(req ScoreRequest) (*Result, error) {
	if req.Qubits <= 0 {
		return nil, &ConfigurationError{Reason: "qubit count must be positive"}
	}
	if req.Qubits > o.cfg.MaxQubits {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("qubit count %d exceeds maximum %d", req.Qubits, o.cfg.MaxQubits),
		}
	}
	blend, ok := domainBlends[req.Domain]
	if !ok {
		return nil, &ConfigurationError{Reason: "unknown domain " + string(req.Domain)}
	}
	sequence := req.Sequence
	if sequence == "" {
		sequence = SequenceAmplify
	}
	if sequence != SequenceAmplify && sequence != SequenceFourier {
		return nil, &ConfigurationError{Reason: "unknown sequence " + string(sequence)}
	}

	errnie.Info(
		"scoring run - domain %s, %d qubits, sequence %s, %d variables",
		req.Domain,
		req.Qubits,
		sequence,
		len(req.Encodings),
	)

	rng := rand.New(rand.NewSource(req.Seed))
	state, err := NewStateVector(req.Qubits)
	if err != nil {
		return nil, err
	}

	switch sequence {
	case SequenceAmplify:
		err = o.runAmplify(state, req, rng)
	case SequenceFourier:
		err = o.runFourier(state, req)
	}
	if err != nil {
		return nil, err
	}

	if req.Noise {
		if err := state.Decohere(rng, o.cfg.NoiseScale, o.cfg.NoiseSigma); err != nil {
			return nil, err
		}
	}
	if err := state.CheckFinite(); err != nil {
		return nil, err
	}

	probs, err := Probabilities(state, o.cfg.DriftTolerance)
	if err != nil {
		return nil, err
	}

	advantage := Coherence(probs, req.Qubits)
	score := BlendAccuracy(req.Baseline, advantage, blend.Boost, blend.Cap)

	result := &Result{
		Score:          score,
		Advantage:      advantage,
		Purity:         Purity(probs),
		UpperHalf:      UpperHalfProbability(probs),
		Improvement:    ImprovementFactor(req.Baseline, score),
		ConfidenceLow:  math.Max(0, score-blend.CILow),
		ConfidenceHigh: math.Min(1, score+blend.CIHigh),
		Sample:         -1,
	}
	if req.WantDistribution {
		result.Probabilities = probs
	}
	if req.WantSample {
		sample, err := Sample(state, rng, o.cfg.DriftTolerance)
		if err != nil {
			return nil, err
		}
		result.Sample = sample
	}
	return result, nil
}

func (o *Orchestrator) runAmplify(s *StateVector, req ScoreRequest, rng *rand.Rand) error {
	if err := s.HadamardLayer(); err != nil {
		return err
	}
	if err := o.applyRotations(s, req); err != nil {
		return err
	}

	rounds := req.DiffusionRounds
	if rounds <= 0 {
		rounds = int(math.Sqrt(float64(len(req.Encodings))))
		if rounds < 1 {
			rounds = 1
		}
	}
	for r := 0; r < rounds; r++ {
		if req.Noise {
			// Tunneling kicks: occasional random phase rotations drawn
			// from the run's seeded source.
			for q := 0; q < s.NumQubits; q++ {
				if rng.Float64() < o.cfg.TunnelChance {
					if err := s.ApplyPhase(q, (rng.Float64()*2-1)*math.Pi); err != nil {
						return err
					}
				}
			}
		}
		// Diffusion breaks the unit norm; restore it before the next
		// round reads the amplitudes.
		s.ApplyDiffusion()
		if err := s.Normalize(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) runFourier(s *StateVector, req ScoreRequest) error {
	if err := s.Fourier(); err != nil {
		return err
	}
	return o.applyRotations(s, req)
}

// applyRotations walks the encodings in order, rotating a target qubit
// gated on its neighbour. Variables wrap around the register when there
// are more of them than qubits.
func (o *Orchestrator) applyRotations(s *StateVector, req ScoreRequest) error {
	for i, enc := range req.Encodings {
		control := i % s.NumQubits
		target := (i + 1) % s.NumQubits
		if err := s.ApplyControlledPhase(control, target, Angle(req.Domain, enc)); err != nil {
			return err
		}
	}
	return nil
}
