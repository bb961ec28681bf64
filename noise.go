package qscore

import "math/rand"

// Normalize divides every amplitude by the vector's L2 norm, restoring
// the unit-norm invariant after non-unitary operators. A zero-norm
// vector carries no state to restore.
func (s *StateVector) Normalize() error {
	norm := s.Norm()
	if norm == 0 {
		return &DegenerateStateError{}
	}
	inv := complex(1/norm, 0)
	for i := range s.Amplitudes {
		s.Amplitudes[i] *= inv
	}
	return nil
}

// Decohere models environmental noise: normalize, perturb every
// amplitude with a bounded zero-mean complex gaussian
// (scale * N(0, sigma) per component), then renormalize. The random
// source is injected so runs are reproducible under a fixed seed.
func (s *StateVector) Decohere(rng *rand.Rand, scale, sigma float64) error {
	if err := s.Normalize(); err != nil {
		return err
	}
	for i := range s.Amplitudes {
		s.Amplitudes[i] += complex(
			scale*sigma*rng.NormFloat64(),
			scale*sigma*rng.NormFloat64(),
		)
	}
	return s.Normalize()
}
