package qscore

import "math/cmplx"

// ApplyControlledPhase multiplies the amplitude of every basis index
// whose control bit is 1 by exp(+i*theta/2) when the target bit is 0,
// or exp(-i*theta/2) when the target bit is 1. Diagonal only: each
// amplitude keeps its magnitude and no basis states mix, which makes
// this far cheaper than a full controlled unitary.
func (s *StateVector) ApplyControlledPhase(control, target int, theta float64) error {
	if control < 0 || control >= s.NumQubits {
		return &InvalidQubitIndexError{Index: control, NumQubits: s.NumQubits}
	}
	if target < 0 || target >= s.NumQubits {
		return &InvalidQubitIndexError{Index: target, NumQubits: s.NumQubits}
	}

	pos, neg := phaseFactor(theta)
	for i := range s.Amplitudes {
		if (i>>control)&1 == 0 {
			continue
		}
		if (i>>target)&1 == 0 {
			s.Amplitudes[i] *= pos
		} else {
			s.Amplitudes[i] *= neg
		}
	}
	return nil
}

// ApplyPhase rotates the |1> amplitudes of target by exp(i*theta).
func (s *StateVector) ApplyPhase(target int, theta float64) error {
	if target < 0 || target >= s.NumQubits {
		return &InvalidQubitIndexError{Index: target, NumQubits: s.NumQubits}
	}

	factor := cmplx.Exp(complex(0, theta))
	mask := 1 << target
	for i := range s.Amplitudes {
		if i&mask != 0 {
			s.Amplitudes[i] *= factor
		}
	}
	return nil
}
