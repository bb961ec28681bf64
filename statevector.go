package qscore

import (
	"fmt"
	"math"
	"math/cmplx"
)

// StateVector holds the 2^n complex amplitudes of an n-qubit register,
// indexed by basis-state id. It is exclusively owned by one circuit
// execution: created at |0...0>, evolved gate by gate, and discarded
// once a score or sample has been extracted.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector allocates the basis state |0...0>. The qubit count is
// validated before allocation; callers enforcing a memory cap check it
// against Config.MaxQubits first.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits <= 0 {
		return nil, &ConfigurationError{Reason: "qubit count must be positive"}
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Norm returns the L2 norm of the amplitude vector. On the unitary path
// this stays at 1 within tolerance; diffusion rounds break it.
func (s *StateVector) Norm() float64 {
	var sum float64
	for _, a := range s.Amplitudes {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// ApplyGate applies a 2x2 unitary to the target qubit. Every source
// index contributes to two destination indices, so the update always
// runs against a snapshot: a freshly zeroed output buffer accumulates
// gate[b][bit] * old[i], never the buffer being read.
func (s *StateVector) ApplyGate(gate [][]complex128, target int) error {
	if target < 0 || target >= s.NumQubits {
		return &InvalidQubitIndexError{Index: target, NumQubits: s.NumQubits}
	}
	if len(gate) != 2 || len(gate[0]) != 2 || len(gate[1]) != 2 {
		return &InvalidGateError{Reason: "gate matrix must be 2x2"}
	}

	mask := 1 << target
	next := make([]complex128, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		bit := (i >> target) & 1
		for b := 0; b < 2; b++ {
			j := i
			if b != bit {
				j = i ^ mask
			}
			next[j] += gate[b][bit] * amp
		}
	}
	s.Amplitudes = next
	return nil
}

// HadamardLayer spreads the register into superposition by applying the
// mixing gate to every qubit in order.
func (s *StateVector) HadamardLayer() error {
	h := hadamardMatrix()
	for q := 0; q < s.NumQubits; q++ {
		if err := s.ApplyGate(h, q); err != nil {
			return err
		}
	}
	return nil
}

// CheckFinite scans for NaN or Inf amplitudes left behind by an
// unstable operator chain.
func (s *StateVector) CheckFinite() error {
	for i, a := range s.Amplitudes {
		if cmplx.IsNaN(a) || cmplx.IsInf(a) {
			return &NumericalInstabilityError{
				Reason: fmt.Sprintf("non-finite amplitude at basis index %d", i),
			}
		}
	}
	return nil
}
