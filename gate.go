package qscore

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Gate describes one operation in a circuit: either a 2x2 matrix applied
// to Target, or a diagonal phase rotation on Target, optionally gated by
// Control. Control is -1 when the gate is uncontrolled.
type Gate struct {
	Matrix  [][]complex128
	Theta   float64
	Target  int
	Control int
}

func hadamardMatrix() [][]complex128 {
	h := complex(1/math.Sqrt2, 0)
	return [][]complex128{{h, h}, {h, -h}}
}

// MixingGate is the Hadamard-like gate that spreads one basis amplitude
// into an equal-magnitude superposition.
func MixingGate(target int) Gate {
	return Gate{Matrix: hadamardMatrix(), Target: target, Control: -1}
}

func PauliX(target int) Gate {
	return Gate{Matrix: [][]complex128{{0, 1}, {1, 0}}, Target: target, Control: -1}
}

func PauliZ(target int) Gate {
	return Gate{Matrix: [][]complex128{{1, 0}, {0, -1}}, Target: target, Control: -1}
}

// PhaseGate rotates the |1> amplitude of target by exp(i*theta).
func PhaseGate(theta float64, target int) Gate {
	return Gate{Theta: theta, Target: target, Control: -1}
}

// ControlledPhaseGate conditionally rotates target's phase based on the
// control qubit's bit value. Diagonal only; no basis mixing.
func ControlledPhaseGate(theta float64, control, target int) Gate {
	return Gate{Theta: theta, Target: target, Control: control}
}

// Circuit is an ordered gate list over a fixed register size, immutable
// once constructed.
type Circuit struct {
	NumQubits int
	gates     []Gate
}

// NewCircuit validates every gate against the register before anything
// is applied, so a malformed circuit fails fast rather than mid-run.
func NewCircuit(numQubits int, gates ...Gate) (*Circuit, error) {
	if numQubits <= 0 {
		return nil, &ConfigurationError{Reason: "qubit count must be positive"}
	}
	for i, g := range gates {
		if g.Target < 0 || g.Target >= numQubits {
			return nil, &InvalidQubitIndexError{Index: g.Target, NumQubits: numQubits}
		}
		if g.Control >= numQubits {
			return nil, &InvalidQubitIndexError{Index: g.Control, NumQubits: numQubits}
		}
		if g.Matrix != nil && (len(g.Matrix) != 2 || len(g.Matrix[0]) != 2 || len(g.Matrix[1]) != 2) {
			return nil, &InvalidGateError{Reason: fmt.Sprintf("gate %d matrix must be 2x2", i)}
		}
	}
	owned := make([]Gate, len(gates))
	copy(owned, gates)
	return &Circuit{NumQubits: numQubits, gates: owned}, nil
}

// Gates returns a copy of the gate list.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Run applies the circuit's gates in order to the given state.
func (c *Circuit) Run(s *StateVector) error {
	if s.NumQubits != c.NumQubits {
		return &ConfigurationError{
			Reason: fmt.Sprintf("circuit expects %d qubits, state has %d", c.NumQubits, s.NumQubits),
		}
	}
	for _, g := range c.gates {
		if err := applyGate(s, g); err != nil {
			return err
		}
	}
	return nil
}

func applyGate(s *StateVector, g Gate) error {
	switch {
	case g.Matrix != nil:
		return s.ApplyGate(g.Matrix, g.Target)
	case g.Control >= 0:
		return s.ApplyControlledPhase(g.Control, g.Target, g.Theta)
	default:
		return s.ApplyPhase(g.Target, g.Theta)
	}
}

// phaseFactor is split into the +theta/2 / -theta/2 pair used by the
// controlled rotation.
func phaseFactor(theta float64) (pos, neg complex128) {
	pos = cmplx.Exp(complex(0, theta/2))
	return pos, cmplx.Conj(pos)
}
