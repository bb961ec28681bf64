package qscore

import "fmt"

// ConfigurationError reports an invalid engine configuration or score
// request: a qubit count outside the allowed range, an unknown operator
// sequence, or an unknown scoring domain. It is always raised before any
// state vector is allocated.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// InvalidQubitIndexError reports a gate aimed at a qubit index outside
// the register.
type InvalidQubitIndexError struct {
	Index     int
	NumQubits int
}

func (e *InvalidQubitIndexError) Error() string {
	return fmt.Sprintf("qubit index %d out of range for %d-qubit register", e.Index, e.NumQubits)
}

// InvalidGateError reports a malformed gate descriptor, such as a matrix
// that is not 2x2.
type InvalidGateError struct {
	Reason string
}

func (e *InvalidGateError) Error() string {
	return "invalid gate: " + e.Reason
}

// DegenerateStateError reports a zero-norm state vector encountered
// during normalization. A degenerate state carries no probability
// information and cannot be measured.
type DegenerateStateError struct{}

func (e *DegenerateStateError) Error() string {
	return "degenerate state: zero-norm vector"
}

// NumericalInstabilityError reports NaN or Inf amplitudes, or a
// probability sum that stays outside tolerance after the single
// renormalization pass allowed before sampling.
type NumericalInstabilityError struct {
	Reason string
}

func (e *NumericalInstabilityError) Error() string {
	return "numerical instability: " + e.Reason
}
