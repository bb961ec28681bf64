package qscore

import (
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Probabilities reduces the state to |amplitude|^2 per basis index.
// Floating-point drift accumulated over a long operator chain is
// repaired with a single renormalization pass; if the sum is still off
// after that, the state is numerically unusable.
func Probabilities(s *StateVector, tolerance float64) ([]float64, error) {
	probs := make([]float64, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		if cmplx.IsNaN(a) || cmplx.IsInf(a) {
			return nil, &NumericalInstabilityError{Reason: "non-finite amplitude"}
		}
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	total := floats.Sum(probs)
	if total == 0 {
		return nil, &DegenerateStateError{}
	}
	if math.Abs(total-1) > tolerance {
		floats.Scale(1/total, probs)
		if math.Abs(floats.Sum(probs)-1) > tolerance {
			return nil, &NumericalInstabilityError{Reason: "probability sum drift beyond repair"}
		}
	}
	return probs, nil
}

// Sample draws one basis index by walking the cumulative distribution
// with a uniform draw from the injected source.
func Sample(s *StateVector, rng *rand.Rand, tolerance float64) (int, error) {
	probs, err := Probabilities(s, tolerance)
	if err != nil {
		return 0, err
	}

	r := rng.Float64()
	var cumulative float64
	for i, p := range probs {
		cumulative += p
		if r < cumulative {
			return i, nil
		}
	}
	return len(probs) - 1, nil
}

// UpperHalfProbability sums the probability mass over the upper half of
// the basis index range. The orchestrator uses this partition statistic
// for binary-leaning scores.
func UpperHalfProbability(probs []float64) float64 {
	return floats.Sum(probs[len(probs)/2:])
}

// Coherence is the entropy-like advantage metric: the p*log2(p) sum
// (with the p*log2(p) = 0 convention at p = 0) scaled by the qubit
// count and clamped to [0, 1]. A uniform superposition scores 1, a
// collapsed basis state 0.
func Coherence(probs []float64, numQubits int) float64 {
	if numQubits <= 0 {
		return 0
	}
	var h float64
	for _, p := range probs {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return math.Min(1, math.Max(0, h/float64(numQubits)))
}

// Purity is the sum of squared probabilities, the counterpart coherence
// measure: 1 for a basis state, 1/2^n for a uniform superposition.
func Purity(probs []float64) float64 {
	return floats.Dot(probs, probs)
}
