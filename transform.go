package qscore

import "math"

// Fourier applies the discrete-Fourier-style gate schedule across the
// register: for each qubit j, a mixing gate on j followed by controlled
// phase rotations with control k, target j, angle pi/2^(k-j) for every
// k above j.
func (s *StateVector) Fourier() error {
	h := hadamardMatrix()
	for j := 0; j < s.NumQubits; j++ {
		if err := s.ApplyGate(h, j); err != nil {
			return err
		}
		for k := j + 1; k < s.NumQubits; k++ {
			angle := math.Pi / float64(int(1)<<uint(k-j))
			if err := s.ApplyControlledPhase(k, j, angle); err != nil {
				return err
			}
		}
	}
	return nil
}

// InverseFourier undoes Fourier: the schedule in reverse order with
// negated angles. The mixing gate is self-inverse.
func (s *StateVector) InverseFourier() error {
	h := hadamardMatrix()
	for j := s.NumQubits - 1; j >= 0; j-- {
		for k := s.NumQubits - 1; k > j; k-- {
			angle := -math.Pi / float64(int(1)<<uint(k-j))
			if err := s.ApplyControlledPhase(k, j, angle); err != nil {
				return err
			}
		}
		if err := s.ApplyGate(h, j); err != nil {
			return err
		}
	}
	return nil
}
