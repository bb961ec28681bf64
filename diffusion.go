package qscore

// ApplyDiffusion replaces every amplitude a_i with 2*mean - a_i, where
// mean is the arithmetic mean over the raw complex amplitudes. This is
// the elementwise inversion-about-the-mean used for amplitude
// amplification, not the unitary reflection 2|s><s| - I, and it does
// not preserve the unit norm: callers that go on to treat the state as
// a probability source must call Normalize first.
func (s *StateVector) ApplyDiffusion() {
	var mean complex128
	for _, a := range s.Amplitudes {
		mean += a
	}
	mean /= complex(float64(len(s.Amplitudes)), 0)

	for i, a := range s.Amplitudes {
		s.Amplitudes[i] = 2*mean - a
	}
}
