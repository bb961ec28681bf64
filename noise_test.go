package qscore

import (
	"errors"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given a state knocked off unit norm", t, func() {
		s, _ := NewStateVector(2)
		for i := range s.Amplitudes {
			s.Amplitudes[i] = complex(0.7, 0)
		}

		Convey("Normalize restores the invariant", func() {
			So(s.Normalize(), ShouldBeNil)
			So(s.Norm(), ShouldAlmostEqual, 1, 1e-12)
		})
	})

	Convey("Given a zero-norm vector", t, func() {
		s := &StateVector{Amplitudes: make([]complex128, 4), NumQubits: 2}

		Convey("Normalize fails with a degenerate state error", func() {
			err := s.Normalize()
			var degErr *DegenerateStateError
			So(errors.As(err, &degErr), ShouldBeTrue)
		})
	})
}

func TestDecohere(t *testing.T) {
	Convey("Given two identical states and the same seed", t, func() {
		a, _ := NewStateVector(3)
		So(a.HadamardLayer(), ShouldBeNil)
		b := a.Clone()

		Convey("Decoherence is bit-identical", func() {
			So(a.Decohere(rand.New(rand.NewSource(7)), 0.1, 0.01), ShouldBeNil)
			So(b.Decohere(rand.New(rand.NewSource(7)), 0.1, 0.01), ShouldBeNil)

			for i := range a.Amplitudes {
				So(a.Amplitudes[i], ShouldEqual, b.Amplitudes[i])
			}
		})

		Convey("The result is renormalized", func() {
			So(a.Decohere(rand.New(rand.NewSource(11)), 0.1, 0.01), ShouldBeNil)
			So(a.Norm(), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Different seeds stay within the noise neighbourhood", func() {
			So(a.Decohere(rand.New(rand.NewSource(1)), 0.1, 0.01), ShouldBeNil)
			So(b.Decohere(rand.New(rand.NewSource(2)), 0.1, 0.01), ShouldBeNil)

			for i := range a.Amplitudes {
				So(real(a.Amplitudes[i]), ShouldAlmostEqual, real(b.Amplitudes[i]), 0.05)
				So(imag(a.Amplitudes[i]), ShouldAlmostEqual, imag(b.Amplitudes[i]), 0.05)
			}
		})
	})
}
