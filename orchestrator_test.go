package qscore

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func businessRequest() ScoreRequest {
	return ScoreRequest{
		Domain: DomainBusiness,
		Qubits: 6,
		Encodings: []ProblemEncoding{
			{Name: "revenue", Value: 0.5},
			{Name: "automation", Value: 0.94},
			{Name: "risk", Value: 0.25},
		},
		Sequence: SequenceAmplify,
		Baseline: 0.85,
		Seed:     42,
	}
}

func TestOrchestrator(t *testing.T) {
	Convey("Given a default orchestrator", t, func() {
		o := NewOrchestrator(nil)

		Convey("Identical requests produce bit-identical scores", func() {
			first, err := o.Score(businessRequest())
			So(err, ShouldBeNil)
			second, err := o.Score(businessRequest())
			So(err, ShouldBeNil)

			So(second.Score, ShouldEqual, first.Score)
			So(second.Advantage, ShouldEqual, first.Advantage)
			So(second.Purity, ShouldEqual, first.Purity)
		})

		Convey("Noise with a fixed seed is still bit-identical", func() {
			req := businessRequest()
			req.Noise = true

			first, err := o.Score(req)
			So(err, ShouldBeNil)
			second, err := o.Score(req)
			So(err, ShouldBeNil)

			So(second.Score, ShouldEqual, first.Score)
		})

		Convey("Different seeds under noise stay in a bounded neighbourhood", func() {
			req := businessRequest()
			req.Noise = true
			first, err := o.Score(req)
			So(err, ShouldBeNil)

			req.Seed = 1337
			second, err := o.Score(req)
			So(err, ShouldBeNil)

			So(second.Score, ShouldAlmostEqual, first.Score, 0.2)
		})

		Convey("The score respects the domain cap and valid range", func() {
			res, err := o.Score(businessRequest())
			So(err, ShouldBeNil)
			spew.Dump(res)

			So(res.Score, ShouldBeBetweenOrEqual, 0, 0.999)
			So(res.Advantage, ShouldBeBetweenOrEqual, 0, 1)
			So(res.ConfidenceLow, ShouldBeLessThanOrEqualTo, res.Score)
			So(res.ConfidenceHigh, ShouldBeGreaterThanOrEqualTo, res.Score)
		})

		Convey("A single-qubit run succeeds", func() {
			req := businessRequest()
			req.Qubits = 1

			res, err := o.Score(req)
			So(err, ShouldBeNil)
			So(res.Score, ShouldBeBetweenOrEqual, 0, 0.999)
		})

		Convey("An empty encoding list over the amplify sequence saturates coherence", func() {
			req := businessRequest()
			req.Encodings = nil

			// Uniform superposition survives the diffusion round, so the
			// advantage metric saturates and the blend hits the cap.
			res, err := o.Score(req)
			So(err, ShouldBeNil)
			So(res.Advantage, ShouldAlmostEqual, 1, 1e-9)
			So(res.Score, ShouldEqual, 0.999)
		})

		Convey("The fourier sequence runs end to end", func() {
			req := businessRequest()
			req.Sequence = SequenceFourier

			res, err := o.Score(req)
			So(err, ShouldBeNil)
			So(res.Advantage, ShouldAlmostEqual, 1, 1e-9)
		})

		Convey("Distribution and sample are only produced on request", func() {
			req := businessRequest()
			res, err := o.Score(req)
			So(err, ShouldBeNil)
			So(res.Probabilities, ShouldBeNil)
			So(res.Sample, ShouldEqual, -1)

			req.WantDistribution = true
			req.WantSample = true
			res, err = o.Score(req)
			So(err, ShouldBeNil)
			So(res.Probabilities, ShouldHaveLength, 1<<req.Qubits)

			var total float64
			for _, p := range res.Probabilities {
				total += p
			}
			So(total, ShouldAlmostEqual, 1, 1e-6)
			So(res.Sample, ShouldBeBetweenOrEqual, 0, (1<<req.Qubits)-1)
		})

		Convey("Improvement and confidence fields derive from the score", func() {
			res, err := o.Score(businessRequest())
			So(err, ShouldBeNil)
			So(res.Improvement, ShouldAlmostEqual, res.Score/0.85, 1e-12)
			So(res.ConfidenceLow, ShouldAlmostEqual, math.Max(0, res.Score-0.02), 1e-12)
		})
	})

	Convey("Given invalid requests", t, func() {
		o := NewOrchestrator(nil)

		assertConfigErr := func(req ScoreRequest) {
			_, err := o.Score(req)
			var cfgErr *ConfigurationError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
		}

		Convey("A zero qubit count fails fast", func() {
			req := businessRequest()
			req.Qubits = 0
			assertConfigErr(req)
		})

		Convey("A qubit count above the maximum fails before allocation", func() {
			req := businessRequest()
			req.Qubits = 25
			assertConfigErr(req)
		})

		Convey("An unknown sequence fails", func() {
			req := businessRequest()
			req.Sequence = Sequence("annealing")
			assertConfigErr(req)
		})

		Convey("An unknown domain fails", func() {
			req := businessRequest()
			req.Domain = Domain("astrology")
			assertConfigErr(req)
		})
	})

	Convey("Given a tightened qubit cap", t, func() {
		cfg := NewConfig()
		cfg.MaxQubits = 4
		o := NewOrchestrator(cfg)

		Convey("The cap is enforced", func() {
			req := businessRequest()
			req.Qubits = 5

			_, err := o.Score(req)
			var cfgErr *ConfigurationError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
		})
	})
}
