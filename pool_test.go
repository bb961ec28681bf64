package qscore

import (
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEvalPool(t *testing.T) {
	Convey("Given an evaluation pool", t, func() {
		pool := NewEvalPool(context.Background(), 4, nil, nil)

		Reset(func() {
			pool.Close()
		})

		Convey("Independent runs evaluate in parallel and all succeed", func() {
			channels := make([]chan Outcome, 0, 8)
			for i := 0; i < 8; i++ {
				req := businessRequest()
				req.Seed = int64(i)
				channels = append(channels, pool.Schedule(fmt.Sprintf("run-%d", i), req))
			}

			for i, ch := range channels {
				outcome := <-ch
				So(outcome.Error, ShouldBeNil)
				So(outcome.RunID, ShouldEqual, fmt.Sprintf("run-%d", i))
				So(outcome.Result.Score, ShouldBeBetweenOrEqual, 0, 0.999)
			}
		})

		Convey("Identical seeds give identical scores regardless of worker", func() {
			a := <-pool.Schedule("", businessRequest())
			b := <-pool.Schedule("", businessRequest())

			So(a.Error, ShouldBeNil)
			So(b.Error, ShouldBeNil)
			So(a.Result.Score, ShouldEqual, b.Result.Score)
		})

		Convey("An empty id gets a generated run ID", func() {
			outcome := <-pool.Schedule("", businessRequest())
			So(outcome.Error, ShouldBeNil)
			So(outcome.RunID, ShouldNotBeEmpty)
		})

		Convey("A bad request surfaces its error through the outcome", func() {
			req := businessRequest()
			req.Qubits = 0

			outcome := <-pool.Schedule("bad-run", req)
			So(outcome.Error, ShouldNotBeNil)
			So(outcome.Result, ShouldBeNil)
		})

		Convey("Metrics count runs and failures", func() {
			<-pool.Schedule("ok-run", businessRequest())

			bad := businessRequest()
			bad.Qubits = 0
			<-pool.Schedule("bad-run", bad)

			counters := pool.Metrics()
			So(counters["run_count"], ShouldBeGreaterThanOrEqualTo, 2)
			So(counters["failure_count"], ShouldBeGreaterThanOrEqualTo, 1)
			So(counters["worker_count"], ShouldEqual, 4)
		})
	})
}
