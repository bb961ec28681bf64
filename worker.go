package qscore

import "time"

// evalWorker executes scoring runs. Each run owns its state vector
// exclusively, so workers never share mutable state with one another.
type evalWorker struct {
	pool *EvalPool
	jobs chan evalJob
}

func (w *evalWorker) run() {
	for {
		select {
		case <-w.pool.ctx.Done():
			return
		case w.pool.workers <- w.jobs:
			select {
			case <-w.pool.ctx.Done():
				return
			case job, ok := <-w.jobs:
				if !ok {
					return
				}
				w.process(job)
			}
		}
	}
}

func (w *evalWorker) process(job evalJob) {
	start := job.EnqueuedAt
	if start.IsZero() {
		start = time.Now()
	}
	result, err := w.pool.orchestrator.Score(job.Request)
	w.pool.metrics.recordRun(start, err == nil)
	w.pool.space.Store(job.ID, result, err, job.TTL)
}
