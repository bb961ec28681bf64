package qscore

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// EvalPool runs independent circuit evaluations in parallel. Every run
// owns its state vector and random source for its whole lifetime, so
// the pool needs no locking around the engine itself.
type EvalPool struct {
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	workers      chan chan evalJob
	jobs         chan evalJob
	space        *ResultSpace
	metrics      *Metrics
	orchestrator *Orchestrator
	config       *Config
	workerMu     sync.Mutex
	workerList   []*evalWorker
}

// NewEvalPool starts workers ready to score requests. A nil
// orchestrator or config falls back to defaults.
func NewEvalPool(ctx context.Context, workers int, orchestrator *Orchestrator, config *Config) *EvalPool {
	if config == nil {
		config = NewConfig()
	}
	if orchestrator == nil {
		orchestrator = NewOrchestrator(config)
	}
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &EvalPool{
		ctx:          ctx,
		cancel:       cancel,
		workers:      make(chan chan evalJob, workers),
		jobs:         make(chan evalJob, workers*10),
		space:        newResultSpace(),
		metrics:      newMetrics(),
		orchestrator: orchestrator,
		config:       config,
	}

	for i := 0; i < workers; i++ {
		p.startWorker()
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.manage()
	}()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.collectMetrics()
	}()

	return p
}

func (p *EvalPool) manage() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case job := <-p.jobs:
			select {
			case <-p.ctx.Done():
				return
			case workerChan := <-p.workers:
				select {
				case workerChan <- job:
				case <-p.ctx.Done():
					return
				}
			case <-time.After(p.schedulingTimeout()):
				log.Printf("No available workers for run %s", job.ID)
				p.space.Store(job.ID, nil, fmt.Errorf("no available workers"), job.TTL)
			}
		}
	}
}

func (p *EvalPool) collectMetrics() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.metrics.mu.Lock()
			p.metrics.QueueSize = len(p.jobs)
			p.metrics.mu.Unlock()
		}
	}
}

// Schedule queues one scoring run and returns the channel its outcome
// lands on. An empty id gets a generated run ID; the Outcome carries
// the id either way.
func (p *EvalPool) Schedule(id string, req ScoreRequest, opts ...JobOption) chan Outcome {
	if id == "" {
		id = uuid.NewString()
	}
	errnie.Info("scheduling run %s - domain %s, %d qubits", id, req.Domain, req.Qubits)

	job := evalJob{ID: id, Request: req, EnqueuedAt: time.Now()}
	for _, opt := range opts {
		opt(&job)
	}

	ctx, cancel := context.WithTimeout(p.ctx, p.schedulingTimeout())
	defer cancel()

	select {
	case p.jobs <- job:
		return p.space.Await(id)
	case <-ctx.Done():
		ch := make(chan Outcome, 1)
		ch <- Outcome{
			RunID:     id,
			Error:     fmt.Errorf("run scheduling timeout: %w", ctx.Err()),
			CreatedAt: time.Now(),
		}
		close(ch)

		p.metrics.mu.Lock()
		p.metrics.SchedulingFailures++
		p.metrics.mu.Unlock()

		return ch
	}
}

// Metrics exposes the pool's counters.
func (p *EvalPool) Metrics() map[string]interface{} {
	return p.metrics.ExportMetrics()
}

func (p *EvalPool) startWorker() {
	worker := &evalWorker{pool: p, jobs: make(chan evalJob)}
	p.workerMu.Lock()
	p.workerList = append(p.workerList, worker)
	p.workerMu.Unlock()

	p.metrics.mu.Lock()
	p.metrics.WorkerCount++
	p.metrics.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		worker.run()
	}()
}

func (p *EvalPool) schedulingTimeout() time.Duration {
	if p.config != nil && p.config.SchedulingTimeout > 0 {
		return p.config.SchedulingTimeout
	}
	return 5 * time.Second
}

// Close stops the pool and waits for in-flight runs to finish.
func (p *EvalPool) Close() {
	if p == nil {
		return
	}

	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	p.workerMu.Lock()
	for _, worker := range p.workerList {
		close(worker.jobs)
	}
	p.workerList = nil
	p.workerMu.Unlock()

	p.space.Close()
}

// Example demonstrates scoring a small portfolio through the pool.
func Example() {
	ctx := context.Background()
	pool := NewEvalPool(ctx, 4, nil, nil)
	defer pool.Close()

	outcome := <-pool.Schedule("", ScoreRequest{
		Domain: DomainBusiness,
		Qubits: 8,
		Encodings: []ProblemEncoding{
			{Name: "revenue", Value: 0.5},
			{Name: "automation", Value: 0.94},
			{Name: "risk", Value: 0.25},
		},
		Sequence: SequenceAmplify,
		Baseline: 0.85,
		Seed:     42,
	})
	if outcome.Error != nil {
		fmt.Printf("scoring unavailable: %v\n", outcome.Error)
		return
	}
	fmt.Printf("score %.3f advantage %.3f\n", outcome.Result.Score, outcome.Result.Advantage)
}
