package qscore

import (
	"sync"
	"time"
)

// Outcome wraps one finished scoring run.
type Outcome struct {
	RunID     string
	Result    *Result
	Error     error
	CreatedAt time.Time
	TTL       time.Duration
}

// ResultSpace stores outcomes by run ID and hands out Await channels
// that fire once the outcome lands.
type ResultSpace struct {
	mu      sync.RWMutex
	values  map[string]Outcome
	waiting map[string][]chan Outcome
	quit    chan struct{}
	wg      sync.WaitGroup
}

func newResultSpace() *ResultSpace {
	rs := &ResultSpace{
		values:  make(map[string]Outcome),
		waiting: make(map[string][]chan Outcome),
		quit:    make(chan struct{}),
	}
	rs.wg.Add(1)
	go func() {
		defer rs.wg.Done()
		rs.sweep()
	}()
	return rs
}

// Store records the outcome and releases every waiter.
func (rs *ResultSpace) Store(id string, result *Result, err error, ttl time.Duration) {
	outcome := Outcome{
		RunID:     id,
		Result:    result,
		Error:     err,
		CreatedAt: time.Now(),
		TTL:       ttl,
	}

	rs.mu.Lock()
	rs.values[id] = outcome
	waiters := rs.waiting[id]
	delete(rs.waiting, id)
	rs.mu.Unlock()

	for _, ch := range waiters {
		ch <- outcome
		close(ch)
	}
}

// Await returns a buffered channel that receives the outcome for id:
// immediately when already stored, otherwise when Store lands it.
func (rs *ResultSpace) Await(id string) chan Outcome {
	ch := make(chan Outcome, 1)

	rs.mu.Lock()
	if outcome, ok := rs.values[id]; ok {
		rs.mu.Unlock()
		ch <- outcome
		close(ch)
		return ch
	}
	rs.waiting[id] = append(rs.waiting[id], ch)
	rs.mu.Unlock()
	return ch
}

func (rs *ResultSpace) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rs.quit:
			return
		case <-ticker.C:
			now := time.Now()
			rs.mu.Lock()
			for id, outcome := range rs.values {
				if outcome.TTL > 0 && now.Sub(outcome.CreatedAt) > outcome.TTL {
					delete(rs.values, id)
				}
			}
			rs.mu.Unlock()
		}
	}
}

func (rs *ResultSpace) Close() {
	close(rs.quit)
	rs.wg.Wait()
}
