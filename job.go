package qscore

import "time"

// evalJob is one scheduled scoring run.
type evalJob struct {
	ID         string
	Request    ScoreRequest
	TTL        time.Duration
	EnqueuedAt time.Time
}

// JobOption configures a scheduled run.
type JobOption func(*evalJob)

// WithTTL bounds how long the outcome stays in the result space.
func WithTTL(ttl time.Duration) JobOption {
	return func(j *evalJob) {
		j.TTL = ttl
	}
}
