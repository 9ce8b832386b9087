// Package report records test-run outcomes, in memory and optionally in
// MySQL.
package report

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusRunning = "running"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

// Run is one execution of a test scenario.
type Run struct {
	ID          string
	Name        string
	Status      string
	StartedAt   time.Time
	CompletedAt time.Time
}

// Check is one recorded assertion or step within a run.
type Check struct {
	ID             string
	RunID          string
	Name           string
	Status         string
	DurationMillis int64
	ErrorMessage   string
}

// Summary aggregates the checks of a run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Recorder collects checks for a single run. Safe for use from the
// parallel request demos.
type Recorder struct {
	mu     sync.Mutex
	run    Run
	checks []Check
}

// NewRecorder starts a new run.
func NewRecorder(name string) *Recorder {
	return &Recorder{
		run: Run{
			ID:        uuid.NewString(),
			Name:      name,
			Status:    StatusRunning,
			StartedAt: time.Now(),
		},
	}
}

// Record adds one check outcome. A nil err means the check passed.
func (r *Recorder) Record(name string, duration time.Duration, err error) {
	check := Check{
		ID:             uuid.NewString(),
		RunID:          r.run.ID,
		Name:           name,
		Status:         StatusPassed,
		DurationMillis: duration.Milliseconds(),
	}
	if err != nil {
		check.Status = StatusFailed
		check.ErrorMessage = err.Error()
	}

	r.mu.Lock()
	r.checks = append(r.checks, check)
	r.mu.Unlock()
}

// Step runs fn, times it, and records the outcome under name.
func (r *Recorder) Step(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.Record(name, time.Since(start), err)
	return err
}

// Finish closes the run. The run fails if any check failed.
func (r *Recorder) Finish() Run {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.run.CompletedAt = time.Now()
	r.run.Status = StatusPassed
	for _, c := range r.checks {
		if c.Status == StatusFailed {
			r.run.Status = StatusFailed
			break
		}
	}
	return r.run
}

// Checks returns a copy of the recorded checks.
func (r *Recorder) Checks() []Check {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Check, len(r.checks))
	copy(out, r.checks)
	return out
}

// Summarize counts the recorded outcomes.
func (r *Recorder) Summarize() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{Total: len(r.checks)}
	for _, c := range r.checks {
		if c.Status == StatusFailed {
			s.Failed++
		} else {
			s.Passed++
		}
	}
	return s
}
