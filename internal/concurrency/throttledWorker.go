package concurrency

import (
	"context"
	"time"
)

// ThrottledWorker runs a numbered job repeatedly, pacing the calls so a
// burst of work cannot flood the device it is driving.
type ThrottledWorker struct {
	jobCallback func(step int) error
}

func NewThrottledWorker(jobCallback func(step int) error) ThrottledWorker {
	return ThrottledWorker{jobCallback: jobCallback}
}

func (w *ThrottledWorker) Run(ctx context.Context, steps int, interval time.Duration) {

	limiter := time.NewTicker(interval)
	defer limiter.Stop()

	for step := 0; step < steps; step++ {
		select {
		case <-ctx.Done():
			return
		case <-limiter.C:
			w.jobCallback(step)
		}
	}

}
