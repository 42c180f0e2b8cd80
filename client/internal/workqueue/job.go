package workqueue

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilJob is returned when a nil JobFunc is run.
var ErrNilJob = errors.New("nil job")

// Job is a unit of work executed by a Pool.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a plain closure to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job.
func (f JobFunc) Run(ctx context.Context) error {
	if f == nil {
		return fmt.Errorf("workqueue: %w", ErrNilJob)
	}
	return f(ctx)
}
