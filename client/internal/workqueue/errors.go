package workqueue

import (
	"errors"
	"fmt"

	apierrors "github.com/wanderlust/travel-client/client/internal/errors"
)

// ErrQueueFull reports transient back-pressure: the key's queue stayed full
// for the whole enqueue timeout.
var ErrQueueFull = errors.New("work queue full")

// ErrPoolClosed reports that the pool was stopped and accepts no more work.
var ErrPoolClosed = errors.New("work pool closed")

// QueueFullError carries diagnostics while satisfying errors.Is(_, ErrQueueFull).
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("work queue %d full (len=%d cap=%d)", e.Shard, e.Length, e.Capacity)
}

func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }

type panicError struct{ value any }

func (e *panicError) Error() string { return fmt.Sprintf("job panic: %v", e.value) }

// Category keeps a panicking job from being retried.
func (e *panicError) Category() apierrors.ErrorCategory { return apierrors.Irrecoverable }
