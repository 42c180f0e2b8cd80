package client

import (
	"context"

	"github.com/wanderlust/travel-client/client/internal/workqueue"
)

// executor abstracts the internal job runner used by bulk operations.
type executor interface {
	Submit(context.Context, string, workqueue.Job) error
	Barrier(context.Context, string) error
	Stop()
}
