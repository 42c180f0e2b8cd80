package workqueue

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apierrors "github.com/wanderlust/travel-client/client/internal/errors"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for %s", what)
	}
}

func TestPool_FIFOPerKey(t *testing.T) {
	p := New(Config{Shards: 4, QueueSize: 64})
	defer p.Stop()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 50; i++ {
		i := i
		if err := p.Submit(context.Background(), "packages", JobFunc(func(context.Context) error {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			return nil
		})); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if err := p.Barrier(context.Background(), "packages"); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 50 {
		t.Fatalf("ran %d jobs, want 50", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order broken at %d: got %d", i, v)
		}
	}
}

func TestPool_DifferentKeysRunInParallel(t *testing.T) {
	p := New(Config{Shards: 2, QueueSize: 4})
	defer p.Stop()

	keyA := "travels"
	keyB := "hotels"
	for tries := 0; tries < 100 && p.shardFor(keyB) == p.shardFor(keyA); tries++ {
		keyB += "x"
	}
	if p.shardFor(keyA) == p.shardFor(keyB) {
		t.Fatal("failed to find keys mapping to different shards")
	}

	release := make(chan struct{})
	if err := p.Submit(context.Background(), keyA, JobFunc(func(context.Context) error {
		<-release
		return nil
	})); err != nil {
		t.Fatalf("submit blocking: %v", err)
	}
	ran := make(chan struct{})
	if err := p.Submit(context.Background(), keyB, JobFunc(func(context.Context) error {
		close(ran)
		return nil
	})); err != nil {
		t.Fatalf("submit other: %v", err)
	}
	waitFor(t, ran, "job on free shard")
	close(release)
}

func TestPool_QueueFull(t *testing.T) {
	p := New(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: 20 * time.Millisecond})
	defer p.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(started)
		<-release
		return nil
	}))
	waitFor(t, started, "blocking job")
	// fills the single slot
	if err := p.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil })); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	err := p.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	if !stderrors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
	var qf *QueueFullError
	if !stderrors.As(err, &qf) || qf.Capacity != 1 {
		t.Fatalf("expected QueueFullError with capacity 1, got %#v", err)
	}
	close(release)
}

func TestPool_SubmitAfterStop(t *testing.T) {
	p := New(Config{Shards: 1})
	p.Stop()
	p.Stop()

	err := p.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	if !stderrors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestPool_StopDrainsQueuedJobs(t *testing.T) {
	p := New(Config{Shards: 1, QueueSize: 16})

	var ran int32
	for i := 0; i < 10; i++ {
		_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		}))
	}
	p.Stop()

	if got := atomic.LoadInt32(&ran); got != 10 {
		t.Fatalf("ran %d jobs, want 10", got)
	}
}

func TestPool_SubmitContextCanceled(t *testing.T) {
	p := New(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: time.Second})
	defer p.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(started)
		<-release
		return nil
	}))
	waitFor(t, started, "blocking job")
	_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Submit(ctx, "k", JobFunc(func(context.Context) error { return nil })); !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	close(release)
}

func TestPool_RetriesRecoverableErrors(t *testing.T) {
	p := New(Config{Shards: 1, MaxAttempts: 3, BaseBackoff: 5 * time.Millisecond})
	defer p.Stop()

	var attempts int32
	_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return apierrors.NewHTTPError("POST /bookings", 503, "")
		}
		return nil
	}))
	if err := p.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
}

func TestPool_IrrecoverableErrorsFailFast(t *testing.T) {
	var handled int32
	var lastKey string
	p := New(Config{
		Shards:      1,
		MaxAttempts: 5,
		BaseBackoff: 5 * time.Millisecond,
		ErrorHandler: func(_ context.Context, key string, err error) {
			lastKey = key
			atomic.AddInt32(&handled, 1)
		},
	})
	defer p.Stop()

	var attempts int32
	_ = p.Submit(context.Background(), "packages", JobFunc(func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return apierrors.NewHTTPError("POST /packages/createPackage", 401, "")
	}))
	if err := p.Barrier(context.Background(), "packages"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Fatalf("attempts = %d, want 1", got)
	}
	if atomic.LoadInt32(&handled) != 1 || lastKey != "packages" {
		t.Fatalf("handler calls = %d key = %q", handled, lastKey)
	}
}

func TestPool_CanceledJobSkipsRun(t *testing.T) {
	var handled int32
	p := New(Config{Shards: 1, QueueSize: 4, MaxAttempts: 1, ErrorHandler: func(context.Context, string, error) {
		atomic.AddInt32(&handled, 1)
	}})
	defer p.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(started)
		<-release
		return nil
	}))
	waitFor(t, started, "blocking job")

	var ran int32
	jobCtx, cancel := context.WithCancel(context.Background())
	if err := p.Submit(jobCtx, "k", JobFunc(func(context.Context) error {
		atomic.StoreInt32(&ran, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}
	cancel()
	close(release)

	if err := p.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&ran) == 1 {
		t.Fatal("canceled job should not run")
	}
	if atomic.LoadInt32(&handled) != 1 {
		t.Fatalf("handler calls = %d, want 1", handled)
	}
}

func TestPool_PanicsAreContained(t *testing.T) {
	p := New(Config{
		Shards:       1,
		MaxAttempts:  3,
		ErrorHandler: func(context.Context, string, error) { panic("handler panic") },
	})
	defer p.Stop()

	var attempts int32
	_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		panic("job panic")
	}))

	ran := make(chan struct{})
	_ = p.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(ran)
		return nil
	}))
	waitFor(t, ran, "job after panics")
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Fatalf("panicking job attempts = %d, want 1", got)
	}
}

func TestJobFunc_Nil(t *testing.T) {
	var f JobFunc
	if err := f.Run(context.Background()); !stderrors.Is(err, ErrNilJob) {
		t.Fatalf("expected ErrNilJob, got %v", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TRAVEL_WQ_SHARDS", "8")
	t.Setenv("TRAVEL_WQ_QUEUE_SIZE", "256")
	t.Setenv("TRAVEL_WQ_ENQUEUE_TIMEOUT", "250ms")
	t.Setenv("TRAVEL_WQ_MAX_ATTEMPTS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Shards != 8 || cfg.QueueSize != 256 || cfg.MaxAttempts != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.EnqueueTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected EnqueueTimeout: %v", cfg.EnqueueTimeout)
	}
	if cfg.BaseBackoff != 100*time.Millisecond {
		t.Fatalf("default BaseBackoff not applied: %v", cfg.BaseBackoff)
	}
}

func TestQueueFullError_Message(t *testing.T) {
	e := &QueueFullError{Shard: 3, Length: 10, Capacity: 16}
	if e.Error() != "work queue 3 full (len=10 cap=16)" {
		t.Fatalf("unexpected message %q", e.Error())
	}
}
