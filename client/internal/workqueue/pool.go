// Package workqueue runs write jobs on a fixed set of workers. Jobs that
// share a key run one after another in submission order; jobs with
// different keys may run in parallel. Failed jobs are retried with
// exponential backoff unless the failure is classified irrecoverable.
//
// Callers must not Submit concurrently for the same key; FIFO order relies
// on that external serialisation.
package workqueue

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/wanderlust/travel-client/client/internal/errors"
)

type queuedJob struct {
	ctx context.Context
	key string
	job Job
}

// Pool executes Jobs on worker goroutines partitioned by a stable hash of the key.
type Pool struct {
	cfg    Config
	queues []chan queuedJob

	done   chan struct{}
	closed uint32

	wg sync.WaitGroup
}

// New starts a Pool with cfg; zero fields take defaults.
func New(cfg Config) *Pool {
	cfg = cfg.withDefaults()
	p := &Pool{
		cfg:    cfg,
		queues: make([]chan queuedJob, cfg.Shards),
		done:   make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedJob, cfg.QueueSize)
		p.queues[i] = ch
		p.wg.Add(1)
		go p.runWorker(i, ch)
	}
	return p
}

// Submit enqueues job on the shard derived from key.
//
//   - Returns ErrPoolClosed once Stop was called.
//   - Returns a *QueueFullError if the shard stays full for EnqueueTimeout.
//   - Returns ctx.Err() if ctx ends first.
func (p *Pool) Submit(ctx context.Context, key string, job Job) error {
	if atomic.LoadUint32(&p.closed) == 1 {
		return ErrPoolClosed
	}
	select {
	case <-p.done:
		return ErrPoolClosed
	default:
	}

	shard := p.shardFor(key)
	ch := p.queues[shard]

	timer := time.NewTimer(p.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- queuedJob{ctx: ctx, key: key, job: job}:
		submissionsTotal.WithLabelValues(labelFor(shard)).Inc()
		return nil
	case <-p.done:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		queueFullTotal.WithLabelValues(labelFor(shard)).Inc()
		return &QueueFullError{Shard: shard, Length: len(ch), Capacity: cap(ch)}
	}
}

// Barrier waits until every job submitted for key before the call has run.
func (p *Pool) Barrier(ctx context.Context, key string) error {
	done := make(chan struct{})
	if err := p.Submit(ctx, key, JobFunc(func(context.Context) error {
		close(done)
		return nil
	})); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Stop drains every queue, waits for the workers and returns. It is
// idempotent and safe for concurrent use.
func (p *Pool) Stop() {
	if !atomic.CompareAndSwapUint32(&p.closed, 0, 1) {
		return
	}
	log.Debug().Int("shards", p.cfg.Shards).Msg("workqueue: stopping, draining queues")
	close(p.done)
	p.wg.Wait()
	log.Debug().Msg("workqueue: stopped")
}

// Close lets Pool satisfy io.Closer.
func (p *Pool) Close() error {
	p.Stop()
	return nil
}

func (p *Pool) runWorker(idx int, ch <-chan queuedJob) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("shard", idx).Interface("panic", r).Msg("workqueue: worker panic")
		}
	}()

	label := labelFor(idx)
	for {
		select {
		case qj := <-ch:
			if qj.job != nil {
				if !p.execute(label, qj) {
					return
				}
			}
			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-p.done:
			drained := 0
			for {
				select {
				case qj := <-ch:
					if qj.job != nil {
						if err := runJob(qj.ctx, qj.job); err != nil {
							p.fail(label, qj, err)
						}
						drained++
					}
				default:
					if drained > 0 {
						log.Debug().Int("shard", idx).Int("jobs", drained).Msg("workqueue: drained")
					}
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

// execute runs one job with retries. It returns false when the pool stopped
// while the job was waiting for its next attempt.
func (p *Pool) execute(label string, qj queuedJob) bool {
	select {
	case <-qj.ctx.Done():
		p.fail(label, qj, qj.ctx.Err())
		return true
	default:
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = p.cfg.MaxInterval
	exp.Reset()

	for attempt := 1; ; attempt++ {
		start := time.Now()
		err := runJob(qj.ctx, qj.job)
		runDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
		if err == nil {
			return true
		}
		if errors.IsIrrecoverable(err) || attempt >= p.cfg.MaxAttempts {
			p.fail(label, qj, err)
			return true
		}
		select {
		case <-time.After(exp.NextBackOff()):
		case <-p.done:
			p.fail(label, qj, err)
			return false
		case <-qj.ctx.Done():
			p.fail(label, qj, qj.ctx.Err())
			return true
		}
	}
}

// runJob turns a panicking job into an irrecoverable failure so the shard
// keeps serving later jobs.
func runJob(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return job.Run(ctx)
}

func (p *Pool) fail(label string, qj queuedJob, err error) {
	jobFailuresTotal.WithLabelValues(label).Inc()
	if p.cfg.ErrorHandler == nil {
		log.Warn().Err(err).Str("key", qj.key).Msg("workqueue: job failed")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("workqueue: error handler panic")
		}
	}()
	p.cfg.ErrorHandler(qj.ctx, qj.key, err)
}

func (p *Pool) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(p.cfg.Shards))
}
