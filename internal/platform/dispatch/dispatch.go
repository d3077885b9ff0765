// Package dispatch runs fire-and-forget side effects on a bounded worker pool.
// Tasks never see the request's cancellation; each gets its own timeout and
// failures are logged, never returned to the caller.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"meanin/internal/platform/config"
	"meanin/internal/platform/logger"
)

// Task is one unit of background work
type Task func(ctx context.Context) error

// Options sizes the pool
type Options struct {
	Workers int
	Queue   int
	Timeout time.Duration
}

// OptionsFromEnv reads DISPATCH_WORKERS, DISPATCH_QUEUE and DISPATCH_TIMEOUT from cfg
func OptionsFromEnv(cfg config.Conf) Options {
	return Options{
		Workers: cfg.MayInt("DISPATCH_WORKERS", 4),
		Queue:   cfg.MayInt("DISPATCH_QUEUE", 256),
		Timeout: cfg.MayDuration("DISPATCH_TIMEOUT", 5*time.Second),
	}
}

type job struct {
	name string
	ctx  context.Context
	fn   Task
}

// Dispatcher owns the queue and its workers
type Dispatcher struct {
	opt  Options
	log  logger.Logger
	jobs chan job
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// ErrClosed is returned by Close when called twice
var ErrClosed = errors.New("dispatch: closed")

// New starts opt.Workers goroutines
func New(opt Options, log logger.Logger) *Dispatcher {
	if opt.Workers <= 0 {
		opt.Workers = 1
	}
	if opt.Queue < 0 {
		opt.Queue = 0
	}
	if opt.Timeout <= 0 {
		opt.Timeout = 5 * time.Second
	}
	d := &Dispatcher{opt: opt, log: log, jobs: make(chan job, opt.Queue)}
	d.wg.Add(opt.Workers)
	for i := 0; i < opt.Workers; i++ {
		go d.work()
	}
	return d
}

// Go enqueues fn without blocking. It reports false when the queue is full or
// the dispatcher is closed; the task is then dropped and logged.
// Values on ctx (request id, logger scope) are kept, its cancellation is not.
func (d *Dispatcher) Go(ctx context.Context, name string, fn Task) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn().Str("task", name).Msg("dispatch closed, task dropped")
		return false
	}
	select {
	case d.jobs <- job{name: name, ctx: context.WithoutCancel(ctx), fn: fn}:
		return true
	default:
		logger.C(ctx).Warn().Str("task", name).Msg("dispatch queue full, task dropped")
		return false
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for j := range d.jobs {
		d.run(j)
	}
}

func (d *Dispatcher) run(j job) {
	ctx, cancel := context.WithTimeout(j.ctx, d.opt.Timeout)
	defer cancel()
	defer func() {
		if v := recover(); v != nil {
			logger.C(ctx).Error().Str("task", j.name).Interface("panic", v).Msg("dispatch task panicked")
		}
	}()
	if err := j.fn(ctx); err != nil {
		logger.C(ctx).Warn().Err(err).Str("task", j.name).Msg("dispatch task failed")
	}
}

// Close stops accepting tasks and waits for queued ones to finish or ctx to end
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
