// Package queue provides the bounded-concurrency worker pools that run
// best-effort follow-up work (title backfill, usage tracking, operator
// notifications) without blocking the request that queued it.
package queue

import (
	"context"
	"sync"

	"github.com/wajeht/bang/internal/logger"
)

const (
	// DefaultWidth is the number of concurrent workers per pool.
	DefaultWidth = 10
	// DefaultBuffer is the pending-task capacity. Tasks past it are dropped:
	// everything queued here is a best-effort side effect.
	DefaultBuffer = 256
)

// Handler processes one task. Errors are logged and dropped, never retried.
type Handler[T any] func(ctx context.Context, task T) error

// Pool is a bounded-concurrency task runner. Enqueue never blocks the
// caller and never panics; at most width tasks run at once.
type Pool[T any] struct {
	name    string
	workers int
	tasks   chan T
	handler Handler[T]
	logger  logger.Logger
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// New creates a pool. Non-positive width or buffer fall back to defaults.
func New[T any](name string, width, buffer int, handler Handler[T], log logger.Logger) *Pool[T] {
	if width <= 0 {
		width = DefaultWidth
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Pool[T]{
		name:    name,
		workers: width,
		tasks:   make(chan T, buffer),
		handler: handler,
		logger:  log,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the workers. They exit when the pool is stopped or the
// context is cancelled; pending tasks may be dropped on shutdown.
func (p *Pool[T]) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			if err := p.handler(ctx, task); err != nil {
				p.logger.Warn("background task failed",
					logger.String("queue", p.name),
					logger.Error(err))
			}
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Enqueue submits a task without blocking. When the buffer is full the task
// is dropped and a warning logged.
func (p *Pool[T]) Enqueue(task T) {
	select {
	case p.tasks <- task:
	default:
		p.logger.Warn("queue full, dropping task",
			logger.String("queue", p.name),
			logger.Int("capacity", cap(p.tasks)))
	}
}

// Stop signals the workers and waits for in-flight tasks to finish.
// Pending (unstarted) tasks are dropped.
func (p *Pool[T]) Stop() {
	close(p.stopCh)
	p.wg.Wait()
}

// Pending returns the number of queued-but-unstarted tasks.
func (p *Pool[T]) Pending() int {
	return len(p.tasks)
}
