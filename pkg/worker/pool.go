package worker

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"code-refactor-insight/pkg/log"
)

// Job is one unit of background work.
type Job struct {
	ID   string
	Name string
	Run  func(ctx context.Context)
}

// Config sizes the pool.
type Config struct {
	Workers   int
	QueueSize int
}

// Pool runs submitted jobs on a fixed set of goroutines. Jobs are detached
// from the submitter: they get a fresh context that is never cancelled.
type Pool struct {
	jobs    chan Job
	workers int
	l       log.Logger

	mu      sync.RWMutex
	started bool
	closed  bool
	wg      sync.WaitGroup
}

// New creates a Pool. Call Start before submitting.
func New(cfg Config, l log.Logger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	return &Pool{
		jobs:    make(chan Job, cfg.QueueSize),
		workers: cfg.Workers,
		l:       l,
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.closed {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.loop(i)
	}
}

// Submit enqueues job without blocking.
func (p *Pool) Submit(job Job) error {
	if job.Run == nil {
		return ErrNilJob
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop rejects new jobs and waits until queued jobs are finished or ctx is done.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker pool drain: %w", ctx.Err())
	}
}

func (p *Pool) loop(n int) {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(n, job)
	}
}

func (p *Pool) run(n int, job Job) {
	ctx := log.WithTraceID(context.Background(), job.ID)

	defer func() {
		if r := recover(); r != nil {
			p.l.Errorf(ctx, "pkg.worker: job %s (%s) panicked on worker %d: %v\n%s", job.Name, job.ID, n, r, debug.Stack())
		}
	}()

	p.l.Debugf(ctx, "pkg.worker: worker %d running job %s (%s)", n, job.Name, job.ID)
	job.Run(ctx)
}
