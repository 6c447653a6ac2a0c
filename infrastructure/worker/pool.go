package worker

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Job is a unit of background work
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pool defines the interface for the background worker pool
type Pool interface {
	Start()
	Submit(job Job) bool
	Stop(ctx context.Context) error
	WorkerCount() int
	QueueLength() int
}

// pool runs jobs on a fixed number of workers fed by a bounded queue
type pool struct {
	size   int
	jobs   chan Job
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewPool creates a pool of size workers with room for queueSize pending jobs
func NewPool(size, queueSize int, logger *zap.Logger) Pool {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &pool{
		size:   size,
		jobs:   make(chan Job, queueSize),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Start launches the workers; calling it again is a no-op
func (p *pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.stopped {
		return
	}
	p.started = true

	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run(i + 1)
	}

	p.logger.Info("Worker pool started", zap.Int("worker_count", p.size))
}

func (p *pool) run(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		p.process(id, job)
	}
}

func (p *pool) process(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Job panicked",
				zap.Int("worker_id", id),
				zap.String("job", job.Name),
				zap.Any("panic", r),
			)
		}
	}()

	if err := job.Run(p.ctx); err != nil {
		p.logger.Warn("Job failed",
			zap.Int("worker_id", id),
			zap.String("job", job.Name),
			zap.Error(err),
		)
	}
}

// Submit queues a job without blocking. It returns false when the queue is
// full or the pool is stopped.
func (p *pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return false
	}

	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop refuses new jobs and waits for queued ones to finish. If ctx ends
// first, running jobs see their context cancelled and ctx's error is returned.
func (p *pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		p.logger.Info("All workers stopped")
		return nil
	case <-ctx.Done():
		p.cancel()
		p.logger.Warn("Timeout waiting for workers to stop", zap.Int("queued", len(p.jobs)))
		return fmt.Errorf("stop worker pool: %w", ctx.Err())
	}
}

// WorkerCount returns the configured number of workers
func (p *pool) WorkerCount() int {
	return p.size
}

// QueueLength returns the number of jobs waiting for a worker
func (p *pool) QueueLength() int {
	return len(p.jobs)
}
