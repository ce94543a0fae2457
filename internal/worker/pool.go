// Package worker fans per-date work out over a bounded set of goroutines.
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job[R any] interface {
	Execute(ctx context.Context) R
}

// JobFunc adapts a function to Job
type JobFunc[R any] func(ctx context.Context) R

// Execute calls f
func (f JobFunc[R]) Execute(ctx context.Context) R {
	return f(ctx)
}

// Pool manages a pool of workers that execute jobs concurrently.
// Results are collected as they complete, so Submit never waits on a
// reader.
type Pool[R any] struct {
	workers    int
	jobQueue   chan Job[R]
	results    chan R
	collected  []R
	wg         sync.WaitGroup
	collector  sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
	queueOnce  sync.Once
}

// NewPool creates a new worker pool bound to ctx
func NewPool[R any](ctx context.Context, workers int) *Pool[R] {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool[R]{
		workers:    workers,
		jobQueue:   make(chan Job[R], workers*2),
		results:    make(chan R, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the workers and the result collector
func (p *Pool[R]) Start() {
	p.collector.Add(1)
	go func() {
		defer p.collector.Done()
		for r := range p.results {
			p.collected = append(p.collected, r)
		}
	}()

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool[R]) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.results <- job.Execute(p.ctx)
		}
	}
}

// Submit queues a job. It returns false when the pool has been shut down
// or its context cancelled.
func (p *Pool[R]) Submit(job Job[R]) bool {
	select {
	case <-p.ctx.Done():
		return false
	default:
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobQueue <- job:
		return true
	}
}

// Wait waits for all submitted jobs and returns their results in
// completion order
func (p *Pool[R]) Wait() []R {
	p.closeQueue()
	p.wg.Wait()
	p.closeResults()
	p.collector.Wait()
	p.cancelFunc()
	return p.collected
}

// Shutdown stops the workers without running queued jobs and returns the
// results collected so far
func (p *Pool[R]) Shutdown() []R {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
	p.collector.Wait()
	return p.collected
}

func (p *Pool[R]) closeQueue() {
	p.queueOnce.Do(func() {
		close(p.jobQueue)
	})
}

func (p *Pool[R]) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
