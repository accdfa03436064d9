package enrichment

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool fans candidate-enrichment tasks across a fixed set of workers.
// Task errors flow out as Results; one failing task never stops the rest.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	buf := p.workers * 64
	if buf < 1 {
		buf = 1
	}
	out := make(chan Result, buf)
	if p == nil {
		close(out)
		return out
	}

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
