package application

import (
	"context"
	"sync"

	"github.com/tplcheck/tplcheck/internal/domain"
)

// ProgressFunc is invoked once per completed target, in completion order.
// done counts completions so far, total is the number of targets submitted.
type ProgressFunc func(done, total int, outcome domain.Outcome)

// WorkerPool runs the tool over a target set with bounded parallelism.
// Workers post outcomes to a channel drained by a single consumer, so the
// collected slice is never appended from more than one goroutine.
type WorkerPool struct {
	runner  domain.ToolRunner
	workers int
}

func NewWorkerPool(runner domain.ToolRunner, workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{runner: runner, workers: workers}
}

// Run executes one tool invocation per target with at most p.workers in
// flight and returns exactly one outcome per target. Completion order is
// not submission order; callers sort before reporting.
func (p *WorkerPool) Run(ctx context.Context, targets []domain.Target, progress ProgressFunc) []domain.Outcome {
	total := len(targets)
	if total == 0 {
		return nil
	}

	workers := p.workers
	if workers > total {
		workers = total
	}

	workCh := make(chan domain.Target)
	resCh := make(chan domain.Outcome, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range workCh {
				resCh <- p.runner.Run(ctx, t)
			}
		}()
	}

	go func() {
		for _, t := range targets {
			workCh <- t
		}
		close(workCh)
	}()

	go func() {
		wg.Wait()
		close(resCh)
	}()

	outcomes := make([]domain.Outcome, 0, total)
	for out := range resCh {
		outcomes = append(outcomes, out)
		if progress != nil {
			progress(len(outcomes), total, out)
		}
	}
	return outcomes
}
