package worker

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces"
)

var ErrQueueFull = errors.New("assessment job queue full")

const (
	DefaultWorkers       = 4
	DefaultQueueCapacity = 64
)

// Pool runs assessment jobs on a fixed set of workers pulling from a bounded
// queue. Submissions beyond the queue capacity are rejected rather than
// spawning unbounded goroutines under burst traffic.
type Pool struct {
	jobs    chan string
	workers int
	runner  usecase.IProcessAssessmentUseCase
	wg      sync.WaitGroup
}

var _ interfaces.IAssessmentDispatcher = (*Pool)(nil)

func NewPool(runner usecase.IProcessAssessmentUseCase, workers, queueCapacity int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueCapacity <= 0 {
		queueCapacity = DefaultQueueCapacity
	}
	return &Pool{
		jobs:    make(chan string, queueCapacity),
		workers: workers,
		runner:  runner,
	}
}

// Start launches the worker goroutines. Workers stop accepting new jobs when
// ctx is cancelled; a job already picked up runs to its terminal status (a
// dispatched run cannot be cancelled).
func (p *Pool) Start(ctx context.Context) {
	log.Printf("[worker][pool] starting workers=%d queue_capacity=%d", p.workers, cap(p.jobs))
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(ctx, i)
	}
}

func (p *Pool) work(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[worker][pool] worker stopping worker=%d", id)
			return
		case assessmentID, ok := <-p.jobs:
			if !ok {
				return
			}
			p.runner.Run(context.WithoutCancel(ctx), assessmentID)
		}
	}
}

// Submit enqueues an assessment id for background processing. It never
// blocks; a saturated queue sheds the job with ErrQueueFull.
func (p *Pool) Submit(assessmentID string) error {
	select {
	case p.jobs <- assessmentID:
		return nil
	default:
		return ErrQueueFull
	}
}

// Wait blocks until every worker has stopped. Call after cancelling the
// context passed to Start.
func (p *Pool) Wait() {
	p.wg.Wait()
}
