package actor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/codewandler/troupe-go/core/metrics"
)

// TaskFunc is a background task scheduled by a handler.
type TaskFunc func()

// scheduler runs background tasks on behalf of one actor. Concurrency is
// bounded by a semaphore; Wait blocks until all in-flight tasks finish so
// removal and shutdown can release the actor's resources deterministically.
type scheduler struct {
	ctx context.Context
	log *slog.Logger
	sem chan struct{}

	wg       sync.WaitGroup
	inflight metrics.Gauge
}

func newScheduler(ctx context.Context, log *slog.Logger, max int, inflight metrics.Gauge) *scheduler {
	var sem chan struct{}
	if max > 0 {
		sem = make(chan struct{}, max)
	}
	return &scheduler{
		ctx:      ctx,
		log:      log,
		sem:      sem,
		inflight: inflight,
	}
}

// Schedule runs f asynchronously. Tasks submitted after the actor's context
// is cancelled are dropped.
func (s *scheduler) Schedule(f TaskFunc) {
	select {
	case <-s.ctx.Done():
		return
	default:
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if s.sem != nil {
			select {
			case <-s.ctx.Done():
				return
			case s.sem <- struct{}{}:
			}
			defer func() { <-s.sem }()
		}

		s.inflight.Inc()
		defer s.inflight.Dec()

		s.run(f)
	}()
}

func (s *scheduler) run(f TaskFunc) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("scheduled task panicked", slog.Any("recovered", r))
		}
	}()
	f()
}

// Wait blocks until all in-flight tasks complete.
func (s *scheduler) Wait() { s.wg.Wait() }
