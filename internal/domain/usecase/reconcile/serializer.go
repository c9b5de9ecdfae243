package reconcile

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
)

// queueCapacity bounds how many events for one record can wait in line.
const queueCapacity = 64

// Serializer runs transitions for the same identifier strictly one at
// a time while letting different identifiers proceed fully
// concurrently. It is an in-process ordering layer on top of the
// store's atomic per-row update, which remains the durability
// guarantee. One worker goroutine per distinct identifier stays
// resident until Shutdown.
type Serializer struct {
	logger coreport.Logger

	// Per-identifier work queues
	queues    sync.Map // map[string]chan *transitionJob
	waitGroup sync.WaitGroup

	// mu is held shared for the queue send and exclusively by Shutdown,
	// so a queue is never closed with a send in flight.
	mu     sync.RWMutex
	closed bool
}

// transitionJob is a queued transition request
type transitionJob struct {
	ctx        context.Context
	run        func(ctx context.Context) (*entity.Transaction, error)
	resultChan chan *transitionResult
}

// transitionResult carries the outcome back to the waiting caller
type transitionResult struct {
	txn *entity.Transaction
	err error
}

// NewSerializer creates a per-record transition serializer
func NewSerializer(logger coreport.Logger) *Serializer {
	return &Serializer{logger: logger}
}

// Execute enqueues the transition for its record and blocks until it has
// run or the context is canceled.
func (s *Serializer) Execute(
	ctx context.Context,
	key string,
	run func(ctx context.Context) (*entity.Transaction, error),
) (*entity.Transaction, error) {
	queue, err := s.queueFor(key)
	if err != nil {
		return nil, err
	}

	job := &transitionJob{
		ctx:        ctx,
		run:        run,
		resultChan: make(chan *transitionResult, 1),
	}

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, errs.ErrInternalServer
	}
	select {
	case queue <- job:
		s.mu.RUnlock()
	case <-ctx.Done():
		s.mu.RUnlock()
		s.logger.Warn("Context canceled while enqueueing transition", map[string]any{
			"record_key": key,
			"error":      ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case result := <-job.resultChan:
		return result.txn, result.err
	case <-ctx.Done():
		// The job still runs to completion in the worker; only the wait
		// is abandoned. Redelivery is safe because transitions are
		// idempotent.
		return nil, ctx.Err()
	}
}

// queueFor returns the record's queue, starting its worker on first use.
func (s *Serializer) queueFor(key string) (chan *transitionJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errs.ErrInternalServer
	}

	queueIface, loaded := s.queues.LoadOrStore(key, make(chan *transitionJob, queueCapacity))
	queue, ok := queueIface.(chan *transitionJob)
	if !ok {
		s.logger.Error("Failed to type assert transition queue", map[string]any{
			"record_key": key,
		})
		return nil, errs.ErrInternalServer
	}

	if !loaded {
		s.waitGroup.Add(1)
		go s.drainQueue(key, queue)
	}
	return queue, nil
}

// drainQueue is the worker goroutine processing one record's transitions
// in arrival order.
func (s *Serializer) drainQueue(key string, queue chan *transitionJob) {
	defer s.waitGroup.Done()

	s.logger.Debug("Transition queue worker started", map[string]any{
		"record_key": key,
	})

	for job := range queue {
		txn, err := job.run(job.ctx)
		job.resultChan <- &transitionResult{txn: txn, err: err}
		close(job.resultChan)
	}

	s.logger.Debug("Transition queue worker stopped", map[string]any{
		"record_key": key,
	})
}

// Shutdown closes all queues and waits for in-flight transitions.
func (s *Serializer) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.queues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *transitionJob); ok {
			close(queue)
		}
		return true
	})
	s.waitGroup.Wait()
}
