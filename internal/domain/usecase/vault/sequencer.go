package vault

import (
	"context"
	"errors"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
)

const (
	defaultLockTimeout  = 5 * time.Second
	defaultQueueSize    = 100
	defaultLockAttempts = 3
	lockRetryInterval   = 50 * time.Millisecond
	lockReleaseTimeout  = 2 * time.Second
	defaultOpTimeout    = 30 * time.Second
	defaultIdleTimeout  = time.Minute
)

// OwnerOperation is one state-mutating step on a depositor partition
type OwnerOperation func(ctx context.Context) error

// ownerRequest represents a queued operation
type ownerRequest struct {
	ctx        context.Context
	owner      string
	op         OwnerOperation
	resultChan chan error
}

// Sequencer runs operations on one depositor strictly one after another, while
// different depositors proceed in parallel. Each operation also holds the owner's
// lease in storage, which keeps other processes off the same partition.
type Sequencer struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	ownerLockRepo persistence.OwnerLockRepository

	lockTimeout  time.Duration
	lockAttempts int
	queueSize    int
	opTimeout    time.Duration
	idleTimeout  time.Duration

	// Owner-based queues for strict ordering
	ownerQueues    sync.Map // map[string]chan *ownerRequest
	queueWaitGroup sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewSequencer creates a new Sequencer
func NewSequencer(
	ownerLockRepo persistence.OwnerLockRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Sequencer {
	return &Sequencer{
		logger:        logger,
		timeProvider:  timeProvider,
		ownerLockRepo: ownerLockRepo,
		lockTimeout:   defaultLockTimeout,
		lockAttempts:  defaultLockAttempts,
		queueSize:     defaultQueueSize,
		opTimeout:     defaultOpTimeout,
		idleTimeout:   defaultIdleTimeout,
	}
}

// WithLockTimeout sets how long an owner lease is held before it may be taken over
func (s *Sequencer) WithLockTimeout(timeout time.Duration) *Sequencer {
	if timeout > 0 {
		s.lockTimeout = timeout
	}
	return s
}

// WithQueueSize sets the capacity of each owner's queue
func (s *Sequencer) WithQueueSize(size int) *Sequencer {
	if size > 0 {
		s.queueSize = size
	}
	return s
}

// WithOperationTimeout bounds a single operation once it has started
func (s *Sequencer) WithOperationTimeout(timeout time.Duration) *Sequencer {
	if timeout > 0 {
		s.opTimeout = timeout
	}
	return s
}

// WithIdleTimeout sets how long an owner's worker waits for work before it exits
func (s *Sequencer) WithIdleTimeout(timeout time.Duration) *Sequencer {
	if timeout > 0 {
		s.idleTimeout = timeout
	}
	return s
}

// Enqueue adds an operation to the owner's queue and waits for its result.
// Once started, an operation runs to completion even if ctx is canceled; the caller
// then stops waiting but the outcome stands.
func (s *Sequencer) Enqueue(ctx context.Context, owner string, op OwnerOperation) error {
	req := &ownerRequest{
		ctx:        ctx,
		owner:      owner,
		op:         op,
		resultChan: make(chan error, 1),
	}
	if err := s.submit(req); err != nil {
		return err
	}

	select {
	case err := <-req.resultChan:
		return err
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for operation result", map[string]any{
			"owner": owner,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// submit hands the request to the owner's worker. The read lock is held from lookup
// to send, so a retiring worker never leaves a request behind.
func (s *Sequencer) submit(req *ownerRequest) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.ErrInternalServer
	}

	queue := s.queueFor(req.owner)
	select {
	case queue <- req:
		return nil
	case <-req.ctx.Done():
		s.logger.Warn("Context canceled while enqueueing operation", map[string]any{
			"owner": req.owner,
			"error": req.ctx.Err().Error(),
		})
		return req.ctx.Err()
	}
}

// queueFor returns the owner's queue, starting its worker on first use
func (s *Sequencer) queueFor(owner string) chan *ownerRequest {
	if queue, ok := s.ownerQueues.Load(owner); ok {
		return queue.(chan *ownerRequest)
	}

	queue, loaded := s.ownerQueues.LoadOrStore(owner, make(chan *ownerRequest, s.queueSize))
	ch := queue.(chan *ownerRequest)
	if !loaded {
		s.logger.Debug("Starting queue worker for owner", map[string]any{
			"owner": owner,
		})
		s.queueWaitGroup.Add(1)
		go s.processOwnerOperations(owner, ch)
	}
	return ch
}

// processOwnerOperations drains one owner's queue until shutdown or until the
// owner has been idle for idleTimeout
func (s *Sequencer) processOwnerOperations(owner string, queue chan *ownerRequest) {
	defer s.queueWaitGroup.Done()

	idle := time.NewTimer(s.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case req, ok := <-queue:
			if !ok {
				s.logger.Debug("Queue worker stopped", map[string]any{
					"owner": owner,
				})
				return
			}
			s.handle(req)
			idle.Reset(s.idleTimeout)

		case <-idle.C:
			if s.retire(owner, queue) {
				s.logger.Debug("Queue worker retired after idling", map[string]any{
					"owner": owner,
				})
				return
			}
			idle.Reset(s.idleTimeout)
		}
	}
}

func (s *Sequencer) handle(req *ownerRequest) {
	// skip requests whose caller has gone
	if err := req.ctx.Err(); err != nil {
		req.resultChan <- err
		return
	}
	req.resultChan <- s.runLocked(req)
}

// retire removes an empty queue from the map. It never blocks: while a submit holds the
// read lock or shutdown holds the write lock the worker stays and tries again later.
func (s *Sequencer) retire(owner string, queue chan *ownerRequest) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()

	if s.closed || len(queue) > 0 {
		return false
	}
	return s.ownerQueues.CompareAndDelete(owner, queue)
}

// runLocked holds the owner lease for the duration of the operation. The operation is
// detached from the caller's cancellation so a disconnect can't cut a ledger call short.
func (s *Sequencer) runLocked(req *ownerRequest) error {
	ctx, cancel := s.timeProvider.WithTimeout(context.WithoutCancel(req.ctx), s.opTimeout)
	defer cancel()

	if err := s.acquireLease(ctx, req.owner); err != nil {
		return err
	}
	defer s.releaseLease(req.owner)

	return req.op(ctx)
}

func (s *Sequencer) acquireLease(ctx context.Context, owner string) error {
	var err error
	for attempt := 0; attempt < s.lockAttempts; attempt++ {
		err = s.ownerLockRepo.AcquireLock(ctx, owner, s.lockTimeout)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrOwnerBusy) {
			return err
		}

		s.logger.Debug("Owner lease busy, waiting", map[string]any{
			"owner":   owner,
			"attempt": attempt + 1,
		})
		select {
		case <-time.After(lockRetryInterval * time.Duration(attempt+1)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.logger.Warn("Could not acquire owner lease", map[string]any{
		"owner":    owner,
		"attempts": s.lockAttempts,
	})
	return err
}

func (s *Sequencer) releaseLease(owner string) {
	ctx, cancel := s.timeProvider.WithTimeout(context.Background(), lockReleaseTimeout)
	defer cancel()

	if err := s.ownerLockRepo.ReleaseLock(ctx, owner); err != nil {
		// the lease expires on its own
		s.logger.Warn("Failed to release owner lease", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
	}
}

// Shutdown stops accepting operations and waits for queued ones to finish
func (s *Sequencer) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.logger.Info("Shutting down owner sequencer", nil)

	s.ownerQueues.Range(func(_, queue any) bool {
		close(queue.(chan *ownerRequest))
		return true
	})

	s.queueWaitGroup.Wait()
	s.logger.Info("Owner sequencer shut down", nil)
}
