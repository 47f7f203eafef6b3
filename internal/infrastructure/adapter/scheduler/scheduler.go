package scheduler

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// WithdrawableCounter counts one-shot records that matured before now
type WithdrawableCounter interface {
	CountWithdrawable(ctx context.Context, now time.Time) (int64, error)
}

// LeaseCleaner removes owner leases whose holder never released them
type LeaseCleaner interface {
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

// SweepRecorder publishes what the jobs found
type SweepRecorder interface {
	SetWithdrawable(count int64)
	AddExpiredLeases(count int64)
}

// Config holds the cron specs of the jobs; an empty spec disables its job
type Config struct {
	MaturitySweepSpec string
	LockCleanupSpec   string
}

// Scheduler runs the periodic maintenance jobs.
// Records never change state on their own, so the sweep only reports; nothing is withdrawn for the owner.
type Scheduler struct {
	cronEngine   *cron.Cron
	config       Config
	records      WithdrawableCounter
	leases       LeaseCleaner
	recorder     SweepRecorder
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewScheduler creates a scheduler; jobs are registered by Start
func NewScheduler(
	config Config,
	records WithdrawableCounter,
	leases LeaseCleaner,
	recorder SweepRecorder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Scheduler {
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		config:       config,
		records:      records,
		leases:       leases,
		recorder:     recorder,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron engine
func (s *Scheduler) Start() error {
	s.logger.Info("Starting maintenance scheduler", map[string]any{
		"maturity_sweep": s.config.MaturitySweepSpec,
		"lock_cleanup":   s.config.LockCleanupSpec,
	})

	if s.config.MaturitySweepSpec != "" {
		if _, err := s.cronEngine.AddFunc(s.config.MaturitySweepSpec, s.runMaturitySweep); err != nil {
			return fmt.Errorf("could not add maturity sweep job: %w", err)
		}
	}
	if s.config.LockCleanupSpec != "" {
		if _, err := s.cronEngine.AddFunc(s.config.LockCleanupSpec, s.runLeaseCleanup); err != nil {
			return fmt.Errorf("could not add lock cleanup job: %w", err)
		}
	}

	s.cronEngine.Start()
	return nil
}

// Stop stops the engine and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cronEngine.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Maintenance scheduler stopped", nil)
	case <-ctx.Done():
		s.logger.Warn("Maintenance scheduler stop timed out", nil)
	}
}

func (s *Scheduler) runMaturitySweep() {
	ctx, cancel := s.timeProvider.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	now := s.timeProvider.Now()
	count, err := s.records.CountWithdrawable(ctx, now)
	if err != nil {
		s.logger.Error("Maturity sweep failed", map[string]any{"error": err.Error()})
		return
	}

	s.recorder.SetWithdrawable(count)
	s.logger.Debug("Maturity sweep completed", map[string]any{
		"withdrawable": count,
		"as_of":        now.Unix(),
	})
}

func (s *Scheduler) runLeaseCleanup() {
	ctx, cancel := s.timeProvider.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	removed, err := s.leases.CleanupExpiredLocks(ctx)
	if err != nil {
		s.logger.Error("Owner lease cleanup failed", map[string]any{"error": err.Error()})
		return
	}

	s.recorder.AddExpiredLeases(removed)
	if removed > 0 {
		s.logger.Warn("Removed expired owner leases", map[string]any{"count": removed})
	}
}

// cronLogger routes cron's own logging into the core logger
type cronLogger struct {
	logger coreport.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, kvFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := kvFields(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error("cron: "+msg, fields)
}

func kvFields(keysAndValues []interface{}) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
