package schedule

import (
	"context"
	"time"

	"github.com/mselser95/trading-results/internal/cache"
	"go.uber.org/zap"
)

// Cutover is the process-wide wall-clock time-of-day at which the cache
// is flushed, once per day, in local time.
type Cutover struct {
	Hour   int
	Minute int
}

// NextFlush returns the next flush instant strictly after now: today's
// cutover if it is still ahead, otherwise tomorrow's. Recomputed fresh on
// every call, never accumulated, so the loop cannot drift. A clock change
// or DST shift moves the result by the shift amount; accepted.
func (c Cutover) NextFlush(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Until returns the wait from now to the next flush instant. Always > 0.
func (c Cutover) Until(now time.Time) time.Duration {
	return c.NextFlush(now).Sub(now)
}

// Scheduler flushes the cache store at every cutover, forever. Single
// state, waiting; each cutover transitions back into waiting. Stopped
// only by cancelling its context.
type Scheduler struct {
	cutover Cutover
	store   cache.Store
	logger  *zap.Logger

	// wait is overridable so tests can drive many cutovers without
	// wall-clock delay.
	wait func(now time.Time) time.Duration
}

// NewScheduler creates a flush scheduler.
func NewScheduler(cutover Cutover, store cache.Store, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cutover: cutover,
		store:   store,
		logger:  logger,
		wait:    cutover.Until,
	}
}

// Run blocks until ctx is cancelled, flushing the cache store at each
// cutover.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("flush-scheduler-starting",
		zap.Int("hour", s.cutover.Hour),
		zap.Int("minute", s.cutover.Minute))

	wait := s.wait(time.Now())
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		s.logger.Info("flush-scheduled", zap.Duration("wait", wait))

		select {
		case <-ctx.Done():
			s.logger.Info("flush-scheduler-stopping")
			return ctx.Err()
		case <-timer.C:
			s.store.FlushAll(ctx)
			ScheduledFlushesTotal.Inc()
			s.logger.Info("scheduled-flush-completed")
		}

		// Recomputed from the clock each cycle so late wakeups cannot
		// accumulate into drift.
		wait = s.wait(time.Now())
		timer.Reset(wait)
	}
}
