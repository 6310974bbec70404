// Package sweeper periodically removes expired web sessions.
package sweeper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule runs a sweep every ten minutes.
const DefaultSchedule = "@every 10m"

const stopTimeout = 5 * time.Second

// ExpiredDeleter removes sessions expired at now.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// Sweeper runs ExpiredDeleter on a cron schedule.
type Sweeper struct {
	store  ExpiredDeleter
	logger *zap.Logger
	cron   *cron.Cron
	now    func() time.Time

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New registers a sweep job for schedule, which accepts standard cron
// expressions and descriptors such as "@every 10m".
func New(store ExpiredDeleter, schedule string, logger *zap.Logger) (*Sweeper, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		schedule = DefaultSchedule
	}
	s := &Sweeper{
		store:  store,
		logger: logger,
		cron:   cron.New(),
		now:    time.Now,
		ctx:    context.Background(),
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("parse sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins running sweeps in the background until ctx ends or Stop.
func (s *Sweeper) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.ctx = runCtx
	s.cancel = cancel
	s.mu.Unlock()
	s.cron.Start()
	s.logger.Info("session sweeper started")
}

// Stop halts the schedule and waits briefly for a running sweep.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopTimeout):
		s.logger.Warn("session sweeper stop timed out")
	}
}

// SweepOnce deletes expired sessions now.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	removed, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("sweep expired sessions: %w", err)
	}
	return removed, nil
}

func (s *Sweeper) run() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	removed, err := s.SweepOnce(ctx)
	if err != nil {
		s.logger.Warn("session sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("expired sessions removed", zap.Int("count", removed))
	}
}
