package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleEvictor drops sessions that were last used before a cutoff.
type IdleEvictor interface {
	EvictIdle(cutoff time.Time) int
}

// SessionJanitor periodically removes idle chat sessions.
type SessionJanitor struct {
	stores   []IdleEvictor
	idleTTL  time.Duration
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionJanitor creates a janitor sweeping stores on schedule (cron spec or @every).
func NewSessionJanitor(schedule string, idleTTL time.Duration, logger *zap.Logger, stores ...IdleEvictor) *SessionJanitor {
	return &SessionJanitor{
		stores:   stores,
		idleTTL:  idleTTL,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the cleanup schedule until ctx is cancelled.
func (j *SessionJanitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(j.schedule, func() {
		if n := j.Sweep(); n > 0 {
			j.logger.Info("idle sessions evicted", zap.Int("count", n))
		}
	})
	if err != nil {
		return fmt.Errorf("add cleanup job %q: %w", j.schedule, err)
	}

	c.Start()
	j.logger.Info("session janitor started",
		zap.String("schedule", j.schedule),
		zap.Duration("idle_ttl", j.idleTTL),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")

	return nil
}

// Sweep evicts every session idle longer than the TTL and returns how many were removed.
func (j *SessionJanitor) Sweep() int {
	cutoff := j.now().Add(-j.idleTTL)

	total := 0
	for _, s := range j.stores {
		total += s.EvictIdle(cutoff)
	}
	return total
}
