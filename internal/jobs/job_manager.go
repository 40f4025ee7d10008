// Package jobs provides the scheduled background tasks of the storefront,
// built on github.com/robfig/cron/v3. The only job today is the snapshot
// janitor, which keeps the local sqlite state from growing without bound.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
)

// JobManager coordinates the scheduled jobs in the application.
type JobManager struct {
	snapshotJanitorJob *SnapshotJanitorJob
}

// NewJobManager creates a job manager over the local stores.
func NewJobManager(
	carts ports.CartStore,
	sessions ports.SessionStore,
	cartTTL time.Duration,
	sessionTTL time.Duration,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotJanitorJob: NewSnapshotJanitorJob(carts, sessions, cartTTL, sessionTTL, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotJanitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot janitor: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJanitorJob.Stop()
}
