package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SnapshotJanitorJob periodically removes stale local state. Cart snapshots
// that nobody touched for the configured retention and sessions past their
// lifetime are deleted in one sweep.
type SnapshotJanitorJob struct {
	carts      ports.CartStore
	sessions   ports.SessionStore
	cartTTL    time.Duration
	sessionTTL time.Duration
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSnapshotJanitorJob creates the janitor. The schedule is a six-field cron
// expression with a seconds column.
func NewSnapshotJanitorJob(
	carts ports.CartStore,
	sessions ports.SessionStore,
	cartTTL time.Duration,
	sessionTTL time.Duration,
	schedule string,
	logger *slog.Logger,
) *SnapshotJanitorJob {
	return &SnapshotJanitorJob{
		carts:      carts,
		sessions:   sessions,
		cartTTL:    cartTTL,
		sessionTTL: sessionTTL,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "snapshot_janitor_job"),
	}
}

// Start schedules the sweep.
func (j *SnapshotJanitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot janitor started",
		"schedule", j.schedule, "cartTTL", j.cartTTL, "sessionTTL", j.sessionTTL)
	return nil
}

// Stop stops the janitor.
func (j *SnapshotJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot janitor stopped")
}

// Sweep runs one pruning pass. A failure on one store does not stop the
// other; both are reported.
func (j *SnapshotJanitorJob) Sweep() {
	ctx := context.Background()

	pruned, err := j.carts.PruneStale(ctx, j.cartTTL)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart snapshot pruning failed", "error", err)
	} else if pruned > 0 {
		j.logger.InfoContext(ctx, "Pruned stale cart snapshots", "count", pruned)
	}

	pruned, err = j.sessions.PruneStale(ctx, j.sessionTTL)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session pruning failed", "error", err)
	} else if pruned > 0 {
		j.logger.InfoContext(ctx, "Pruned expired sessions", "count", pruned)
	}
}
