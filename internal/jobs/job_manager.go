package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	offlineSweeperJob *OfflineSweeperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	positionRepo ports.PositionRepository,
	markOfflineHandler commands.MarkCarrierOfflineCommandHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		offlineSweeperJob: NewOfflineSweeperJob(positionRepo, markOfflineHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offlineSweeperJob.Start(); err != nil {
		return fmt.Errorf("failed to start offline sweeper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offlineSweeperJob.Stop()
}
