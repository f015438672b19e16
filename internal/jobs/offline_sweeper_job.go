package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OfflineSweeperJob manages the scheduled detection of silent carriers.
// Runs every thirty seconds and marks carriers offline when their latest
// position report is older than the configured threshold.
type OfflineSweeperJob struct {
	positionRepo ports.PositionRepository
	handler      commands.MarkCarrierOfflineCommandHandler
	threshold    time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewOfflineSweeperJob creates a new job for sweeping stale carriers.
// Uses MarkCarrierOfflineCommandHandler so each transition goes through the
// same path as an explicit offline request, including event publication.
func NewOfflineSweeperJob(
	positionRepo ports.PositionRepository,
	handler commands.MarkCarrierOfflineCommandHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *OfflineSweeperJob {
	return &OfflineSweeperJob{
		positionRepo: positionRepo,
		handler:      handler,
		threshold:    threshold,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "offline_sweeper_job"),
	}
}

// Start begins the sweeper job to run every thirty seconds.
func (j *OfflineSweeperJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		j.sweep(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offline sweeper job started (running every thirty seconds)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the sweeper job.
func (j *OfflineSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offline sweeper job stopped")
}

func (j *OfflineSweeperJob) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.threshold)

	stale, err := j.positionRepo.GetAllStale(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Offline sweep failed to list stale carriers", "error", err)
		return
	}

	for _, carrierPosition := range stale {
		cmd, err := commands.NewMarkCarrierOfflineCommand(carrierPosition.CarrierID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Offline sweep built an invalid command",
				"carrier_id", carrierPosition.CarrierID().String(), "error", err)
			continue
		}

		// A failure for one carrier must not abort the sweep.
		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Offline sweep failed to mark carrier offline",
				"carrier_id", carrierPosition.CarrierID().String(), "error", err)
		}
	}

	if len(stale) > 0 {
		j.logger.InfoContext(ctx, "Offline sweep completed", "stale_carriers", len(stale))
	}
}
