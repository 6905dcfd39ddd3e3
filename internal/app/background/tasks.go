package background

import (
	"context"
	"log/slog"
	"time"

	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
)

type BackgroundTasks struct {
	DealUsecase   dealusecase.DealUsecase
	SweepInterval time.Duration
	Logger        *slog.Logger
}

func NewBackgroundTasks(dealUC dealusecase.DealUsecase, sweepInterval time.Duration, logger *slog.Logger) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundTasks{
		DealUsecase:   dealUC,
		SweepInterval: sweepInterval,
		Logger:        logger,
	}
}

// StartAll blocks until ctx is cancelled.
func (bt *BackgroundTasks) StartAll(ctx context.Context) error {
	bt.startExpirySweep(ctx)
	return nil
}

func (bt *BackgroundTasks) startExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.runSweep(ctx)
		}
	}
}

func (bt *BackgroundTasks) runSweep(ctx context.Context) {
	report, err := bt.DealUsecase.RunExpirySweep(ctx)
	if err != nil {
		bt.Logger.Error("expiry sweep failed", "error", err.Error())
		return
	}
	// the usecase logs the per-run summary
	if report.LockHeld {
		bt.Logger.Debug("expiry sweep skipped, lock held by another instance")
	}
}
