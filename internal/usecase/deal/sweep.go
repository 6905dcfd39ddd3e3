package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

type SweepReport struct {
	Started   int
	Selected  int
	Activated int
	Expired   int
	Skipped   int
	Failed    int
	// another instance holds the sweep lock, nothing was done
	LockHeld bool
}

// RunExpirySweep starts due scheduled deals and resolves every live deal whose
// timer ran out. Deals are processed one at a time, each under its own timeout;
// a failing deal is logged and left live for the next run.
func (uc *DefaultDealUsecase) RunExpirySweep(ctx context.Context) (*SweepReport, error) {
	ctx, span := uc.tracer().Start(ctx, "DealUsecase.RunExpirySweep")
	defer span.End()

	report := &SweepReport{}
	if uc.Locker != nil {
		release, acquired, err := uc.Locker.TryLock(ctx, uc.Settings.SweepLockKey, uc.Settings.SweepLockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire sweep lock: %w", err)
		}
		if !acquired {
			slog.Debug("expiry sweep skipped, lock is held", "key", uc.Settings.SweepLockKey)
			report.LockHeld = true
			return report, nil
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				slog.Warn("failed to release sweep lock", "key", uc.Settings.SweepLockKey, "error", err)
			}
		}()
	}

	begin := time.Now()
	defer func() { uc.recordSweep(time.Since(begin)) }()

	started, err := uc.StartDueDeals(ctx)
	if err != nil {
		slog.Error("failed to start due deals", "error", err)
	}
	report.Started = started

	deals, err := uc.Store.FindExpiredLiveDeals(ctx, uc.now())
	if err != nil {
		return report, fmt.Errorf("failed to find expired deals: %w", err)
	}
	report.Selected = len(deals)

	for _, deal := range deals {
		if ctx.Err() != nil {
			break
		}
		resolution, err := uc.expireWithTimeout(ctx, deal.ID)
		if err != nil {
			report.Failed++
			uc.recordSweepItemFailure()
			slog.Error("failed to resolve expired deal",
				"deal_id", deal.ID,
				"error", err,
			)
			continue
		}
		switch resolution {
		case ResolutionActivated:
			report.Activated++
		case ResolutionExpired:
			report.Expired++
		default:
			report.Skipped++
		}
	}

	span.SetAttributes(
		attribute.Int("sweep.selected", report.Selected),
		attribute.Int("sweep.failed", report.Failed),
	)
	slog.Info("expiry sweep finished",
		"started", report.Started,
		"selected", report.Selected,
		"activated", report.Activated,
		"expired", report.Expired,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, nil
}

func (uc *DefaultDealUsecase) expireWithTimeout(ctx context.Context, dealID string) (Resolution, error) {
	itemCtx, cancel := context.WithTimeout(ctx, uc.Settings.SweepItemTimeout)
	defer cancel()

	type result struct {
		resolution Resolution
		err        error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{ResolutionNoop, fmt.Errorf("panic while expiring deal: %v", r)}
			}
		}()
		resolution, err := uc.ExpireDeal(itemCtx, dealID)
		done <- result{resolution, err}
	}()

	// on timeout the goroutine is abandoned; itemCtx is cancelled so its
	// transaction does not commit, and ExpireDeal is idempotent for the next run
	select {
	case r := <-done:
		return r.resolution, r.err
	case <-itemCtx.Done():
		return ResolutionNoop, fmt.Errorf("expiry timed out: %w", itemCtx.Err())
	}
}

// StartDueDeals moves scheduled deals whose start time has passed to live.
func (uc *DefaultDealUsecase) StartDueDeals(ctx context.Context) (int, error) {
	deals, err := uc.Store.FindDueScheduledDeals(ctx, uc.now())
	if err != nil {
		return 0, fmt.Errorf("failed to find due deals: %w", err)
	}

	started := 0
	for _, d := range deals {
		deal, err := uc.startDeal(ctx, d.ID)
		if err != nil {
			slog.Error("failed to start deal", "deal_id", d.ID, "error", err)
			continue
		}
		if deal != nil {
			started++
		}
	}
	return started, nil
}
