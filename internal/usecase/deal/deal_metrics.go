package usecase

import (
	"errors"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

func (uc *DefaultDealUsecase) recordClaim(err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordClaim(claimResult(err))
}

func claimResult(err error) string {
	switch {
	case err == nil:
		return "admitted"
	case errors.Is(err, domain.ErrDealNotLive):
		return "not_live"
	case errors.Is(err, domain.ErrDealExpired):
		return "expired"
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return "already_claimed"
	case errors.Is(err, domain.ErrDealNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	default:
		return "error"
	}
}

func (uc *DefaultDealUsecase) recordActivation(path string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordActivation(path)
}

func (uc *DefaultDealUsecase) recordExpiry() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordExpiry()
}

func (uc *DefaultDealUsecase) recordCancellation() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordCancellation()
}

func (uc *DefaultDealUsecase) recordRescue(action domain.RescueAction) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordRescue(string(action))
}

func (uc *DefaultDealUsecase) recordTierUnlocked(level int) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordTierUnlocked(strconv.Itoa(level))
}

func (uc *DefaultDealUsecase) recordNotificationFailure(kind string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordNotificationFailure(kind)
}

func (uc *DefaultDealUsecase) recordSweep(d time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.ObserveSweepDuration(d)
}

func (uc *DefaultDealUsecase) recordSweepItemFailure() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordSweepItemFailure()
}
