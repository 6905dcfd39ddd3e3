package setup

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/LavaJover/shvark-flashdeal-service/internal/config"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/coupon"
	"github.com/LavaJover/shvark-flashdeal-service/internal/usecase/analytics"
	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
)

type UseCases struct {
	DealUsecase dealusecase.DealUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	cfg := deps.Config

	couponGenerator, err := coupon.NewGenerator(deps.Repositories.DealStore, cfg.Coupon.Length, cfg.Coupon.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("coupon generator: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Directory.AnalyticsZone)
	if err != nil {
		return nil, fmt.Errorf("analytics zone %q: %w", cfg.Directory.AnalyticsZone, err)
	}
	analyticsGenerator, err := analytics.NewGenerator(loc, analytics.DefaultRules)
	if err != nil {
		return nil, fmt.Errorf("analytics generator: %w", err)
	}

	uc := dealusecase.NewDefaultDealUsecase(
		deps.Repositories.DealStore,
		couponGenerator,
		deps.Notifier,
		deps.Repositories.Directory,
		deps.Repositories.Directory,
		analyticsGenerator,
		settingsFromConfig(cfg),
	)
	uc.Locker = deps.Locker
	uc.EventLogger = deps.EventLogger
	uc.Metrics = deps.Metrics
	uc.Tracer = otel.Tracer("flashdeal/usecase")

	return &UseCases{
		DealUsecase: uc,
	}, nil
}

func settingsFromConfig(cfg *config.FlashDealConfig) dealusecase.Settings {
	return dealusecase.Settings{
		MaxClaimRetries:         cfg.Claim.MaxRetries,
		RetryBackoff:            cfg.Claim.RetryBackoff,
		RescueTriggerRatio:      cfg.Rescue.TriggerRatio,
		RescueWindow:            cfg.Rescue.Window,
		DefaultExtensionMinutes: cfg.Rescue.DefaultExtensionMinutes,
		DefaultBonusPercent:     cfg.Rescue.DefaultBonusPercent,
		CouponPrefix:            cfg.Coupon.Prefix,
		CouponValidity:          cfg.Coupon.Validity,
		CouponMaxAttempts:       cfg.Coupon.MaxAttempts,
		SweepLockKey:            cfg.Sweep.LockKey,
		SweepLockTTL:            cfg.Sweep.LockTTL,
		SweepItemTimeout:        cfg.Sweep.ItemTimeout,
	}
}
