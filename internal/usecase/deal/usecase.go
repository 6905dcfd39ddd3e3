package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/metrics"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

type DealUsecase interface {
	CreateDeal(ctx context.Context, input *dealdto.CreateDealInput) (*dealdto.CreateDealOutput, error)
	ClaimDeal(ctx context.Context, input *dealdto.ClaimDealInput) (*dealdto.ClaimOutput, error)
	GetDealStatus(ctx context.Context, dealID string) (*dealdto.DealSnapshot, error)
	CancelDeal(ctx context.Context, input *dealdto.CancelDealInput) error

	ActivateDeal(ctx context.Context, dealID string) (Resolution, error)
	ExpireDeal(ctx context.Context, dealID string) (Resolution, error)

	StartDueDeals(ctx context.Context) (int, error)
	RunExpirySweep(ctx context.Context) (*SweepReport, error)
}

// AnalyticsGenerator builds the post-mortem report for a deal that expired.
type AnalyticsGenerator interface {
	Generate(deal *domain.Deal, claims []*domain.Claim) *domain.DealAnalytics
}

// Settings carries the tunables of the engine. Zero values fall back to
// DefaultSettings.
type Settings struct {
	MaxClaimRetries int
	RetryBackoff    time.Duration

	RescueTriggerRatio      float64
	RescueWindow            time.Duration
	DefaultExtensionMinutes int
	DefaultBonusPercent     float64

	CouponPrefix      string
	CouponValidity    time.Duration
	CouponMaxAttempts int

	SweepLockKey     string
	SweepLockTTL     time.Duration
	SweepItemTimeout time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		MaxClaimRetries:         3,
		RetryBackoff:            100 * time.Millisecond,
		RescueTriggerRatio:      0.8,
		RescueWindow:            5 * time.Minute,
		DefaultExtensionMinutes: 10,
		DefaultBonusPercent:     5,
		CouponPrefix:            "FD",
		CouponValidity:          72 * time.Hour,
		CouponMaxAttempts:       5,
		SweepLockKey:            "flashdeal:sweep:lock",
		SweepLockTTL:            60 * time.Second,
		SweepItemTimeout:        20 * time.Second,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MaxClaimRetries < 0 {
		s.MaxClaimRetries = 0
	}
	if s.RetryBackoff <= 0 {
		s.RetryBackoff = d.RetryBackoff
	}
	if s.RescueTriggerRatio <= 0 {
		s.RescueTriggerRatio = d.RescueTriggerRatio
	}
	if s.RescueWindow <= 0 {
		s.RescueWindow = d.RescueWindow
	}
	if s.DefaultExtensionMinutes <= 0 {
		s.DefaultExtensionMinutes = d.DefaultExtensionMinutes
	}
	if s.DefaultBonusPercent <= 0 {
		s.DefaultBonusPercent = d.DefaultBonusPercent
	}
	if s.CouponPrefix == "" {
		s.CouponPrefix = d.CouponPrefix
	}
	if s.CouponValidity <= 0 {
		s.CouponValidity = d.CouponValidity
	}
	if s.CouponMaxAttempts <= 0 {
		s.CouponMaxAttempts = d.CouponMaxAttempts
	}
	if s.SweepLockKey == "" {
		s.SweepLockKey = d.SweepLockKey
	}
	if s.SweepLockTTL <= 0 {
		s.SweepLockTTL = d.SweepLockTTL
	}
	if s.SweepItemTimeout <= 0 {
		s.SweepItemTimeout = d.SweepItemTimeout
	}
	return s
}

type DefaultDealUsecase struct {
	Store     domain.DealStore
	Coupons   domain.CouponCodeGenerator
	Notifier  domain.NotificationPort
	Shops     domain.ShopDirectory
	Customers domain.CustomerDirectory
	Analytics AnalyticsGenerator
	Settings  Settings

	// Optional collaborators.
	Locker      domain.SweepLocker
	EventLogger domain.EventLogger
	Metrics     *metrics.DealMetrics
	Tracer      trace.Tracer
	Clock       func() time.Time
}

func NewDefaultDealUsecase(
	store domain.DealStore,
	coupons domain.CouponCodeGenerator,
	notifier domain.NotificationPort,
	shops domain.ShopDirectory,
	customers domain.CustomerDirectory,
	analytics AnalyticsGenerator,
	settings Settings,
) *DefaultDealUsecase {
	return &DefaultDealUsecase{
		Store:     store,
		Coupons:   coupons,
		Notifier:  notifier,
		Shops:     shops,
		Customers: customers,
		Analytics: analytics,
		Settings:  settings.withDefaults(),
		Tracer:    otel.Tracer("flashdeal/usecase"),
		Clock:     time.Now,
	}
}

func (uc *DefaultDealUsecase) now() time.Time {
	if uc.Clock == nil {
		return time.Now()
	}
	return uc.Clock()
}

func (uc *DefaultDealUsecase) tracer() trace.Tracer {
	if uc.Tracer == nil {
		return otel.Tracer("flashdeal/usecase")
	}
	return uc.Tracer
}
