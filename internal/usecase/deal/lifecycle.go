package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

// Resolution tells the caller what a lifecycle call did to the deal.
type Resolution string

const (
	ResolutionNoop      Resolution = "noop"
	ResolutionActivated Resolution = "activated"
	ResolutionExpired   Resolution = "expired"
)

const (
	activatedByClaim  = "claim"
	activatedBySweep  = "sweep"
	activatedByManual = "manual"
)

func (uc *DefaultDealUsecase) CreateDeal(ctx context.Context, input *dealdto.CreateDealInput) (*dealdto.CreateDealOutput, error) {
	now := uc.now()
	deal := newDeal(input, now)
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	if !deal.ExpiresAt.After(now) {
		return nil, fmt.Errorf("%w: deal window closed at %s", domain.ErrInvalidDeal, deal.ExpiresAt.Format(time.RFC3339))
	}
	if err := uc.Store.CreateDeal(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	uc.logEvent(ctx, deal.ID, domain.EventDealCreated,
		fmt.Sprintf("target=%d time_limit=%d starts_at=%s", deal.TargetClaims, deal.TimeLimitMinutes, deal.StartsAt.Format(time.RFC3339)), now)

	if !deal.StartsAt.After(now) {
		started, err := uc.startDeal(ctx, deal.ID)
		if err != nil {
			// the sweep picks up due scheduled deals on its next run
			slog.Error("failed to start deal", "deal_id", deal.ID, "error", err)
		} else if started != nil {
			deal = started
		}
	}
	return &dealdto.CreateDealOutput{Deal: buildSnapshot(deal, uc.now(), false)}, nil
}

func newDeal(input *dealdto.CreateDealInput, now time.Time) *domain.Deal {
	startsAt := input.StartsAt
	if startsAt.IsZero() {
		startsAt = now
	}
	deal := &domain.Deal{
		ID:                     uuid.New().String(),
		ShopID:                 input.ShopID,
		Title:                  input.Title,
		Description:            input.Description,
		ImageURL:               input.ImageURL,
		Category:               input.Category,
		DiscountPercent:        input.DiscountPercent,
		MaxDiscountValue:       input.MaxDiscountValue,
		TargetClaims:           input.TargetClaims,
		TimeLimitMinutes:       input.TimeLimitMinutes,
		StartsAt:               startsAt,
		ExpiresAt:              startsAt.Add(time.Duration(input.TimeLimitMinutes) * time.Minute),
		CouponValidUntil:       input.CouponValidUntil,
		Status:                 domain.StatusScheduled,
		MilestonesNotified:     []int{},
		IsChainDeal:            len(input.ChainTiers) > 0,
		ChainTiers:             append([]domain.ChainTier(nil), input.ChainTiers...),
		RescueExtensionMinutes: input.RescueExtensionMinutes,
		RescueBonusPercent:     input.RescueBonusPercent,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if s := input.Surprise; s != nil {
		deal.IsSurpriseDeal = true
		deal.HiddenTitle = s.HiddenTitle
		deal.HiddenDiscount = s.HiddenDiscount
		deal.HiddenProduct = s.HiddenProduct
		deal.MysteryImage = s.MysteryImage
		if deal.DiscountPercent == 0 {
			deal.DiscountPercent = s.HiddenDiscount
		}
	}
	deal.OriginalDiscountPercent = deal.DiscountPercent
	return deal
}

// startDeal publishes a scheduled deal and tells the shop's followers about it.
// Returns nil when the deal was no longer scheduled.
func (uc *DefaultDealUsecase) startDeal(ctx context.Context, dealID string) (*domain.Deal, error) {
	current, err := uc.Store.GetDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.StatusScheduled {
		return nil, nil
	}

	// resolved before taking the lock, directory I/O must not hold the deal row
	followers, err := uc.Customers.ListShopFollowers(ctx, current.ShopID)
	if err != nil {
		slog.Warn("failed to list shop followers", "deal_id", dealID, "shop_id", current.ShopID, "error", err)
		followers = nil
	}

	fx := &dealEffects{}
	err = uc.Store.WithDealLock(ctx, dealID, func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		if deal.Status != domain.StatusScheduled {
			return nil
		}
		now := uc.now()
		if err := deal.TransitionTo(domain.StatusLive, now); err != nil {
			return err
		}
		// started too late to be claimable, the sweep expires it without a fan-out
		if !now.Before(deal.ExpiresAt) {
			slog.Warn("deal started after its window closed", "deal_id", deal.ID, "expires_at", deal.ExpiresAt)
			followers = nil
		}
		deal.NotifiedCustomersCount = len(followers)
		if err := tx.SaveDeal(ctx, deal); err != nil {
			return fmt.Errorf("failed to save deal: %w", err)
		}
		fx.deal = deal
		fx.started = true
		fx.followers = followers
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishEffects(ctx, fx)
	return fx.deal, nil
}

// ActivateDeal activates a live deal and issues its coupons. It is a no-op for
// a deal that already left the live state.
func (uc *DefaultDealUsecase) ActivateDeal(ctx context.Context, dealID string) (Resolution, error) {
	fx := &dealEffects{}
	err := uc.Store.WithDealLock(ctx, dealID, func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		if deal.Status != domain.StatusLive {
			return nil
		}
		if err := uc.activateLocked(ctx, tx, deal, uc.now(), fx); err != nil {
			return err
		}
		fx.activatedBy = activatedByManual
		if err := tx.SaveDeal(ctx, deal); err != nil {
			return fmt.Errorf("failed to save deal: %w", err)
		}
		fx.deal = deal
		return nil
	})
	if err != nil {
		return ResolutionNoop, err
	}

	uc.publishEffects(ctx, fx)
	return fx.resolution(), nil
}

// activateLocked must run inside WithDealLock. It flips the deal to activated
// and gives every claim without a code a fresh one.
func (uc *DefaultDealUsecase) activateLocked(ctx context.Context, tx domain.DealTx, deal *domain.Deal, now time.Time, fx *dealEffects) error {
	if err := deal.TransitionTo(domain.StatusActivated, now); err != nil {
		return err
	}
	if deal.CouponValidUntil == nil {
		until := now.Add(uc.Settings.CouponValidity)
		deal.CouponValidUntil = &until
	}

	claims, err := tx.ListClaims(ctx, deal.ID)
	if err != nil {
		return fmt.Errorf("failed to list claims: %w", err)
	}

	issued := make(map[string]struct{}, len(claims))
	for _, c := range claims {
		if c.HasCoupon() {
			issued[*c.CouponCode] = struct{}{}
		}
	}
	for _, c := range claims {
		if c.HasCoupon() {
			continue
		}
		code, err := uc.issueCoupon(ctx, issued)
		if err != nil {
			return err
		}
		if err := tx.SetCouponCode(ctx, c.ID, code); err != nil {
			return fmt.Errorf("failed to set coupon for claim %s: %w", c.ID, err)
		}
		c.CouponCode = &code
		fx.issued++
	}

	fx.activated = true
	fx.claims = claims
	return nil
}

func (uc *DefaultDealUsecase) issueCoupon(ctx context.Context, issued map[string]struct{}) (string, error) {
	for attempt := 0; attempt < uc.Settings.CouponMaxAttempts; attempt++ {
		code, err := uc.Coupons.Generate(ctx, uc.Settings.CouponPrefix)
		if err != nil {
			return "", fmt.Errorf("failed to generate coupon code: %w", err)
		}
		if _, dup := issued[code]; dup {
			continue
		}
		issued[code] = struct{}{}
		return code, nil
	}
	return "", domain.ErrCouponCollision
}

// ExpireDeal resolves a live deal whose timer has run out. A deal that met its
// target in the meantime is activated instead of expired.
func (uc *DefaultDealUsecase) ExpireDeal(ctx context.Context, dealID string) (Resolution, error) {
	ctx, span := uc.tracer().Start(ctx, "DealUsecase.ExpireDeal", trace.WithAttributes(
		attribute.String("deal.id", dealID),
	))
	defer span.End()

	fx := &dealEffects{}
	err := uc.Store.WithDealLock(ctx, dealID, func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		if deal.Status != domain.StatusLive {
			return nil
		}
		now := uc.now()

		if deal.TargetReached() {
			if err := uc.activateLocked(ctx, tx, deal, now, fx); err != nil {
				return err
			}
			fx.activatedBy = activatedBySweep
		} else {
			// a rescue extension may have landed after the deal was selected
			if now.Before(deal.ExpiresAt) {
				return nil
			}
			if err := deal.TransitionTo(domain.StatusExpired, now); err != nil {
				return err
			}
			claims, err := tx.ListClaims(ctx, deal.ID)
			if err != nil {
				return fmt.Errorf("failed to list claims: %w", err)
			}
			fx.expired = true
			fx.claims = claims
		}

		if err := tx.SaveDeal(ctx, deal); err != nil {
			return fmt.Errorf("failed to save deal: %w", err)
		}
		fx.deal = deal
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ResolutionNoop, err
	}

	span.SetAttributes(attribute.String("deal.resolution", string(fx.resolution())))
	uc.publishEffects(ctx, fx)
	return fx.resolution(), nil
}

// CancelDeal is allowed from scheduled or live only. Claims are kept as history
// and no coupons are issued.
func (uc *DefaultDealUsecase) CancelDeal(ctx context.Context, input *dealdto.CancelDealInput) error {
	if input.DealID == "" {
		return fmt.Errorf("%w: deal_id is required", domain.ErrInvalidDeal)
	}

	fx := &dealEffects{}
	err := uc.Store.WithDealLock(ctx, input.DealID, func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		if err := deal.TransitionTo(domain.StatusCancelled, uc.now()); err != nil {
			return err
		}
		deal.CancelReason = input.Reason
		if err := tx.SaveDeal(ctx, deal); err != nil {
			return fmt.Errorf("failed to save deal: %w", err)
		}
		fx.deal = deal
		fx.cancelled = true
		return nil
	})
	if err != nil {
		return err
	}

	uc.publishEffects(ctx, fx)
	return nil
}
