package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

// dealEffects collects what a locked mutation did, so notifications and audit
// entries go out only after the transaction has committed.
type dealEffects struct {
	deal   *domain.Deal
	claims []*domain.Claim

	tiers      []tierUnlock
	rescues    []domain.RescueAction
	milestones []int

	started   bool
	followers []*domain.Customer

	activated   bool
	activatedBy string
	issued      int

	expired   bool
	cancelled bool
}

type tierUnlock struct {
	level int
	tier  domain.ChainTier
}

func (fx *dealEffects) resolution() Resolution {
	switch {
	case fx.activated:
		return ResolutionActivated
	case fx.expired:
		return ResolutionExpired
	default:
		return ResolutionNoop
	}
}

// publishEffects fans out notifications for a committed change. Every recipient
// is delivered independently; a failed send is logged and counted only.
func (uc *DefaultDealUsecase) publishEffects(ctx context.Context, fx *dealEffects) {
	if fx == nil || fx.deal == nil {
		return
	}
	// the change is committed, a cancelled request must not cut the fan-out short
	ctx = context.WithoutCancel(ctx)
	deal := fx.deal
	now := uc.now()

	if fx.started {
		uc.logEvent(ctx, deal.ID, domain.EventDealStarted,
			fmt.Sprintf("expires_at=%s followers=%d", deal.ExpiresAt.Format(time.RFC3339), len(fx.followers)), now)
		for _, customer := range fx.followers {
			uc.deliver("deal_live", deal.ID, customer.ID, func() error {
				return uc.Notifier.SendDealLive(ctx, customer, deal)
			})
		}
	}

	for _, t := range fx.tiers {
		uc.recordTierUnlocked(t.level)
		uc.logEvent(ctx, deal.ID, domain.EventTierUnlocked,
			fmt.Sprintf("level=%d threshold=%d discount=%.2f", t.level, t.tier.ClaimThreshold, t.tier.DiscountPercent), now)
		uc.deliver("tier_unlocked", deal.ID, deal.ShopID, func() error {
			return uc.Notifier.SendTierUnlocked(ctx, deal, t.level, t.tier)
		})
	}

	for _, action := range fx.rescues {
		uc.recordRescue(action)
		uc.logEvent(ctx, deal.ID, domain.EventRescueApplied, rescueDetails(deal, action), now)
		uc.deliver("rescue", deal.ID, deal.ShopID, func() error {
			return uc.Notifier.SendRescue(ctx, deal, action)
		})
	}

	for _, percent := range fx.milestones {
		uc.deliver("milestone", deal.ID, deal.ShopID, func() error {
			return uc.Notifier.SendMilestone(ctx, deal, percent)
		})
	}

	if fx.activated {
		uc.recordActivation(fx.activatedBy)
		uc.logEvent(ctx, deal.ID, domain.EventDealActivated,
			fmt.Sprintf("claims=%d coupons_issued=%d via=%s", deal.CurrentClaims, fx.issued, fx.activatedBy), now)
		uc.announceActivation(ctx, deal, fx.claims)
	}

	if fx.expired {
		uc.recordExpiry()
		uc.logEvent(ctx, deal.ID, domain.EventDealExpired,
			fmt.Sprintf("claims=%d target=%d shortfall=%d", deal.CurrentClaims, deal.TargetClaims, deal.Shortfall()), now)
		uc.announceExpiry(ctx, deal, fx.claims)
	}

	if fx.cancelled {
		uc.recordCancellation()
		uc.logEvent(ctx, deal.ID, domain.EventDealCancelled, deal.CancelReason, now)
	}
}

func (uc *DefaultDealUsecase) announceActivation(ctx context.Context, deal *domain.Deal, claims []*domain.Claim) {
	for _, claim := range claims {
		customer, err := uc.Customers.GetCustomer(ctx, claim.CustomerID)
		if err != nil {
			uc.lookupFailed("activation", deal.ID, claim.CustomerID, err)
			continue
		}
		uc.deliver("activation", deal.ID, customer.ID, func() error {
			return uc.Notifier.SendActivation(ctx, customer, claim, deal)
		})
	}

	shop, err := uc.Shops.GetShop(ctx, deal.ShopID)
	if err != nil {
		uc.lookupFailed("activation_shop", deal.ID, deal.ShopID, err)
		return
	}
	uc.deliver("activation_shop", deal.ID, shop.OwnerID, func() error {
		return uc.Notifier.SendActivationToShop(ctx, shop, deal)
	})
}

func (uc *DefaultDealUsecase) announceExpiry(ctx context.Context, deal *domain.Deal, claims []*domain.Claim) {
	for _, claim := range claims {
		customer, err := uc.Customers.GetCustomer(ctx, claim.CustomerID)
		if err != nil {
			uc.lookupFailed("expiry", deal.ID, claim.CustomerID, err)
			continue
		}
		uc.deliver("expiry", deal.ID, customer.ID, func() error {
			return uc.Notifier.SendExpiry(ctx, customer, deal)
		})
	}

	if uc.Analytics == nil {
		return
	}
	report := uc.Analytics.Generate(deal, claims)
	shop, err := uc.Shops.GetShop(ctx, deal.ShopID)
	if err != nil {
		uc.lookupFailed("analytics", deal.ID, deal.ShopID, err)
		return
	}
	uc.deliver("analytics", deal.ID, shop.OwnerID, func() error {
		return uc.Notifier.SendAnalytics(ctx, shop, deal, report)
	})
}

func (uc *DefaultDealUsecase) deliver(kind, dealID, recipient string, send func() error) {
	if uc.Notifier == nil {
		return
	}
	if err := send(); err != nil {
		slog.Warn("notification failed",
			"kind", kind,
			"deal_id", dealID,
			"recipient", recipient,
			"error", err,
		)
		uc.recordNotificationFailure(kind)
	}
}

func (uc *DefaultDealUsecase) lookupFailed(kind, dealID, id string, err error) {
	slog.Warn("notification recipient lookup failed",
		"kind", kind,
		"deal_id", dealID,
		"recipient", id,
		"error", err,
	)
	uc.recordNotificationFailure(kind)
}

func (uc *DefaultDealUsecase) logEvent(ctx context.Context, dealID string, eventType domain.DealEventType, details string, at time.Time) {
	if uc.EventLogger == nil {
		return
	}
	event := domain.DealEvent{DealID: dealID, Type: eventType, Details: details, Timestamp: at}
	if err := uc.EventLogger.LogDealEvent(ctx, event); err != nil {
		slog.Warn("failed to log deal event", "deal_id", dealID, "type", eventType, "error", err)
	}
}

func rescueDetails(deal *domain.Deal, action domain.RescueAction) string {
	if action == domain.RescueTimeExtension {
		return fmt.Sprintf("action=%s minutes=%d expires_at=%s", action, deal.RescueExtensionMinutes, deal.ExpiresAt.Format(time.RFC3339))
	}
	return fmt.Sprintf("action=%s bonus=%.2f discount=%.2f", action, deal.RescueBonusPercent, deal.DiscountPercent)
}
