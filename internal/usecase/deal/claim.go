package usecase

import (
	"context"
	"errors"
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

// ClaimDeal registers a customer's claim. Lock timeouts are retried with a
// linear backoff up to Settings.MaxClaimRetries, every other error is returned
// as is.
func (uc *DefaultDealUsecase) ClaimDeal(ctx context.Context, input *dealdto.ClaimDealInput) (*dealdto.ClaimOutput, error) {
	ctx, span := uc.tracer().Start(ctx, "DealUsecase.ClaimDeal", trace.WithAttributes(
		attribute.String("deal.id", input.DealID),
		attribute.String("customer.id", input.CustomerID),
	))
	defer span.End()

	if input.DealID == "" || input.CustomerID == "" {
		return nil, fmt.Errorf("%w: deal_id and customer_id are required", domain.ErrInvalidClaim)
	}

	var (
		claim *domain.Claim
		fx    *dealEffects
		err   error
	)
	for attempt := 0; ; attempt++ {
		claim, fx, err = uc.admitClaim(ctx, input)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) || attempt >= uc.Settings.MaxClaimRetries {
			uc.recordClaim(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		slog.Warn("claim admission conflict, retrying",
			"deal_id", input.DealID,
			"customer_id", input.CustomerID,
			"attempt", attempt+1,
		)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, ctx.Err())
		case <-time.After(uc.Settings.RetryBackoff * time.Duration(attempt+1)):
		}
	}

	uc.recordClaim(nil)
	span.SetAttributes(attribute.Int("claim.position", claim.Position))
	uc.publishEffects(ctx, fx)

	return &dealdto.ClaimOutput{
		Claim:     claim,
		Deal:      buildSnapshot(fx.deal, uc.now(), true),
		Activated: fx.activated,
	}, nil
}

func (uc *DefaultDealUsecase) admitClaim(ctx context.Context, input *dealdto.ClaimDealInput) (*domain.Claim, *dealEffects, error) {
	var claim *domain.Claim
	fx := &dealEffects{}

	err := uc.Store.WithDealLock(ctx, input.DealID, func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		now := uc.now()
		if deal.Status != domain.StatusLive {
			return domain.ErrDealNotLive
		}
		if !now.Before(deal.ExpiresAt) {
			return domain.ErrDealExpired
		}
		claimed, err := tx.HasClaim(ctx, deal.ID, input.CustomerID)
		if err != nil {
			return fmt.Errorf("failed to check existing claim: %w", err)
		}
		if claimed {
			return domain.ErrAlreadyClaimed
		}

		deal.CurrentClaims++
		fx.tiers = evaluateChainTiers(deal)

		claim = &domain.Claim{
			ID:                     uuid.New().String(),
			DealID:                 deal.ID,
			CustomerID:             input.CustomerID,
			Position:               deal.CurrentClaims,
			ReferredBy:             referral(input),
			ClaimSource:            claimSource(input),
			ClaimedAtLevel:         deal.CurrentChainLevel,
			ClaimedDiscountPercent: deal.DiscountPercent,
			ClaimedAt:              now,
		}

		// runs before activation so a completing claim still gets the bonus
		fx.rescues = uc.applyRescue(deal, now)

		fx.milestones = markMilestones(deal)
		claim.MilestoneNotificationsSent = append([]int(nil), fx.milestones...)

		if err := tx.CreateClaim(ctx, claim); err != nil {
			return fmt.Errorf("failed to create claim: %w", err)
		}

		if deal.TargetReached() {
			if err := uc.activateLocked(ctx, tx, deal, now, fx); err != nil {
				return err
			}
			fx.activatedBy = activatedByClaim
		}

		deal.UpdatedAt = now
		if err := tx.SaveDeal(ctx, deal); err != nil {
			return fmt.Errorf("failed to save deal: %w", err)
		}
		fx.deal = deal
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if fx.activated {
		for _, c := range fx.claims {
			if c.ID == claim.ID {
				claim.CouponCode = c.CouponCode
				break
			}
		}
	}
	return claim, fx, nil
}

// markMilestones records every threshold at or below the current progress that
// has not been announced yet. A claim that jumps over several thresholds
// announces all of them.
func markMilestones(deal *domain.Deal) []int {
	if deal.TargetClaims <= 0 {
		return nil
	}
	var crossed []int
	for _, m := range domain.MilestoneThresholds {
		if deal.MilestoneNotified(m) {
			continue
		}
		if deal.CurrentClaims*100 >= m*deal.TargetClaims {
			deal.MilestonesNotified = append(deal.MilestonesNotified, m)
			crossed = append(crossed, m)
		}
	}
	return crossed
}

func referral(input *dealdto.ClaimDealInput) *string {
	if input.ReferredBy == nil || *input.ReferredBy == "" || *input.ReferredBy == input.CustomerID {
		return nil
	}
	ref := *input.ReferredBy
	return &ref
}

func claimSource(input *dealdto.ClaimDealInput) domain.ClaimSource {
	if input.Source != "" {
		return input.Source
	}
	if referral(input) != nil {
		return domain.SourceReferral
	}
	return domain.SourceDirect
}
