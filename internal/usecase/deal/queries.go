package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

func (uc *DefaultDealUsecase) GetDealStatus(ctx context.Context, dealID string) (*dealdto.DealSnapshot, error) {
	deal, err := uc.Store.GetDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	snapshot := buildSnapshot(deal, uc.now(), false)
	if deal.Status == domain.StatusExpired && uc.Analytics != nil {
		claims, err := uc.Store.GetClaims(ctx, dealID)
		if err != nil {
			return nil, fmt.Errorf("failed to load claims: %w", err)
		}
		snapshot.Analytics = uc.Analytics.Generate(deal, claims)
	}
	return &snapshot, nil
}

// buildSnapshot renders the caller-facing view of a deal. Surprise content is
// only shown when reveal is set or the deal has activated.
func buildSnapshot(deal *domain.Deal, now time.Time, reveal bool) dealdto.DealSnapshot {
	s := dealdto.DealSnapshot{
		DealID:           deal.ID,
		ShopID:           deal.ShopID,
		Status:           deal.Status,
		Content:          deal.Content(reveal),
		CurrentClaims:    deal.CurrentClaims,
		TargetClaims:     deal.TargetClaims,
		ProgressPercent:  deal.Progress() * 100,
		StartsAt:         deal.StartsAt,
		ExpiresAt:        deal.ExpiresAt,
		IsChainDeal:      deal.IsChainDeal,
		ChainLevel:       deal.CurrentChainLevel,
		RescueExtended:   deal.RescueExtended,
		RescueBonusAdded: deal.RescueBonusAdded,
		CouponValidUntil: deal.CouponValidUntil,
		ActivatedAt:      deal.ActivatedAt,
		ExpiredAt:        deal.ExpiredAt,
		CancelledAt:      deal.CancelledAt,
		CancelReason:     deal.CancelReason,
	}
	if deal.Status == domain.StatusLive && now.Before(deal.ExpiresAt) {
		s.Remaining = deal.ExpiresAt.Sub(now)
	}
	if tier, ok := nextTier(deal); ok {
		s.NextTier = &tier
		s.ClaimsToNextTier = max(0, tier.ClaimThreshold-deal.CurrentClaims)
	}
	return s
}
