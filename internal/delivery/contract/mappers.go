package contract

import (
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

func ToCreateDealInput(r *CreateDealRequest) *dealdto.CreateDealInput {
	input := &dealdto.CreateDealInput{
		ShopID:                 r.ShopID,
		Title:                  r.Title,
		Description:            r.Description,
		ImageURL:               r.ImageURL,
		Category:               r.Category,
		DiscountPercent:        r.DiscountPercent,
		MaxDiscountValue:       r.MaxDiscountValue,
		TargetClaims:           r.TargetClaims,
		TimeLimitMinutes:       r.TimeLimitMinutes,
		CouponValidUntil:       r.CouponValidUntil,
		RescueExtensionMinutes: r.RescueExtensionMinutes,
		RescueBonusPercent:     r.RescueBonusPercent,
	}
	if r.StartsAt != nil {
		input.StartsAt = *r.StartsAt
	}
	for _, t := range r.ChainTiers {
		input.ChainTiers = append(input.ChainTiers, domain.ChainTier{
			ClaimThreshold:  t.ClaimThreshold,
			DiscountPercent: t.DiscountPercent,
		})
	}
	if s := r.Surprise; s != nil {
		input.Surprise = &dealdto.SurpriseParams{
			HiddenTitle:    s.HiddenTitle,
			HiddenDiscount: s.HiddenDiscount,
			HiddenProduct:  s.HiddenProduct,
			MysteryImage:   s.MysteryImage,
		}
	}
	return input
}

func ToClaimDealInput(r *ClaimDealRequest) *dealdto.ClaimDealInput {
	input := &dealdto.ClaimDealInput{
		DealID:     r.DealID,
		CustomerID: r.CustomerID,
		Source:     domain.ClaimSource(r.Source),
	}
	if r.ReferredBy != "" {
		ref := r.ReferredBy
		input.ReferredBy = &ref
	}
	return input
}

func FromSnapshot(s *dealdto.DealSnapshot) *Deal {
	d := &Deal{
		ID:     s.DealID,
		ShopID: s.ShopID,
		Status: string(s.Status),
		Content: Content{
			Title:           s.Content.Title,
			Description:     s.Content.Description,
			ImageURL:        s.Content.ImageURL,
			Product:         s.Content.Product,
			DiscountPercent: s.Content.DiscountPercent,
			Revealed:        s.Content.Revealed,
		},
		CurrentClaims:    s.CurrentClaims,
		TargetClaims:     s.TargetClaims,
		ProgressPercent:  s.ProgressPercent,
		RemainingSeconds: int64(s.Remaining.Seconds()),
		StartsAt:         s.StartsAt,
		ExpiresAt:        s.ExpiresAt,
		IsChainDeal:      s.IsChainDeal,
		ChainLevel:       s.ChainLevel,
		ClaimsToNextTier: s.ClaimsToNextTier,
		RescueExtended:   s.RescueExtended,
		RescueBonusAdded: s.RescueBonusAdded,
		CouponValidUntil: s.CouponValidUntil,
		ActivatedAt:      s.ActivatedAt,
		ExpiredAt:        s.ExpiredAt,
		CancelledAt:      s.CancelledAt,
		CancelReason:     s.CancelReason,
	}
	if s.NextTier != nil {
		d.NextTier = &ChainTier{ClaimThreshold: s.NextTier.ClaimThreshold, DiscountPercent: s.NextTier.DiscountPercent}
	}
	if a := s.Analytics; a != nil {
		d.Analytics = &Analytics{
			CompletionPercent: a.CompletionPercent,
			Shortfall:         a.Shortfall,
			ConversionRate:    a.ConversionRate,
			PeakHour:          a.PeakHour,
			PeakHourClaims:    a.PeakHourClaims,
			AvgClaimsPerMin:   a.AvgClaimsPerMin,
			ReferralPercent:   a.ReferralPercent,
			QuarterClaims:     a.QuarterClaims,
		}
		for _, sg := range a.Suggestions {
			d.Analytics.Suggestions = append(d.Analytics.Suggestions, Suggestion{Code: sg.Code, Message: sg.Message})
		}
	}
	return d
}

func FromClaim(c *domain.Claim) *Claim {
	out := &Claim{
		ID:                     c.ID,
		DealID:                 c.DealID,
		CustomerID:             c.CustomerID,
		Position:               c.Position,
		ClaimSource:            string(c.ClaimSource),
		ClaimedAtLevel:         c.ClaimedAtLevel,
		ClaimedDiscountPercent: c.ClaimedDiscountPercent,
		ClaimedAt:              c.ClaimedAt,
	}
	if c.CouponCode != nil {
		out.CouponCode = *c.CouponCode
	}
	return out
}

func FromClaimOutput(o *dealdto.ClaimOutput) *ClaimDealResponse {
	return &ClaimDealResponse{
		Claim:     FromClaim(o.Claim),
		Deal:      FromSnapshot(&o.Deal),
		Activated: o.Activated,
	}
}

func FromSweepReport(r *dealusecase.SweepReport) *RunExpirySweepResponse {
	return &RunExpirySweepResponse{
		Started:   r.Started,
		Selected:  r.Selected,
		Activated: r.Activated,
		Expired:   r.Expired,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
		LockHeld:  r.LockHeld,
	}
}
