package dealdto

import (
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

type CreateDealInput struct {
	ShopID      string
	Title       string
	Description string
	ImageURL    string
	Category    string

	DiscountPercent  float64
	MaxDiscountValue float64

	TargetClaims     int
	TimeLimitMinutes int
	// zero value publishes the deal immediately
	StartsAt         time.Time
	CouponValidUntil *time.Time

	ChainTiers []domain.ChainTier
	Surprise   *SurpriseParams

	RescueExtensionMinutes int
	RescueBonusPercent     float64
}

type SurpriseParams struct {
	HiddenTitle    string
	HiddenDiscount float64
	HiddenProduct  string
	MysteryImage   string
}

type ClaimDealInput struct {
	DealID     string
	CustomerID string
	ReferredBy *string
	Source     domain.ClaimSource
}

type CancelDealInput struct {
	DealID string
	Reason string
}
