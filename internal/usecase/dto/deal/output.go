package dealdto

import (
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

type DealSnapshot struct {
	DealID  string
	ShopID  string
	Status  domain.DealStatus
	Content domain.PublicContent

	CurrentClaims   int
	TargetClaims    int
	ProgressPercent float64
	Remaining       time.Duration

	StartsAt  time.Time
	ExpiresAt time.Time

	IsChainDeal      bool
	ChainLevel       int
	NextTier         *domain.ChainTier
	ClaimsToNextTier int

	RescueExtended   bool
	RescueBonusAdded bool

	CouponValidUntil *time.Time
	ActivatedAt      *time.Time
	ExpiredAt        *time.Time
	CancelledAt      *time.Time
	CancelReason     string

	// set once the deal has expired
	Analytics *domain.DealAnalytics
}

type ClaimOutput struct {
	Claim     *domain.Claim
	Deal      DealSnapshot
	Activated bool
}

type CreateDealOutput struct {
	Deal DealSnapshot
}
