package contract

import "time"

type ChainTier struct {
	ClaimThreshold  int     `json:"claim_threshold"`
	DiscountPercent float64 `json:"discount_percent"`
}

type Surprise struct {
	HiddenTitle    string  `json:"hidden_title"`
	HiddenDiscount float64 `json:"hidden_discount"`
	HiddenProduct  string  `json:"hidden_product"`
	MysteryImage   string  `json:"mystery_image"`
}

type CreateDealRequest struct {
	ShopID                 string      `json:"shop_id"`
	Title                  string      `json:"title"`
	Description            string      `json:"description"`
	ImageURL               string      `json:"image_url"`
	Category               string      `json:"category"`
	DiscountPercent        float64     `json:"discount_percent"`
	MaxDiscountValue       float64     `json:"max_discount_value"`
	TargetClaims           int         `json:"target_claims"`
	TimeLimitMinutes       int         `json:"time_limit_minutes"`
	StartsAt               *time.Time  `json:"starts_at,omitempty"`
	CouponValidUntil       *time.Time  `json:"coupon_valid_until,omitempty"`
	ChainTiers             []ChainTier `json:"chain_tiers,omitempty"`
	Surprise               *Surprise   `json:"surprise,omitempty"`
	RescueExtensionMinutes int         `json:"rescue_extension_minutes,omitempty"`
	RescueBonusPercent     float64     `json:"rescue_bonus_percent,omitempty"`
}

type ClaimDealRequest struct {
	DealID     string `json:"deal_id"`
	CustomerID string `json:"customer_id"`
	ReferredBy string `json:"referred_by,omitempty"`
	Source     string `json:"source,omitempty"`
}

type GetDealStatusRequest struct {
	DealID string `json:"deal_id"`
}

type CancelDealRequest struct {
	DealID string `json:"deal_id"`
	Reason string `json:"reason"`
}

type RunExpirySweepRequest struct{}

type Content struct {
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	Product         string   `json:"product,omitempty"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	Revealed        bool     `json:"revealed"`
}

type Suggestion struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Analytics struct {
	CompletionPercent float64      `json:"completion_percent"`
	Shortfall         int          `json:"shortfall"`
	ConversionRate    float64      `json:"conversion_rate"`
	PeakHour          int          `json:"peak_hour"`
	PeakHourClaims    int          `json:"peak_hour_claims"`
	AvgClaimsPerMin   float64      `json:"avg_claims_per_minute"`
	ReferralPercent   float64      `json:"referral_percent"`
	QuarterClaims     [4]int       `json:"quarter_claims"`
	Suggestions       []Suggestion `json:"suggestions"`
}

type Deal struct {
	ID               string     `json:"id"`
	ShopID           string     `json:"shop_id"`
	Status           string     `json:"status"`
	Content          Content    `json:"content"`
	CurrentClaims    int        `json:"current_claims"`
	TargetClaims     int        `json:"target_claims"`
	ProgressPercent  float64    `json:"progress_percent"`
	RemainingSeconds int64      `json:"remaining_seconds"`
	StartsAt         time.Time  `json:"starts_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	IsChainDeal      bool       `json:"is_chain_deal"`
	ChainLevel       int        `json:"chain_level"`
	NextTier         *ChainTier `json:"next_tier,omitempty"`
	ClaimsToNextTier int        `json:"claims_to_next_tier,omitempty"`
	RescueExtended   bool       `json:"rescue_extended"`
	RescueBonusAdded bool       `json:"rescue_bonus_added"`
	CouponValidUntil *time.Time `json:"coupon_valid_until,omitempty"`
	ActivatedAt      *time.Time `json:"activated_at,omitempty"`
	ExpiredAt        *time.Time `json:"expired_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CancelReason     string     `json:"cancel_reason,omitempty"`
	Analytics        *Analytics `json:"analytics,omitempty"`
}

type Claim struct {
	ID                     string    `json:"id"`
	DealID                 string    `json:"deal_id"`
	CustomerID             string    `json:"customer_id"`
	Position               int       `json:"position"`
	CouponCode             string    `json:"coupon_code,omitempty"`
	ClaimSource            string    `json:"claim_source"`
	ClaimedAtLevel         int       `json:"claimed_at_level"`
	ClaimedDiscountPercent float64   `json:"claimed_discount_percent"`
	ClaimedAt              time.Time `json:"claimed_at"`
}

type DealResponse struct {
	Deal *Deal `json:"deal"`
}

type ClaimDealResponse struct {
	Claim     *Claim `json:"claim"`
	Deal      *Deal  `json:"deal"`
	Activated bool   `json:"activated"`
}

type CancelDealResponse struct {
	Message string `json:"message"`
}

type RunExpirySweepResponse struct {
	Started   int  `json:"started"`
	Selected  int  `json:"selected"`
	Activated int  `json:"activated"`
	Expired   int  `json:"expired"`
	Skipped   int  `json:"skipped"`
	Failed    int  `json:"failed"`
	LockHeld  bool `json:"lock_held"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
