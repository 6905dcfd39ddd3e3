package domain

import (
	"fmt"
	"sort"
	"time"
)

type DealStatus string

const (
	StatusScheduled DealStatus = "scheduled"
	StatusLive      DealStatus = "live"
	StatusActivated DealStatus = "activated"
	StatusExpired   DealStatus = "expired"
	StatusCancelled DealStatus = "cancelled"
)

var dealTransitions = map[DealStatus][]DealStatus{
	StatusScheduled: {StatusLive, StatusCancelled},
	StatusLive:      {StatusActivated, StatusExpired, StatusCancelled},
}

// ParseDealStatus rejects anything outside the closed set of statuses.
func ParseDealStatus(s string) (DealStatus, error) {
	switch st := DealStatus(s); st {
	case StatusScheduled, StatusLive, StatusActivated, StatusExpired, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown deal status %q", s)
}

func (s DealStatus) IsTerminal() bool {
	return s == StatusActivated || s == StatusExpired || s == StatusCancelled
}

// CanTransition reports whether the lifecycle allows moving from one status to another.
func CanTransition(from, to DealStatus) bool {
	for _, next := range dealTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MilestoneThresholds are the percentages of target that trigger a progress notification.
var MilestoneThresholds = []int{25, 50, 75, 90}

type ChainTier struct {
	ClaimThreshold  int     `json:"claim_threshold"`
	DiscountPercent float64 `json:"discount_percent"`
}

type Deal struct {
	ID     string
	ShopID string

	Title       string
	Description string
	ImageURL    string
	Category    string

	DiscountPercent         float64
	MaxDiscountValue        float64
	OriginalDiscountPercent float64

	TargetClaims     int
	TimeLimitMinutes int
	StartsAt         time.Time
	ExpiresAt        time.Time
	CouponValidUntil *time.Time

	CurrentClaims          int
	Status                 DealStatus
	NotifiedCustomersCount int
	MilestonesNotified     []int

	IsChainDeal       bool
	ChainTiers        []ChainTier
	CurrentChainLevel int

	IsSurpriseDeal bool
	HiddenTitle    string
	HiddenDiscount float64
	HiddenProduct  string
	MysteryImage   string

	RescueExtended         bool
	RescueExtensionMinutes int
	RescueBonusAdded       bool
	RescueBonusPercent     float64

	ActivatedAt  *time.Time
	ExpiredAt    *time.Time
	CancelledAt  *time.Time
	CancelReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransitionTo moves the deal to the next status, stamping the matching timestamp.
func (d *Deal) TransitionTo(next DealStatus, at time.Time) error {
	if !CanTransition(d.Status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.Status, next)
	}
	d.Status = next
	switch next {
	case StatusActivated:
		d.ActivatedAt = &at
	case StatusExpired:
		d.ExpiredAt = &at
	case StatusCancelled:
		d.CancelledAt = &at
	}
	d.UpdatedAt = at
	return nil
}

func (d *Deal) TargetReached() bool {
	return d.CurrentClaims >= d.TargetClaims
}

// Progress is current_claims relative to target, 1.0 meaning the target is met.
func (d *Deal) Progress() float64 {
	if d.TargetClaims <= 0 {
		return 0
	}
	return float64(d.CurrentClaims) / float64(d.TargetClaims)
}

func (d *Deal) Shortfall() int {
	if d.CurrentClaims >= d.TargetClaims {
		return 0
	}
	return d.TargetClaims - d.CurrentClaims
}

func (d *Deal) MilestoneNotified(percent int) bool {
	for _, m := range d.MilestonesNotified {
		if m == percent {
			return true
		}
	}
	return false
}

// Tier returns the chain tier for a 1-based level; level 0 is the base discount.
func (d *Deal) Tier(level int) (ChainTier, bool) {
	if level < 1 || level > len(d.ChainTiers) {
		return ChainTier{}, false
	}
	return d.ChainTiers[level-1], true
}

// Validate checks the shape of a deal before it is published.
func (d *Deal) Validate() error {
	switch {
	case d.ShopID == "":
		return fmt.Errorf("%w: shop is required", ErrInvalidDeal)
	case d.Title == "" && !d.IsSurpriseDeal:
		return fmt.Errorf("%w: title is required", ErrInvalidDeal)
	case d.TargetClaims < 1:
		return fmt.Errorf("%w: target_claims must be positive", ErrInvalidDeal)
	case d.TimeLimitMinutes < 1:
		return fmt.Errorf("%w: time_limit_minutes must be positive", ErrInvalidDeal)
	case d.DiscountPercent < 0 || d.DiscountPercent > 100:
		return fmt.Errorf("%w: discount_percent must be within 0..100", ErrInvalidDeal)
	case d.RescueExtensionMinutes < 0 || d.RescueBonusPercent < 0:
		return fmt.Errorf("%w: rescue parameters must not be negative", ErrInvalidDeal)
	}
	if d.IsChainDeal {
		if len(d.ChainTiers) == 0 {
			return fmt.Errorf("%w: chain deal without tiers", ErrInvalidDeal)
		}
		SortChainTiers(d.ChainTiers)
		prev := ChainTier{DiscountPercent: d.DiscountPercent}
		for i, t := range d.ChainTiers {
			if t.ClaimThreshold < 1 || t.DiscountPercent > 100 {
				return fmt.Errorf("%w: tier %d out of range", ErrInvalidDeal, i+1)
			}
			if t.ClaimThreshold <= prev.ClaimThreshold || t.DiscountPercent < prev.DiscountPercent {
				return fmt.Errorf("%w: tiers must increase in threshold and discount", ErrInvalidDeal)
			}
			prev = t
		}
	}
	return nil
}

func SortChainTiers(tiers []ChainTier) {
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].ClaimThreshold < tiers[j].ClaimThreshold
	})
}

// PublicContent is what customers see of a deal. Surprise deals keep their true
// content hidden until revealed.
type PublicContent struct {
	Title           string
	Description     string
	ImageURL        string
	Product         string
	DiscountPercent *float64
	Revealed        bool
}

func (d *Deal) Content(reveal bool) PublicContent {
	if !d.IsSurpriseDeal {
		discount := d.DiscountPercent
		return PublicContent{
			Title:           d.Title,
			Description:     d.Description,
			ImageURL:        d.ImageURL,
			DiscountPercent: &discount,
			Revealed:        true,
		}
	}
	if !reveal && d.Status != StatusActivated {
		return PublicContent{
			Title:       d.Title,
			Description: d.Description,
			ImageURL:    d.MysteryImage,
		}
	}
	discount := d.DiscountPercent
	return PublicContent{
		Title:           d.HiddenTitle,
		Description:     d.Description,
		ImageURL:        d.ImageURL,
		Product:         d.HiddenProduct,
		DiscountPercent: &discount,
		Revealed:        true,
	}
}

func (d *Deal) Clone() *Deal {
	c := *d
	c.MilestonesNotified = append([]int(nil), d.MilestonesNotified...)
	c.ChainTiers = append([]ChainTier(nil), d.ChainTiers...)
	c.CouponValidUntil = cloneTime(d.CouponValidUntil)
	c.ActivatedAt = cloneTime(d.ActivatedAt)
	c.ExpiredAt = cloneTime(d.ExpiredAt)
	c.CancelledAt = cloneTime(d.CancelledAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
