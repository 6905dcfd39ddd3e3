package domain

import "time"

type ClaimSource string

const (
	SourceDirect    ClaimSource = "direct"
	SourceReferral  ClaimSource = "referral"
	SourceBroadcast ClaimSource = "broadcast"
)

type Claim struct {
	ID         string
	DealID     string
	CustomerID string
	Position   int
	CouponCode *string

	ReferredBy  *string
	ClaimSource ClaimSource

	ClaimedAtLevel             int
	ClaimedDiscountPercent     float64
	MilestoneNotificationsSent []int

	ClaimedAt time.Time
}

func (c *Claim) HasCoupon() bool {
	return c.CouponCode != nil && *c.CouponCode != ""
}

func (c *Claim) Clone() *Claim {
	cl := *c
	if c.CouponCode != nil {
		code := *c.CouponCode
		cl.CouponCode = &code
	}
	if c.ReferredBy != nil {
		ref := *c.ReferredBy
		cl.ReferredBy = &ref
	}
	cl.MilestoneNotificationsSent = append([]int(nil), c.MilestoneNotificationsSent...)
	return &cl
}
