package models

import "time"

// Constraint names are matched when translating unique violations.
const (
	ClaimDealCustomerConstraint = "uq_deal_claims_deal_customer"
	ClaimCouponCodeConstraint   = "uq_deal_claims_coupon_code"
)

type ClaimModel struct {
	ID         string  `gorm:"primaryKey;type:uuid"`
	DealID     string  `gorm:"type:uuid;not null;uniqueIndex:uq_deal_claims_deal_customer;uniqueIndex:uq_deal_claims_deal_position"`
	CustomerID string  `gorm:"not null;uniqueIndex:uq_deal_claims_deal_customer"`
	Position   int     `gorm:"not null;uniqueIndex:uq_deal_claims_deal_position"`
	CouponCode *string `gorm:"uniqueIndex:uq_deal_claims_coupon_code"`

	ReferredBy  *string
	ClaimSource string `gorm:"type:varchar(16)"`

	ClaimedAtLevel             int
	ClaimedDiscountPercent     float64
	MilestoneNotificationsSent []int `gorm:"serializer:json;type:jsonb"`

	ClaimedAt time.Time `gorm:"not null"`
}

func (ClaimModel) TableName() string {
	return "deal_claims"
}
