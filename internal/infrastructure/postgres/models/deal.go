package models

import (
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

type DealModel struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	ShopID string `gorm:"not null;index:idx_deals_shop"`

	Title       string
	Description string
	ImageURL    string
	Category    string

	DiscountPercent         float64
	MaxDiscountValue        float64
	OriginalDiscountPercent float64

	TargetClaims     int       `gorm:"not null"`
	TimeLimitMinutes int       `gorm:"not null"`
	StartsAt         time.Time `gorm:"not null;index:idx_deals_status_starts,priority:2"`
	ExpiresAt        time.Time `gorm:"not null;index:idx_deals_status_expires,priority:2"`
	CouponValidUntil *time.Time

	CurrentClaims          int               `gorm:"not null;default:0"`
	Status                 domain.DealStatus `gorm:"type:varchar(16);not null;index:idx_deals_status_expires,priority:1;index:idx_deals_status_starts,priority:1"`
	NotifiedCustomersCount int               `gorm:"not null;default:0"`
	MilestonesNotified     []int             `gorm:"serializer:json;type:jsonb"`

	IsChainDeal       bool
	ChainTiers        []domain.ChainTier `gorm:"serializer:json;type:jsonb"`
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

func (DealModel) TableName() string {
	return "deals"
}
