package domain

import (
	"context"
	"time"
)

// DealStore is the source of truth for deals and claims. Every mutation of a
// deal goes through WithDealLock, which holds an exclusive per-deal lock for the
// whole callback and commits only if the callback returns nil.
type DealStore interface {
	CreateDeal(ctx context.Context, deal *Deal) error
	GetDeal(ctx context.Context, dealID string) (*Deal, error)
	GetClaims(ctx context.Context, dealID string) ([]*Claim, error)
	FindExpiredLiveDeals(ctx context.Context, now time.Time) ([]*Deal, error)
	FindDueScheduledDeals(ctx context.Context, now time.Time) ([]*Deal, error)
	CouponCodeExists(ctx context.Context, code string) (bool, error)

	WithDealLock(ctx context.Context, dealID string, fn func(ctx context.Context, tx DealTx, deal *Deal) error) error
}

// DealTx is the write side available while a deal row is locked.
type DealTx interface {
	SaveDeal(ctx context.Context, deal *Deal) error
	HasClaim(ctx context.Context, dealID, customerID string) (bool, error)
	CreateClaim(ctx context.Context, claim *Claim) error
	ListClaims(ctx context.Context, dealID string) ([]*Claim, error)
	SetCouponCode(ctx context.Context, claimID, code string) error
}
