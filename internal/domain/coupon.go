package domain

//go:generate mockgen -source=coupon.go -destination=mock/coupon.go -package=mock

import "context"

// CouponCodeGenerator returns a redemption code that is globally unique at the
// moment it is returned.
type CouponCodeGenerator interface {
	Generate(ctx context.Context, prefix string) (string, error)
}
