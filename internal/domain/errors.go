package domain

import "errors"

var (
	ErrDealNotFound   = errors.New("deal not found")
	ErrDealNotLive    = errors.New("deal is not live")
	ErrDealExpired    = errors.New("deal has expired")
	ErrAlreadyClaimed = errors.New("customer already claimed this deal")
	ErrInvalidDeal    = errors.New("invalid deal")
	ErrInvalidClaim   = errors.New("invalid claim request")

	ErrInvalidTransition   = errors.New("invalid deal status transition")
	ErrConcurrencyConflict = errors.New("deal is locked by a concurrent operation")
	ErrCouponCollision     = errors.New("coupon code collision")

	ErrShopNotFound     = errors.New("shop not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// IsValidation reports errors caused by the request itself; they are surfaced
// to the caller and never retried.
func IsValidation(err error) bool {
	return errors.Is(err, ErrDealNotLive) ||
		errors.Is(err, ErrDealExpired) ||
		errors.Is(err, ErrAlreadyClaimed) ||
		errors.Is(err, ErrInvalidDeal) ||
		errors.Is(err, ErrInvalidClaim) ||
		errors.Is(err, ErrInvalidTransition)
}
