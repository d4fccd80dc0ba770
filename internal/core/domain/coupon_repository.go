package domain

import "context"

// CouponRepository tracks the coupon ids already redeemed. Consumption is
// scoped globally: a coupon id spent on one trade is spent for all trades.
type CouponRepository interface {
	// IsUsed returns whether the coupon id has been consumed.
	IsUsed(ctx context.Context, couponID []byte) (bool, error)
	// MarkUsed consumes the coupon id, failing with ErrCouponAlreadyUsed if
	// it was consumed before.
	MarkUsed(ctx context.Context, couponID []byte) error
}
