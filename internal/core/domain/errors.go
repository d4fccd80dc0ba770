package domain

import "errors"

var (
	// ErrInvalidSeller ...
	ErrInvalidSeller = errors.New("seller must not be an unset address")
	// ErrInvalidBuyer ...
	ErrInvalidBuyer = errors.New("buyer must not be an unset address")
	// ErrInvalidPlatform ...
	ErrInvalidPlatform = errors.New("platform must not be an unset address")
	// ErrInvalidGuarantor ...
	ErrInvalidGuarantor = errors.New("guarantor must not be an unset address")
	// ErrInvalidAmount is returned when a zero amount is given where a
	// positive one is required.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInvalidFeeRate ...
	ErrInvalidFeeRate = errors.New("fee rate must not exceed 10000 basis points")
	// ErrInvalidTid ...
	ErrInvalidTid = errors.New("trade id must not be empty")
	// ErrTradeAlreadyExists is returned when registering a trade with an
	// already used trade id.
	ErrTradeAlreadyExists = errors.New("trade id is already registered")
	// ErrTradeNotFound ...
	ErrTradeNotFound = errors.New("trade not found")
	// ErrPaymentMismatch is returned when the native value attached to a
	// purchase differs from the declared trade amount.
	ErrPaymentMismatch = errors.New("attached value does not match the trade amount")
	// ErrInsufficientBalance ...
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientAllowance ...
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	// ErrUnauthorizedCaller is returned when a withdrawal is initiated by
	// anyone but the trade's buyer or seller.
	ErrUnauthorizedCaller = errors.New("caller is neither buyer nor seller")
	// ErrQuorumNotMet is returned when the release signatures do not carry
	// the agreement of two distinct parties of the trade.
	ErrQuorumNotMet = errors.New("authorization quorum not met")
	// ErrInvalidCouponSignature ...
	ErrInvalidCouponSignature = errors.New("invalid platform coupon signature")
	// ErrCouponAlreadyUsed ...
	ErrCouponAlreadyUsed = errors.New("coupon already used")
	// ErrInsufficientRemaining is returned when a withdrawal exceeds the
	// remaining balance of the trade.
	ErrInsufficientRemaining = errors.New("insufficient remaining trade balance")
)
