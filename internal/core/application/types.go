package application

import (
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

// PurchaseParams groups the arguments of a deposit against a new trade id.
// Buyer is the calling identity; AttachedValue is the native value attached
// to the call and must be 0 for fungible token trades.
type PurchaseParams struct {
	Tid           []byte
	Seller        signutil.Address
	Buyer         signutil.Address
	Guarantor     signutil.Address
	Platform      signutil.Address
	FeeRateBps    uint64
	Amount        uint64
	Token         domain.TokenKind
	AttachedValue uint64
}

// WithdrawParams groups the arguments of a release against a registered
// trade. Caller is the initiating identity and must be the trade's buyer or
// seller; Sig1 and Sig2 carry the two-party release authorization and
// PlatformSig the coupon endorsement, which is only checked when
// CouponRateBps is positive.
type WithdrawParams struct {
	Tid           []byte
	Caller        signutil.Address
	Sig1          []byte
	Sig2          []byte
	PlatformSig   []byte
	Amount        uint64
	CouponRateBps uint64
	ArbitrateFee  uint64
	CouponID      []byte
}

// Payout is the exact split of a successful withdrawal. SellerAmount went to
// the seller, FeeAmount to the platform; CouponAmount is the waived portion
// of the service fee and, like ArbitrateFee, never left custody.
type Payout struct {
	Amount       uint64
	SellerAmount uint64
	FeeAmount    uint64
	CouponAmount uint64
	ArbitrateFee uint64
}
