package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

// Withdrawal is the audit record of one successful release against a trade.
// It keeps the full split of the withdrawn amount, including the portions
// that never left custody (the waived coupon amount and the arbitration
// fee), so their disposition can be settled by an external process.
type Withdrawal struct {
	ID           uuid.UUID
	Tid          []byte
	Amount       uint64
	SellerAmount uint64
	FeeAmount    uint64
	CouponAmount uint64
	ArbitrateFee uint64
	To           signutil.Address
	Timestamp    uint64
}

// NewWithdrawal returns a Withdrawal record timestamped now.
func NewWithdrawal(
	tid []byte,
	amount, sellerAmount, feeAmount, couponAmount, arbitrateFee uint64,
	to signutil.Address,
) *Withdrawal {
	return &Withdrawal{
		ID:           uuid.New(),
		Tid:          tid,
		Amount:       amount,
		SellerAmount: sellerAmount,
		FeeAmount:    feeAmount,
		CouponAmount: couponAmount,
		ArbitrateFee: arbitrateFee,
		To:           to,
		Timestamp:    uint64(time.Now().Unix()),
	}
}
