package domain

import "github.com/vivcrypto/viv-smart-contracts/pkg/signutil"

// IsParticipant returns whether the given address is allowed to initiate a
// withdrawal, that is whether it is the trade's buyer or seller.
func (t *Trade) IsParticipant(addr signutil.Address) bool {
	return addr == t.Buyer || addr == t.Seller
}

// IsClosed returns whether the trade's deposit has been entirely withdrawn.
func (t *Trade) IsClosed() bool {
	return t.RemainingAmount == 0
}

// Debit decreases the remaining balance of the trade by the given amount.
// It returns ErrInsufficientRemaining, leaving the trade untouched, if the
// amount exceeds what is left of the deposit. The sum of all successful
// debits can therefore never exceed DepositedAmount.
func (t *Trade) Debit(amount uint64) error {
	if amount > t.RemainingAmount {
		return ErrInsufficientRemaining
	}
	t.RemainingAmount -= amount
	return nil
}
