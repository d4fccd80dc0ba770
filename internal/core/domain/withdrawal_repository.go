package domain

import "context"

// WithdrawalRepository is the abstraction for any kind of database intended
// to persist Withdrawals.
type WithdrawalRepository interface {
	// AddWithdrawal persists the given withdrawal record.
	AddWithdrawal(ctx context.Context, withdrawal *Withdrawal) error
	// ListWithdrawalsForTrade returns all the withdrawals recorded against
	// the given trade id.
	ListWithdrawalsForTrade(ctx context.Context, tid []byte) ([]*Withdrawal, error)
}
