package ports

import (
	"context"

	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

// AssetAdapter abstracts the transfer primitive moving value between party
// accounts and the engine's custody. Every method either completes fully or
// fails without side effects; the settlement engine depends only on that
// contract and never on how an asset kind moves value.
type AssetAdapter interface {
	// DepositNative moves the value attached to a purchase call from the
	// buyer into custody. It fails with domain.ErrPaymentMismatch if the
	// attached value differs from the requested amount, and with
	// domain.ErrInsufficientBalance if the buyer cannot cover it.
	DepositNative(ctx context.Context, from signutil.Address, amount, attached uint64) error
	// DepositToken pulls amount of the given fungible token from the buyer
	// into custody. It fails with domain.ErrInsufficientBalance or
	// domain.ErrInsufficientAllowance, which are distinct conditions.
	DepositToken(ctx context.Context, assetID string, from signutil.Address, amount uint64) error
	// Payout moves amount out of custody to the given account.
	Payout(ctx context.Context, token domain.TokenKind, to signutil.Address, amount uint64) error
	// BalanceOf returns the spendable balance of an account for the given
	// asset kind.
	BalanceOf(ctx context.Context, token domain.TokenKind, owner signutil.Address) (uint64, error)
	// Allowance returns how much of owner's token balance the engine is
	// authorized to pull.
	Allowance(ctx context.Context, assetID string, owner signutil.Address) (uint64, error)
}
