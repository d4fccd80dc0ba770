package ledger

import (
	"context"
	"sync"

	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/pkg/mathutil"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

// Ledger is an in-process implementation of ports.AssetAdapter keeping
// native and fungible token balances, spending allowances granted to the
// engine, and the custody funds per asset. Every operation either completes
// fully or leaves the ledger untouched.
type Ledger struct {
	balances   map[string]map[signutil.Address]uint64
	allowances map[string]map[signutil.Address]uint64
	custody    map[string]uint64
	locker     *sync.Mutex
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances:   map[string]map[signutil.Address]uint64{},
		allowances: map[string]map[signutil.Address]uint64{},
		custody:    map[string]uint64{},
		locker:     &sync.Mutex{},
	}
}

// Fund credits an account with the given amount of an asset.
func (l *Ledger) Fund(token domain.TokenKind, owner signutil.Address, amount uint64) error {
	l.locker.Lock()
	defer l.locker.Unlock()

	credited, err := mathutil.Add(l.balance(token.AssetID, owner), amount)
	if err != nil {
		return err
	}
	l.setBalance(token.AssetID, owner, credited)
	return nil
}

// Approve authorizes the engine to pull up to amount of the owner's token
// balance, replacing any previous authorization.
func (l *Ledger) Approve(assetID string, owner signutil.Address, amount uint64) {
	l.locker.Lock()
	defer l.locker.Unlock()

	if _, ok := l.allowances[assetID]; !ok {
		l.allowances[assetID] = map[signutil.Address]uint64{}
	}
	l.allowances[assetID][owner] = amount
}

func (l *Ledger) DepositNative(
	_ context.Context, from signutil.Address, amount, attached uint64,
) error {
	l.locker.Lock()
	defer l.locker.Unlock()

	if attached != amount {
		return domain.ErrPaymentMismatch
	}

	balance := l.balance("", from)
	if balance < attached {
		return domain.ErrInsufficientBalance
	}

	custody, err := mathutil.Add(l.custody[""], attached)
	if err != nil {
		return err
	}

	l.setBalance("", from, balance-attached)
	l.custody[""] = custody
	return nil
}

func (l *Ledger) DepositToken(
	_ context.Context, assetID string, from signutil.Address, amount uint64,
) error {
	l.locker.Lock()
	defer l.locker.Unlock()

	balance := l.balance(assetID, from)
	if balance < amount {
		return domain.ErrInsufficientBalance
	}

	allowance := l.allowance(assetID, from)
	if allowance < amount {
		return domain.ErrInsufficientAllowance
	}

	custody, err := mathutil.Add(l.custody[assetID], amount)
	if err != nil {
		return err
	}

	l.setBalance(assetID, from, balance-amount)
	l.allowances[assetID][from] = allowance - amount
	l.custody[assetID] = custody
	return nil
}

func (l *Ledger) Payout(
	_ context.Context, token domain.TokenKind, to signutil.Address, amount uint64,
) error {
	l.locker.Lock()
	defer l.locker.Unlock()

	if amount == 0 {
		return nil
	}

	custody := l.custody[token.AssetID]
	if custody < amount {
		return domain.ErrInsufficientBalance
	}

	credited, err := mathutil.Add(l.balance(token.AssetID, to), amount)
	if err != nil {
		return err
	}

	l.custody[token.AssetID] = custody - amount
	l.setBalance(token.AssetID, to, credited)
	return nil
}

func (l *Ledger) BalanceOf(
	_ context.Context, token domain.TokenKind, owner signutil.Address,
) (uint64, error) {
	l.locker.Lock()
	defer l.locker.Unlock()

	return l.balance(token.AssetID, owner), nil
}

func (l *Ledger) Allowance(
	_ context.Context, assetID string, owner signutil.Address,
) (uint64, error) {
	l.locker.Lock()
	defer l.locker.Unlock()

	return l.allowance(assetID, owner), nil
}

// CustodyBalance returns the funds currently held by the engine for the
// given asset kind.
func (l *Ledger) CustodyBalance(token domain.TokenKind) uint64 {
	l.locker.Lock()
	defer l.locker.Unlock()

	return l.custody[token.AssetID]
}

func (l *Ledger) balance(assetID string, owner signutil.Address) uint64 {
	return l.balances[assetID][owner]
}

func (l *Ledger) setBalance(assetID string, owner signutil.Address, amount uint64) {
	if _, ok := l.balances[assetID]; !ok {
		l.balances[assetID] = map[signutil.Address]uint64{}
	}
	l.balances[assetID][owner] = amount
}

func (l *Ledger) allowance(assetID string, owner signutil.Address) uint64 {
	return l.allowances[assetID][owner]
}
