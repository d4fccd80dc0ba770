package inmemory

import (
	"context"
	"sync"

	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
)

type withdrawalInmemoryStore struct {
	withdrawalsByTrade map[string][]domain.Withdrawal
	locker             *sync.Mutex
}

type withdrawalRepositoryImpl struct {
	store *withdrawalInmemoryStore
}

// NewWithdrawalRepositoryImpl returns a new inmemory WithdrawalRepository
// implementation.
func NewWithdrawalRepositoryImpl() domain.WithdrawalRepository {
	return &withdrawalRepositoryImpl{
		store: &withdrawalInmemoryStore{
			withdrawalsByTrade: map[string][]domain.Withdrawal{},
			locker:             &sync.Mutex{},
		},
	}
}

func (r *withdrawalRepositoryImpl) AddWithdrawal(
	_ context.Context, withdrawal *domain.Withdrawal,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	key := domain.TradeKey(withdrawal.Tid)
	r.store.withdrawalsByTrade[key] = append(
		r.store.withdrawalsByTrade[key], *withdrawal,
	)
	return nil
}

func (r *withdrawalRepositoryImpl) ListWithdrawalsForTrade(
	_ context.Context, tid []byte,
) ([]*domain.Withdrawal, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	stored := r.store.withdrawalsByTrade[domain.TradeKey(tid)]
	withdrawals := make([]*domain.Withdrawal, 0, len(stored))
	for i := range stored {
		withdrawal := stored[i]
		withdrawals = append(withdrawals, &withdrawal)
	}
	return withdrawals, nil
}
