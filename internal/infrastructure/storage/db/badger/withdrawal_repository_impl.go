package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
)

// withdrawalRecord wraps a Withdrawal with the hex encoded trade key, which
// badgerhold can index and query on.
type withdrawalRecord struct {
	domain.Withdrawal
	TradeKey string `badgerholdIndex:"TradeKey"`
}

type withdrawalRepositoryImpl struct {
	store *badgerhold.Store
}

// NewWithdrawalRepositoryImpl returns a badger WithdrawalRepository
// implementation.
func NewWithdrawalRepositoryImpl(store *badgerhold.Store) domain.WithdrawalRepository {
	return &withdrawalRepositoryImpl{store}
}

func (r *withdrawalRepositoryImpl) AddWithdrawal(
	_ context.Context, withdrawal *domain.Withdrawal,
) error {
	record := withdrawalRecord{
		Withdrawal: *withdrawal,
		TradeKey:   domain.TradeKey(withdrawal.Tid),
	}
	return r.store.Insert(withdrawal.ID.String(), record)
}

func (r *withdrawalRepositoryImpl) ListWithdrawalsForTrade(
	_ context.Context, tid []byte,
) ([]*domain.Withdrawal, error) {
	query := badgerhold.Where("TradeKey").Eq(domain.TradeKey(tid)).Index("TradeKey")

	var stored []withdrawalRecord
	if err := r.store.Find(&stored, query); err != nil {
		return nil, err
	}

	withdrawals := make([]*domain.Withdrawal, 0, len(stored))
	for i := range stored {
		withdrawals = append(withdrawals, &stored[i].Withdrawal)
	}
	return withdrawals, nil
}
