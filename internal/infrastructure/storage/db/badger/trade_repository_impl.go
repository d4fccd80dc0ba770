package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
)

type tradeRepositoryImpl struct {
	store *badgerhold.Store
}

// NewTradeRepositoryImpl returns a badger TradeRepository implementation.
func NewTradeRepositoryImpl(store *badgerhold.Store) domain.TradeRepository {
	return &tradeRepositoryImpl{store}
}

func (r *tradeRepositoryImpl) AddTrade(
	_ context.Context, trade *domain.Trade,
) error {
	if err := r.store.Insert(trade.Key(), *trade); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return domain.ErrTradeAlreadyExists
		}
		return err
	}
	return nil
}

func (r *tradeRepositoryImpl) GetTrade(
	_ context.Context, tid []byte,
) (*domain.Trade, error) {
	return r.getTrade(tid)
}

func (r *tradeRepositoryImpl) GetAllTrades(
	_ context.Context,
) ([]*domain.Trade, error) {
	var stored []domain.Trade
	if err := r.store.Find(&stored, nil); err != nil {
		return nil, err
	}

	trades := make([]*domain.Trade, 0, len(stored))
	for i := range stored {
		trades = append(trades, &stored[i])
	}
	return trades, nil
}

func (r *tradeRepositoryImpl) UpdateTrade(
	_ context.Context,
	tid []byte,
	updateFn func(t *domain.Trade) (*domain.Trade, error),
) error {
	currentTrade, err := r.getTrade(tid)
	if err != nil {
		return err
	}

	updatedTrade, err := updateFn(currentTrade)
	if err != nil {
		return err
	}

	return r.store.Update(updatedTrade.Key(), *updatedTrade)
}

func (r *tradeRepositoryImpl) getTrade(tid []byte) (*domain.Trade, error) {
	var trade domain.Trade
	if err := r.store.Get(domain.TradeKey(tid), &trade); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, err
	}
	return &trade, nil
}
