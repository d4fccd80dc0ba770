package inmemory

import (
	"context"
	"sync"

	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
)

type tradeInmemoryStore struct {
	trades map[string]domain.Trade
	locker *sync.Mutex
}

type tradeRepositoryImpl struct {
	store *tradeInmemoryStore
}

// NewTradeRepositoryImpl returns a new inmemory TradeRepository implementation.
func NewTradeRepositoryImpl() domain.TradeRepository {
	return &tradeRepositoryImpl{
		store: &tradeInmemoryStore{
			trades: map[string]domain.Trade{},
			locker: &sync.Mutex{},
		},
	}
}

func (r *tradeRepositoryImpl) AddTrade(
	_ context.Context, trade *domain.Trade,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.trades[trade.Key()]; ok {
		return domain.ErrTradeAlreadyExists
	}

	r.store.trades[trade.Key()] = *trade
	return nil
}

func (r *tradeRepositoryImpl) GetTrade(
	_ context.Context, tid []byte,
) (*domain.Trade, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getTrade(tid)
}

func (r *tradeRepositoryImpl) GetAllTrades(
	_ context.Context,
) ([]*domain.Trade, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	trades := make([]*domain.Trade, 0, len(r.store.trades))
	for k := range r.store.trades {
		trade := r.store.trades[k]
		trades = append(trades, &trade)
	}
	return trades, nil
}

func (r *tradeRepositoryImpl) UpdateTrade(
	_ context.Context,
	tid []byte,
	updateFn func(t *domain.Trade) (*domain.Trade, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	currentTrade, err := r.getTrade(tid)
	if err != nil {
		return err
	}

	updatedTrade, err := updateFn(currentTrade)
	if err != nil {
		return err
	}

	r.store.trades[updatedTrade.Key()] = *updatedTrade
	return nil
}

func (r *tradeRepositoryImpl) getTrade(tid []byte) (*domain.Trade, error) {
	trade, ok := r.store.trades[domain.TradeKey(tid)]
	if !ok {
		return nil, domain.ErrTradeNotFound
	}
	return &trade, nil
}
