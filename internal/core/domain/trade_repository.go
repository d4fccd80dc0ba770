package domain

import "context"

// TradeRepository is the abstraction for any kind of database intended to
// persist Trades.
type TradeRepository interface {
	// AddTrade registers a new trade, failing with ErrTradeAlreadyExists if
	// a trade with the same trade id was ever registered before.
	AddTrade(ctx context.Context, trade *Trade) error
	// GetTrade returns the trade with the given trade id, or
	// ErrTradeNotFound.
	GetTrade(ctx context.Context, tid []byte) (*Trade, error)
	// GetAllTrades returns all the trades stored in the repository.
	GetAllTrades(ctx context.Context) ([]*Trade, error)
	// UpdateTrade allows to commit multiple changes to the same trade in a
	// transactional way.
	UpdateTrade(
		ctx context.Context,
		tid []byte,
		updateFn func(t *Trade) (*Trade, error),
	) error
}
