package inmemory

import (
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/ports"
)

// RepoManager is the in-memory implementation of ports.RepoManager, meant
// for tests and for running the daemon without persistence.
type RepoManager struct {
	tradeRepository      domain.TradeRepository
	couponRepository     domain.CouponRepository
	withdrawalRepository domain.WithdrawalRepository
}

// NewRepoManager returns a RepoManager with empty stores.
func NewRepoManager() ports.RepoManager {
	return &RepoManager{
		tradeRepository:      NewTradeRepositoryImpl(),
		couponRepository:     NewCouponRepositoryImpl(),
		withdrawalRepository: NewWithdrawalRepositoryImpl(),
	}
}

func (d *RepoManager) TradeRepository() domain.TradeRepository {
	return d.tradeRepository
}

func (d *RepoManager) CouponRepository() domain.CouponRepository {
	return d.couponRepository
}

func (d *RepoManager) WithdrawalRepository() domain.WithdrawalRepository {
	return d.withdrawalRepository
}

func (d *RepoManager) Close() {}
