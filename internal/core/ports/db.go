package ports

import (
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
)

// RepoManager gives access to all the repositories of the settlement engine
// through a single interface, so storage backends can be swapped as a whole.
type RepoManager interface {
	TradeRepository() domain.TradeRepository
	CouponRepository() domain.CouponRepository
	WithdrawalRepository() domain.WithdrawalRepository

	Close()
}
