package inmemory

import (
	"context"
	"encoding/hex"
	"sync"

	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
)

type couponInmemoryStore struct {
	used   map[string]struct{}
	locker *sync.Mutex
}

type couponRepositoryImpl struct {
	store *couponInmemoryStore
}

// NewCouponRepositoryImpl returns a new inmemory CouponRepository
// implementation.
func NewCouponRepositoryImpl() domain.CouponRepository {
	return &couponRepositoryImpl{
		store: &couponInmemoryStore{
			used:   map[string]struct{}{},
			locker: &sync.Mutex{},
		},
	}
}

func (r *couponRepositoryImpl) IsUsed(
	_ context.Context, couponID []byte,
) (bool, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	_, ok := r.store.used[hex.EncodeToString(couponID)]
	return ok, nil
}

func (r *couponRepositoryImpl) MarkUsed(
	_ context.Context, couponID []byte,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	key := hex.EncodeToString(couponID)
	if _, ok := r.store.used[key]; ok {
		return domain.ErrCouponAlreadyUsed
	}

	r.store.used[key] = struct{}{}
	return nil
}
