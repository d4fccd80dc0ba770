package dbbadger

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/timshannon/badgerhold/v4"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
)

type couponUsage struct {
	CouponID string
}

type couponRepositoryImpl struct {
	store *badgerhold.Store
}

// NewCouponRepositoryImpl returns a badger CouponRepository implementation.
func NewCouponRepositoryImpl(store *badgerhold.Store) domain.CouponRepository {
	return &couponRepositoryImpl{store}
}

func (r *couponRepositoryImpl) IsUsed(
	_ context.Context, couponID []byte,
) (bool, error) {
	var usage couponUsage
	if err := r.store.Get(hex.EncodeToString(couponID), &usage); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *couponRepositoryImpl) MarkUsed(
	_ context.Context, couponID []byte,
) error {
	key := hex.EncodeToString(couponID)
	if err := r.store.Insert(key, couponUsage{CouponID: key}); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return domain.ErrCouponAlreadyUsed
		}
		return err
	}
	return nil
}
