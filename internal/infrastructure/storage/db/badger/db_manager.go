package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/ports"
)

// repoManager holds all the badgerhold stores in a single data structure.
type repoManager struct {
	tradeStore      *badgerhold.Store
	couponStore     *badgerhold.Store
	withdrawalStore *badgerhold.Store

	tradeRepository      domain.TradeRepository
	couponRepository     domain.CouponRepository
	withdrawalRepository domain.WithdrawalRepository
}

// NewRepoManager opens (or creates if not existing) the badger stores on
// disk under the given data dir. It creates a dedicated directory for
// trades, coupons and withdrawals.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	tradeDb, err := createDb(filepath.Join(baseDbDir, "trades"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening trades db: %w", err)
	}

	couponDb, err := createDb(filepath.Join(baseDbDir, "coupons"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening coupons db: %w", err)
	}

	withdrawalDb, err := createDb(filepath.Join(baseDbDir, "withdrawals"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening withdrawals db: %w", err)
	}

	return &repoManager{
		tradeStore:           tradeDb,
		couponStore:          couponDb,
		withdrawalStore:      withdrawalDb,
		tradeRepository:      NewTradeRepositoryImpl(tradeDb),
		couponRepository:     NewCouponRepositoryImpl(couponDb),
		withdrawalRepository: NewWithdrawalRepositoryImpl(withdrawalDb),
	}, nil
}

func (d *repoManager) TradeRepository() domain.TradeRepository {
	return d.tradeRepository
}

func (d *repoManager) CouponRepository() domain.CouponRepository {
	return d.couponRepository
}

func (d *repoManager) WithdrawalRepository() domain.WithdrawalRepository {
	return d.withdrawalRepository
}

func (d *repoManager) Close() {
	d.tradeStore.Close()
	d.couponStore.Close()
	d.withdrawalStore.Close()
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	de := json.NewDecoder(bytes.NewReader(data))
	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
