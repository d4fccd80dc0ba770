package application

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/ports"
	"github.com/vivcrypto/viv-smart-contracts/pkg/mathutil"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

// SettlementService drives the full lifecycle of an escrow trade: deposits
// into custody, quorum-authorized releases and the read surface over both.
type SettlementService interface {
	Purchase(ctx context.Context, params PurchaseParams) (*domain.Trade, error)
	Withdraw(ctx context.Context, params WithdrawParams) (*Payout, error)
	GetTrade(ctx context.Context, tid []byte) (*domain.Trade, error)
	ListTrades(ctx context.Context) ([]*domain.Trade, error)
	ListWithdrawals(ctx context.Context, tid []byte) ([]*domain.Withdrawal, error)
}

type settlementService struct {
	repoManager ports.RepoManager
	adapter     ports.AssetAdapter
	verifier    *signutil.Verifier

	// mtx serializes withdrawals so the coupon check, its consumption and
	// the balance debit act as one atomic step.
	mtx sync.Mutex
}

// NewSettlementService returns a SettlementService backed by the given
// repositories, asset transfer adapter and signer recoverer.
func NewSettlementService(
	repoManager ports.RepoManager,
	adapter ports.AssetAdapter,
	recoverer signutil.Recoverer,
) SettlementService {
	return &settlementService{
		repoManager: repoManager,
		adapter:     adapter,
		verifier:    signutil.NewVerifier(recoverer),
	}
}

// Purchase validates the deposit request, moves the funds into custody and
// registers the trade. Any failing check aborts the call before funds move,
// and a failing transfer before the trade is registered, so no partial state
// is ever left behind.
func (s *settlementService) Purchase(
	ctx context.Context, params PurchaseParams,
) (*domain.Trade, error) {
	trade, err := domain.NewTrade(domain.NewTradeOpts{
		Tid:        params.Tid,
		Seller:     params.Seller,
		Buyer:      params.Buyer,
		Guarantor:  params.Guarantor,
		Platform:   params.Platform,
		FeeRateBps: params.FeeRateBps,
		Token:      params.Token,
		Amount:     params.Amount,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.repoManager.TradeRepository().GetTrade(ctx, params.Tid); err == nil {
		return nil, domain.ErrTradeAlreadyExists
	} else if !errors.Is(err, domain.ErrTradeNotFound) {
		return nil, err
	}

	if trade.Token.IsNative() {
		if params.AttachedValue != params.Amount {
			return nil, domain.ErrPaymentMismatch
		}
		if err := s.adapter.DepositNative(
			ctx, params.Buyer, params.Amount, params.AttachedValue,
		); err != nil {
			return nil, err
		}
	} else {
		if err := s.adapter.DepositToken(
			ctx, trade.Token.AssetID, params.Buyer, params.Amount,
		); err != nil {
			return nil, err
		}
	}

	if err := s.repoManager.TradeRepository().AddTrade(ctx, trade); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"tid":    trade.Key(),
		"amount": trade.DepositedAmount,
	}).Debug("trade registered")

	return trade, nil
}

// Withdraw verifies the caller, the signature quorum and, when a discount is
// claimed, the platform's coupon endorsement; it then consumes the coupon,
// debits the trade and disburses the split. Every check runs before any
// mutation, and concurrent withdrawals are serialized, so a failed
// withdrawal never burns a coupon nor decrements the remaining balance.
func (s *settlementService) Withdraw(
	ctx context.Context, params WithdrawParams,
) (*Payout, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	trade, err := s.repoManager.TradeRepository().GetTrade(ctx, params.Tid)
	if err != nil {
		return nil, err
	}
	if params.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !trade.IsParticipant(params.Caller) {
		return nil, domain.ErrUnauthorizedCaller
	}

	digest := signutil.ReleaseDigest(params.Tid)
	if params.ArbitrateFee > 0 {
		digest = signutil.ArbitratedReleaseDigest(
			params.Amount, params.ArbitrateFee, params.Tid,
		)
	}

	ok, err := s.verifier.VerifyAnyTwo(
		digest, params.Sig1, params.Sig2,
		trade.Buyer, trade.Seller, trade.Guarantor,
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrQuorumNotMet
	}

	if params.CouponRateBps > 0 {
		used, err := s.repoManager.CouponRepository().IsUsed(ctx, params.CouponID)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, domain.ErrCouponAlreadyUsed
		}

		couponDigest := signutil.CouponDigest(
			params.CouponRateBps, params.CouponID, params.Tid,
		)
		ok, err := s.verifier.VerifySingle(
			couponDigest, params.PlatformSig, trade.Platform,
		)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrInvalidCouponSignature
		}
	}

	if params.Amount > trade.RemainingAmount {
		return nil, domain.ErrInsufficientRemaining
	}

	payout, err := computePayout(
		params.Amount, params.ArbitrateFee, trade.FeeRateBps, params.CouponRateBps,
	)
	if err != nil {
		return nil, err
	}

	// the coupon is consumed before the balance is debited: should either
	// mutation fail, the remaining balance is left untouched.
	if params.CouponRateBps > 0 {
		if err := s.repoManager.CouponRepository().MarkUsed(
			ctx, params.CouponID,
		); err != nil {
			return nil, err
		}
	}

	if err := s.repoManager.TradeRepository().UpdateTrade(
		ctx, params.Tid, func(t *domain.Trade) (*domain.Trade, error) {
			if err := t.Debit(params.Amount); err != nil {
				return nil, err
			}
			return t, nil
		},
	); err != nil {
		return nil, err
	}

	// zero-value fee transfers are skipped, not attempted.
	if payout.FeeAmount > 0 {
		if err := s.adapter.Payout(
			ctx, trade.Token, trade.Platform, payout.FeeAmount,
		); err != nil {
			return nil, err
		}
	}
	if err := s.adapter.Payout(
		ctx, trade.Token, trade.Seller, payout.SellerAmount,
	); err != nil {
		return nil, err
	}

	withdrawal := domain.NewWithdrawal(
		params.Tid,
		payout.Amount, payout.SellerAmount, payout.FeeAmount,
		payout.CouponAmount, payout.ArbitrateFee,
		trade.Seller,
	)
	if err := s.repoManager.WithdrawalRepository().AddWithdrawal(
		ctx, withdrawal,
	); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"tid":    domain.TradeKey(params.Tid),
		"amount": payout.Amount,
		"fee":    payout.FeeAmount,
	}).Debug("withdrawal settled")

	return payout, nil
}

func (s *settlementService) GetTrade(
	ctx context.Context, tid []byte,
) (*domain.Trade, error) {
	return s.repoManager.TradeRepository().GetTrade(ctx, tid)
}

func (s *settlementService) ListTrades(ctx context.Context) ([]*domain.Trade, error) {
	return s.repoManager.TradeRepository().GetAllTrades(ctx)
}

func (s *settlementService) ListWithdrawals(
	ctx context.Context, tid []byte,
) ([]*domain.Withdrawal, error) {
	if _, err := s.repoManager.TradeRepository().GetTrade(ctx, tid); err != nil {
		return nil, err
	}
	return s.repoManager.WithdrawalRepository().ListWithdrawalsForTrade(ctx, tid)
}

// computePayout splits a withdrawal amount into the seller, platform fee,
// waived coupon and arbitration portions. The arbitration fee is deducted
// before the service fee is rated; the coupon rate applies to the fee, not
// to the amount. All divisions floor and
// sellerAmount + feeAmount + couponAmount + arbitrateFee == amount holds
// exactly.
func computePayout(
	amount, arbitrateFee, feeRateBps, couponRateBps uint64,
) (*Payout, error) {
	availableAmount, err := mathutil.Sub(amount, arbitrateFee)
	if err != nil {
		return nil, err
	}

	feeAmount, err := mathutil.Rate(availableAmount, feeRateBps)
	if err != nil {
		return nil, err
	}

	var couponAmount uint64
	if couponRateBps > 0 {
		couponAmount, err = mathutil.Rate(feeAmount, couponRateBps)
		if err != nil {
			return nil, err
		}
	}

	finalFeeAmount, err := mathutil.Sub(feeAmount, couponAmount)
	if err != nil {
		return nil, err
	}

	sellerAmount, err := mathutil.Sub(availableAmount, feeAmount)
	if err != nil {
		return nil, err
	}

	return &Payout{
		Amount:       amount,
		SellerAmount: sellerAmount,
		FeeAmount:    finalFeeAmount,
		CouponAmount: couponAmount,
		ArbitrateFee: arbitrateFee,
	}, nil
}
