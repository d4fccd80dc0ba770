package httpinterface

import (
	"encoding/hex"
	"fmt"

	"github.com/vivcrypto/viv-smart-contracts/internal/core/application"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

// Binary fields travel hex-encoded on the wire: trade ids, coupon ids,
// addresses and compact signatures.

type purchaseRequest struct {
	Tid           string `json:"tid"`
	Seller        string `json:"seller"`
	Buyer         string `json:"buyer"`
	Guarantor     string `json:"guarantor"`
	Platform      string `json:"platform"`
	FeeRateBps    uint64 `json:"fee_rate_bps"`
	Amount        uint64 `json:"amount"`
	AssetID       string `json:"asset_id,omitempty"`
	AttachedValue uint64 `json:"attached_value"`
}

func (r purchaseRequest) toParams() (application.PurchaseParams, error) {
	tid, err := hex.DecodeString(r.Tid)
	if err != nil {
		return application.PurchaseParams{}, fmt.Errorf("invalid tid: %s", err)
	}
	seller, err := signutil.ParseAddress(r.Seller)
	if err != nil {
		return application.PurchaseParams{}, fmt.Errorf("invalid seller: %s", err)
	}
	buyer, err := signutil.ParseAddress(r.Buyer)
	if err != nil {
		return application.PurchaseParams{}, fmt.Errorf("invalid buyer: %s", err)
	}
	guarantor, err := signutil.ParseAddress(r.Guarantor)
	if err != nil {
		return application.PurchaseParams{}, fmt.Errorf("invalid guarantor: %s", err)
	}
	platform, err := signutil.ParseAddress(r.Platform)
	if err != nil {
		return application.PurchaseParams{}, fmt.Errorf("invalid platform: %s", err)
	}

	token := domain.NativeToken()
	if r.AssetID != "" {
		token = domain.FungibleToken(r.AssetID)
	}

	return application.PurchaseParams{
		Tid:           tid,
		Seller:        seller,
		Buyer:         buyer,
		Guarantor:     guarantor,
		Platform:      platform,
		FeeRateBps:    r.FeeRateBps,
		Amount:        r.Amount,
		Token:         token,
		AttachedValue: r.AttachedValue,
	}, nil
}

type withdrawRequest struct {
	Caller        string `json:"caller"`
	Sig1          string `json:"sig1"`
	Sig2          string `json:"sig2"`
	PlatformSig   string `json:"platform_sig,omitempty"`
	Amount        uint64 `json:"amount"`
	CouponRateBps uint64 `json:"coupon_rate_bps,omitempty"`
	ArbitrateFee  uint64 `json:"arbitrate_fee,omitempty"`
	CouponID      string `json:"coupon_id,omitempty"`
}

func (r withdrawRequest) toParams(tid []byte) (application.WithdrawParams, error) {
	caller, err := signutil.ParseAddress(r.Caller)
	if err != nil {
		return application.WithdrawParams{}, fmt.Errorf("invalid caller: %s", err)
	}
	sig1, err := hex.DecodeString(r.Sig1)
	if err != nil {
		return application.WithdrawParams{}, fmt.Errorf("invalid sig1: %s", err)
	}
	sig2, err := hex.DecodeString(r.Sig2)
	if err != nil {
		return application.WithdrawParams{}, fmt.Errorf("invalid sig2: %s", err)
	}

	params := application.WithdrawParams{
		Tid:           tid,
		Caller:        caller,
		Sig1:          sig1,
		Sig2:          sig2,
		Amount:        r.Amount,
		CouponRateBps: r.CouponRateBps,
		ArbitrateFee:  r.ArbitrateFee,
	}
	if r.CouponRateBps > 0 {
		platformSig, err := hex.DecodeString(r.PlatformSig)
		if err != nil {
			return application.WithdrawParams{}, fmt.Errorf("invalid platform_sig: %s", err)
		}
		couponID, err := hex.DecodeString(r.CouponID)
		if err != nil {
			return application.WithdrawParams{}, fmt.Errorf("invalid coupon_id: %s", err)
		}
		params.PlatformSig = platformSig
		params.CouponID = couponID
	}
	return params, nil
}

type tradeResponse struct {
	Tid             string `json:"tid"`
	Seller          string `json:"seller"`
	Buyer           string `json:"buyer"`
	Guarantor       string `json:"guarantor"`
	Platform        string `json:"platform"`
	FeeRateBps      uint64 `json:"fee_rate_bps"`
	AssetID         string `json:"asset_id,omitempty"`
	DepositedAmount uint64 `json:"deposited_amount"`
	RemainingAmount uint64 `json:"remaining_amount"`
	Closed          bool   `json:"closed"`
	CreatedAt       uint64 `json:"created_at"`
}

func newTradeResponse(t *domain.Trade) tradeResponse {
	return tradeResponse{
		Tid:             hex.EncodeToString(t.Tid),
		Seller:          t.Seller.String(),
		Buyer:           t.Buyer.String(),
		Guarantor:       t.Guarantor.String(),
		Platform:        t.Platform.String(),
		FeeRateBps:      t.FeeRateBps,
		AssetID:         t.Token.AssetID,
		DepositedAmount: t.DepositedAmount,
		RemainingAmount: t.RemainingAmount,
		Closed:          t.IsClosed(),
		CreatedAt:       t.CreatedAt,
	}
}

type payoutResponse struct {
	Amount       uint64 `json:"amount"`
	SellerAmount uint64 `json:"seller_amount"`
	FeeAmount    uint64 `json:"fee_amount"`
	CouponAmount uint64 `json:"coupon_amount"`
	ArbitrateFee uint64 `json:"arbitrate_fee"`
}

func newPayoutResponse(p *application.Payout) payoutResponse {
	return payoutResponse{
		Amount:       p.Amount,
		SellerAmount: p.SellerAmount,
		FeeAmount:    p.FeeAmount,
		CouponAmount: p.CouponAmount,
		ArbitrateFee: p.ArbitrateFee,
	}
}

type withdrawalResponse struct {
	ID           string `json:"id"`
	Tid          string `json:"tid"`
	Amount       uint64 `json:"amount"`
	SellerAmount uint64 `json:"seller_amount"`
	FeeAmount    uint64 `json:"fee_amount"`
	CouponAmount uint64 `json:"coupon_amount"`
	ArbitrateFee uint64 `json:"arbitrate_fee"`
	To           string `json:"to"`
	Timestamp    uint64 `json:"timestamp"`
}

func newWithdrawalResponse(w *domain.Withdrawal) withdrawalResponse {
	return withdrawalResponse{
		ID:           w.ID.String(),
		Tid:          hex.EncodeToString(w.Tid),
		Amount:       w.Amount,
		SellerAmount: w.SellerAmount,
		FeeAmount:    w.FeeAmount,
		CouponAmount: w.CouponAmount,
		ArbitrateFee: w.ArbitrateFee,
		To:           w.To.String(),
		Timestamp:    w.Timestamp,
	}
}
