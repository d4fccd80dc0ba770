package domain

import (
	"encoding/hex"
	"time"

	"github.com/vivcrypto/viv-smart-contracts/pkg/mathutil"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

// TokenKind identifies the asset a trade is denominated in. The zero value
// is the native asset; any other value names a fungible token.
type TokenKind struct {
	AssetID string
}

// NativeToken returns the TokenKind of the native asset.
func NativeToken() TokenKind {
	return TokenKind{}
}

// FungibleToken returns the TokenKind of the fungible token with the given
// asset id.
func FungibleToken(assetID string) TokenKind {
	return TokenKind{AssetID: assetID}
}

// IsNative returns whether the kind denotes the native asset.
func (k TokenKind) IsNative() bool {
	return k.AssetID == ""
}

// Trade is one escrow deposit-and-release lifecycle. A record is created
// once by a purchase, mutated only by withdrawals against its trade id and
// never deleted; RemainingAmount == 0 means the trade is logically closed.
type Trade struct {
	Tid             []byte
	Seller          signutil.Address
	Buyer           signutil.Address
	Guarantor       signutil.Address
	Platform        signutil.Address
	FeeRateBps      uint64
	Token           TokenKind
	DepositedAmount uint64
	RemainingAmount uint64
	CreatedAt       uint64
}

// NewTradeOpts groups the arguments for registering a new trade.
type NewTradeOpts struct {
	Tid        []byte
	Seller     signutil.Address
	Buyer      signutil.Address
	Guarantor  signutil.Address
	Platform   signutil.Address
	FeeRateBps uint64
	Token      TokenKind
	Amount     uint64
}

// NewTrade validates the given options and returns a Trade with its full
// deposited amount remaining.
func NewTrade(opts NewTradeOpts) (*Trade, error) {
	if opts.Seller.IsZero() {
		return nil, ErrInvalidSeller
	}
	if opts.Platform.IsZero() {
		return nil, ErrInvalidPlatform
	}
	if opts.Guarantor.IsZero() {
		return nil, ErrInvalidGuarantor
	}
	if opts.Buyer.IsZero() {
		return nil, ErrInvalidBuyer
	}
	if opts.Amount == 0 {
		return nil, ErrInvalidAmount
	}
	if opts.FeeRateBps > mathutil.TenThousands {
		return nil, ErrInvalidFeeRate
	}
	if len(opts.Tid) == 0 {
		return nil, ErrInvalidTid
	}

	return &Trade{
		Tid:             opts.Tid,
		Seller:          opts.Seller,
		Buyer:           opts.Buyer,
		Guarantor:       opts.Guarantor,
		Platform:        opts.Platform,
		FeeRateBps:      opts.FeeRateBps,
		Token:           opts.Token,
		DepositedAmount: opts.Amount,
		RemainingAmount: opts.Amount,
		CreatedAt:       uint64(time.Now().Unix()),
	}, nil
}

// TradeKey returns the storage key of a trade id.
func TradeKey(tid []byte) string {
	return hex.EncodeToString(tid)
}

// Key returns the storage key of the trade.
func (t *Trade) Key() string {
	return TradeKey(t.Tid)
}
