package mathutil

// TenThousands is the scale of a fee rate expressed in basis points
// (ie. 10000 bps = 100%).
var TenThousands = uint64(10000)

// Rate calculates the portion of amount corresponding to a fee rate
// expressed in basis points, rounding down (ie. floor(amount * bps / 10000)).
func Rate(amount, feeAsBasisPoint uint64) (uint64, error) {
	amountDecimal := Decimal(amount)
	feeDecimal := Decimal(feeAsBasisPoint)

	rated := amountDecimal.Mul(feeDecimal).Div(Decimal(TenThousands)).Floor()
	if !rated.BigInt().IsUint64() {
		return 0, ErrOverflow
	}
	return rated.BigInt().Uint64(), nil
}

// SplitFee deducts from amount the fee calculated at the given rate in basis
// points and returns the remainder along with the fee itself.
func SplitFee(amount, feeAsBasisPoint uint64) (remainder, fee uint64, err error) {
	fee, err = Rate(amount, feeAsBasisPoint)
	if err != nil {
		return 0, 0, err
	}
	remainder, err = Sub(amount, fee)
	if err != nil {
		return 0, 0, err
	}
	return remainder, fee, nil
}
