package signutil

import (
	"encoding/binary"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// messagePrefix is prepended to every payload before hashing so that a
// signature produced for the settlement engine cannot be replayed as a
// signature over arbitrary data.
const messagePrefix = "\x19Viv Signed Message:\n"

// HashMessage returns the double-SHA256 digest of the prefixed payload.
func HashMessage(payload []byte) []byte {
	buf := make([]byte, 0, len(messagePrefix)+20+len(payload))
	buf = append(buf, messagePrefix...)
	buf = append(buf, strconv.Itoa(len(payload))...)
	buf = append(buf, payload...)
	return chainhash.DoubleHashB(buf)
}

// ReleaseDigest is the message signed by the parties to authorize a release
// of funds with no arbitration fee. The signature is bound to the trade only,
// so it stays valid for repeated partial withdrawals against it.
func ReleaseDigest(tid []byte) []byte {
	return HashMessage(tid)
}

// ArbitratedReleaseDigest is the message signed by the parties to authorize
// a release carrying an arbitration fee. Amount and fee are part of the
// payload, binding each signature to the exact split being approved.
func ArbitratedReleaseDigest(amount, arbitrateFee uint64, tid []byte) []byte {
	payload := make([]byte, 0, 16+len(tid))
	payload = appendUint64(payload, amount)
	payload = appendUint64(payload, arbitrateFee)
	payload = append(payload, tid...)
	return HashMessage(payload)
}

// CouponDigest is the message signed by the platform to endorse a fee
// discount for one coupon on one trade.
func CouponDigest(couponRateBps uint64, couponID, tid []byte) []byte {
	payload := make([]byte, 0, 8+len(couponID)+len(tid))
	payload = appendUint64(payload, couponRateBps)
	payload = append(payload, couponID...)
	payload = append(payload, tid...)
	return HashMessage(payload)
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}
