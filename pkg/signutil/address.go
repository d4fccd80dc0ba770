package signutil

import (
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

// AddressLength is the byte length of an account address.
const AddressLength = 20

// ErrInvalidAddress is returned when parsing an address of the wrong length
// or with a malformed encoding.
var ErrInvalidAddress = errors.New("address must be a 20-byte hex string")

// Address identifies an account as the HASH160 of its compressed public key.
// The zero value marks an unset party.
type Address [AddressLength]byte

// AddressFromPubKey derives the address of the given public key.
func AddressFromPubKey(pubkey *btcec.PublicKey) Address {
	var addr Address
	copy(addr[:], btcutil.Hash160(pubkey.SerializeCompressed()))
	return addr
}

// ParseAddress decodes an address from its hex representation.
func ParseAddress(s string) (Address, error) {
	buf, err := hex.DecodeString(s)
	if err != nil || len(buf) != AddressLength {
		return Address{}, ErrInvalidAddress
	}
	var addr Address
	copy(addr[:], buf)
	return addr, nil
}

// IsZero returns whether the address is unset.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}
