package signutil

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignatureLength is the byte length of a compact signature (one recovery
// header byte followed by the 32-byte R and S values).
const SignatureLength = 65

// ErrMalformedSignature is returned when a signature cannot be interpreted
// at all. A well-formed signature from the wrong key is not an error, the
// verification predicates just return false for it.
var ErrMalformedSignature = errors.New("malformed compact signature")

// Recoverer recovers the identity that produced a signature over a message
// hash. It is injected into the Verifier so the settlement logic can be
// exercised with deterministic recoverers in tests.
type Recoverer interface {
	Recover(hash, sig []byte) (Address, error)
}

type ecdsaRecoverer struct{}

// NewECDSARecoverer returns the default Recoverer, backed by compact ECDSA
// public key recovery over secp256k1.
func NewECDSARecoverer() Recoverer {
	return ecdsaRecoverer{}
}

func (ecdsaRecoverer) Recover(hash, sig []byte) (Address, error) {
	if len(sig) != SignatureLength {
		return Address{}, ErrMalformedSignature
	}
	pubkey, _, err := ecdsa.RecoverCompact(sig, hash)
	if err != nil {
		return Address{}, ErrMalformedSignature
	}
	return AddressFromPubKey(pubkey), nil
}

// Sign produces a compact signature over the given message hash, recoverable
// to the address of the key's public key.
func Sign(key *btcec.PrivateKey, hash []byte) ([]byte, error) {
	return ecdsa.SignCompact(key, hash, true)
}

// Verifier implements the three verification protocols of the settlement
// engine on top of an injected Recoverer. All its methods are
// side-effect-free predicates.
type Verifier struct {
	recoverer Recoverer
}

// NewVerifier returns a Verifier using the given recoverer.
func NewVerifier(recoverer Recoverer) *Verifier {
	return &Verifier{recoverer}
}

// VerifyAnyTwo returns whether sig1 and sig2 recover to two distinct members
// of {p1, p2, p3}. Two signatures recovering to the same identity never
// count as two independent authorizations.
func (v *Verifier) VerifyAnyTwo(
	hash, sig1, sig2 []byte, p1, p2, p3 Address,
) (bool, error) {
	signer1, err := v.recoverer.Recover(hash, sig1)
	if err != nil {
		return false, err
	}
	signer2, err := v.recoverer.Recover(hash, sig2)
	if err != nil {
		return false, err
	}

	if signer1 == signer2 {
		return false, nil
	}
	return isOneOf(signer1, p1, p2, p3) && isOneOf(signer2, p1, p2, p3), nil
}

// VerifyBoth returns whether sig1 and sig2 recover to p1 and p2, in either
// order, with the two signers distinct.
func (v *Verifier) VerifyBoth(
	hash, sig1, sig2 []byte, p1, p2 Address,
) (bool, error) {
	signer1, err := v.recoverer.Recover(hash, sig1)
	if err != nil {
		return false, err
	}
	signer2, err := v.recoverer.Recover(hash, sig2)
	if err != nil {
		return false, err
	}

	if signer1 == signer2 {
		return false, nil
	}
	return (signer1 == p1 && signer2 == p2) ||
		(signer1 == p2 && signer2 == p1), nil
}

// VerifySingle returns whether sig recovers to p.
func (v *Verifier) VerifySingle(hash, sig []byte, p Address) (bool, error) {
	signer, err := v.recoverer.Recover(hash, sig)
	if err != nil {
		return false, err
	}
	return signer == p, nil
}

func isOneOf(signer, p1, p2, p3 Address) bool {
	return signer == p1 || signer == p2 || signer == p3
}
