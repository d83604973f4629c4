package signing

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer produces recoverable secp256k1 signatures over 32-byte digests and
// exposes the account address they verify against. The header builders depend
// on this capability only, never on a concrete key representation, so backends
// other than an in-memory key (HD wallets, remote signers) can be plugged in.
type Signer interface {
	Address() common.Address
	Sign(digest []byte) ([]byte, error)
}

// PrivateKeySigner signs with an in-memory secp256k1 private key.
type PrivateKeySigner struct {
	key *ecdsa.PrivateKey
}

// NewPrivateKeySigner wraps an already parsed private key.
func NewPrivateKeySigner(key *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{key: key}
}

// NewSignerFromHex parses a hex private key; a leading "0x" is accepted.
func NewSignerFromHex(hexKey string) (*PrivateKeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &PrivateKeySigner{key: key}, nil
}

// Address returns the account derived from the key's public half.
func (s *PrivateKeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

// Sign produces a 65-byte r||s||v signature over a 32-byte digest.
func (s *PrivateKeySigner) Sign(digest []byte) ([]byte, error) {
	if len(digest) != common.HashLength {
		return nil, fmt.Errorf("digest must be %d bytes, got %d", common.HashLength, len(digest))
	}
	return crypto.Sign(digest, s.key)
}
