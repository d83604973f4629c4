package signing

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/betbot/goclob/clob/types"
)

// clobAuthTypes is the typed-data layout the server reconstructs when it
// verifies an L1 signature. Field order is part of the wire contract.
var clobAuthTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
	},
	"ClobAuth": {
		{Name: "address", Type: "address"},
		{Name: "timestamp", Type: "string"},
		{Name: "nonce", Type: "uint256"},
		{Name: "message", Type: "string"},
	},
}

// ClobAuthDigest computes the EIP-712 digest of the ClobAuth struct binding
// the given address, timestamp and nonce under the chain's auth domain.
func ClobAuthDigest(address common.Address, chainID types.Chain, timestamp int64, nonce *big.Int) (common.Hash, error) {
	typedData := apitypes.TypedData{
		Types:       clobAuthTypes,
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    ClobDomainName,
			Version: ClobVersion,
			ChainId: math.NewHexOrDecimal256(int64(chainID)),
		},
		Message: apitypes.TypedDataMessage{
			"address":   address.Hex(),
			"timestamp": strconv.FormatInt(timestamp, 10),
			"nonce":     (*math.HexOrDecimal256)(nonce),
			"message":   MsgToSign,
		},
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return common.Hash{}, fmt.Errorf("hash EIP712 domain: %w", err)
	}
	structHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return common.Hash{}, fmt.Errorf("hash ClobAuth struct: %w", err)
	}

	raw := []byte("\x19\x01")
	raw = append(raw, domainSeparator...)
	raw = append(raw, structHash...)
	return crypto.Keccak256Hash(raw), nil
}

// BuildClobEip712Signature signs the ClobAuth digest with the signer and
// returns the 65-byte r||s||v signature as a 0x-prefixed hex string.
func BuildClobEip712Signature(signer Signer, chainID types.Chain, timestamp int64, nonce *big.Int) (string, error) {
	digest, err := ClobAuthDigest(signer.Address(), chainID, timestamp, nonce)
	if err != nil {
		return "", err
	}
	sig, err := signer.Sign(digest.Bytes())
	if err != nil {
		return "", fmt.Errorf("sign ClobAuth digest: %w", err)
	}
	return hexutil.Encode(sig), nil
}
