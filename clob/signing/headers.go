package signing

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/betbot/goclob/clob/types"
)

// now returns the wall clock in UTC seconds.
func now() int64 {
	return time.Now().UTC().Unix()
}

// CreateL1Headers builds the header set proving wallet ownership. A nil nonce
// means 0; replay protection beyond that is the caller's concern. A nil
// timestamp means "now" — tests pin it for determinism.
func CreateL1Headers(signer Signer, chainID types.Chain, nonce *big.Int, timestamp *int64) (*types.L1PolyHeader, error) {
	if signer == nil {
		return nil, fmt.Errorf("signer is required for L1 headers")
	}

	ts := now()
	if timestamp != nil {
		ts = *timestamp
	}
	n := nonce
	if n == nil {
		n = big.NewInt(0)
	}

	sig, err := BuildClobEip712Signature(signer, chainID, ts, n)
	if err != nil {
		return nil, fmt.Errorf("build L1 signature: %w", err)
	}

	return &types.L1PolyHeader{
		PolyAddress:   signer.Address().Hex(),
		PolySignature: sig,
		PolyTimestamp: strconv.FormatInt(ts, 10),
		PolyNonce:     n.String(),
	}, nil
}

// CreateL2Headers builds the header set proving credential possession. The
// signature is purely credential-based; the address only identifies the
// account the credential belongs to. A nil timestamp means "now".
func CreateL2Headers(address common.Address, creds *types.ApiKeyCreds, args *types.L2HeaderArgs, timestamp *int64) (*types.L2PolyHeader, error) {
	if creds == nil {
		return nil, fmt.Errorf("api credentials are required for L2 headers")
	}

	ts := now()
	if timestamp != nil {
		ts = *timestamp
	}

	sig, err := BuildPolyHmacSignature(creds.Secret, ts, args.Method, args.RequestPath, args.Body)
	if err != nil {
		return nil, fmt.Errorf("build L2 signature: %w", err)
	}

	return &types.L2PolyHeader{
		PolyAddress:    address.Hex(),
		PolySignature:  sig,
		PolyTimestamp:  strconv.FormatInt(ts, 10),
		PolyAPIKey:     creds.Key,
		PolyPassphrase: creds.Passphrase,
	}, nil
}
