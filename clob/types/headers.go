package types

// Header names the CLOB expects on authenticated requests.
const (
	HeaderPolyAddress    = "POLY_ADDRESS"
	HeaderPolySignature  = "POLY_SIGNATURE"
	HeaderPolyTimestamp  = "POLY_TIMESTAMP"
	HeaderPolyNonce      = "POLY_NONCE"
	HeaderPolyAPIKey     = "POLY_API_KEY"
	HeaderPolyPassphrase = "POLY_PASSPHRASE"
)

// L2HeaderArgs describes the request an L2 signature must cover.
// RequestPath includes the query string when present; Body is the exact
// serialized payload, nil when the request has none.
type L2HeaderArgs struct {
	Method      string
	RequestPath string
	Body        *string
}

// L1PolyHeader is the header set proving wallet ownership (EIP-712 signature).
type L1PolyHeader struct {
	PolyAddress   string
	PolySignature string
	PolyTimestamp string
	PolyNonce     string
}

// ToMap returns the headers keyed by their wire names.
func (h *L1PolyHeader) ToMap() map[string]string {
	return map[string]string{
		HeaderPolyAddress:   h.PolyAddress,
		HeaderPolySignature: h.PolySignature,
		HeaderPolyTimestamp: h.PolyTimestamp,
		HeaderPolyNonce:     h.PolyNonce,
	}
}

// L2PolyHeader is the header set proving API credential possession (HMAC).
type L2PolyHeader struct {
	PolyAddress    string
	PolySignature  string
	PolyTimestamp  string
	PolyAPIKey     string
	PolyPassphrase string
}

// ToMap returns the headers keyed by their wire names.
func (h *L2PolyHeader) ToMap() map[string]string {
	return map[string]string{
		HeaderPolyAddress:    h.PolyAddress,
		HeaderPolySignature:  h.PolySignature,
		HeaderPolyTimestamp:  h.PolyTimestamp,
		HeaderPolyAPIKey:     h.PolyAPIKey,
		HeaderPolyPassphrase: h.PolyPassphrase,
	}
}
