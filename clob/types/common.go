package types

// Side is an order-book side.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Chain identifies the network whose contracts and EIP-712 domain apply.
type Chain uint64

const (
	ChainPolygon Chain = 137
	ChainAmoy    Chain = 80002
)

// ApiKeyCreds is the credential triple issued by the CLOB after L1
// authentication. Secret is base64 (URL-safe) encoded HMAC key material.
type ApiKeyCreds struct {
	Key        string
	Secret     string
	Passphrase string
}

// ApiKeyRaw is the wire format the /auth endpoints return.
type ApiKeyRaw struct {
	ApiKey     string `json:"apiKey"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// Creds converts the wire format into the credential triple.
func (r *ApiKeyRaw) Creds() *ApiKeyCreds {
	return &ApiKeyCreds{
		Key:        r.ApiKey,
		Secret:     r.Secret,
		Passphrase: r.Passphrase,
	}
}
