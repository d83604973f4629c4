// Package client is a REST client for the Polymarket CLOB. Privileged
// endpoints are authenticated with either L1 headers (an EIP-712 wallet
// signature, used to issue API credentials) or L2 headers (an HMAC over the
// request computed with a previously issued credential secret).
package client

import (
	"strings"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

// Client talks to one CLOB host. A client is in one of three states:
// unauthenticated (public endpoints only), wallet-only (L1 endpoints), or
// fully authenticated (L1 and L2). Signer, chain id and credentials are set
// at construction (or once via SetApiCreds) and read-only afterwards, so
// concurrent request issuance needs no locking.
type Client struct {
	host    string
	chainID types.Chain
	signer  signing.Signer
	creds   *types.ApiKeyCreds
	http    *httpClient
}

// NewClient creates an unauthenticated client for public market data.
func NewClient(host string) *Client {
	return &Client{
		host: strings.TrimSuffix(host, "/"),
		http: newHTTPClient(host),
	}
}

// NewClientWithSigner creates a wallet-only client able to issue L1 requests.
func NewClientWithSigner(host string, chainID types.Chain, signer signing.Signer) *Client {
	c := NewClient(host)
	c.chainID = chainID
	c.signer = signer
	return c
}

// NewClientWithCreds creates a fully authenticated client.
func NewClientWithCreds(host string, chainID types.Chain, signer signing.Signer, creds *types.ApiKeyCreds) *Client {
	c := NewClientWithSigner(host, chainID, signer)
	c.creds = creds
	return c
}

// SetApiCreds upgrades a wallet-only client to fully authenticated. Call it
// before issuing requests; credentials are not meant to change mid-flight.
func (c *Client) SetApiCreds(creds *types.ApiKeyCreds) {
	c.creds = creds
}

// Host returns the configured base URL.
func (c *Client) Host() string {
	return c.host
}

// ChainID returns the configured chain id (zero when unauthenticated).
func (c *Client) ChainID() types.Chain {
	return c.chainID
}

// CollateralAddress returns the collateral token address for the client's chain.
func (c *Client) CollateralAddress() (string, error) {
	cfg, err := GetContractConfig(c.chainID)
	if err != nil {
		return "", err
	}
	return cfg.Collateral, nil
}

// ConditionalTokensAddress returns the conditional tokens contract address.
func (c *Client) ConditionalTokensAddress() (string, error) {
	cfg, err := GetContractConfig(c.chainID)
	if err != nil {
		return "", err
	}
	return cfg.ConditionalTokens, nil
}

// ExchangeAddress returns the exchange contract address.
func (c *Client) ExchangeAddress() (string, error) {
	cfg, err := GetContractConfig(c.chainID)
	if err != nil {
		return "", err
	}
	return cfg.Exchange, nil
}
