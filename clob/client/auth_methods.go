package client

import (
	"context"
	"math/big"
	"net/http"
	"strings"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

// l1HeaderMap gates on wallet auth and builds the L1 header set.
func (c *Client) l1HeaderMap(nonce *big.Int) (map[string]string, error) {
	if err := c.CanL1Auth(); err != nil {
		return nil, err
	}
	h, err := signing.CreateL1Headers(c.signer, c.chainID, nonce, nil)
	if err != nil {
		return nil, err
	}
	return h.ToMap(), nil
}

// CreateAPIKey asks the server to issue a fresh credential triple for the
// wallet. A nil nonce signs with nonce 0.
func (c *Client) CreateAPIKey(ctx context.Context, nonce *big.Int) (*types.ApiKeyCreds, error) {
	headers, err := c.l1HeaderMap(nonce)
	if err != nil {
		return nil, err
	}
	var raw types.ApiKeyRaw
	if err := c.http.do(ctx, http.MethodPost, EndpointCreateAPIKey, &requestOptions{headers: headers}, &raw); err != nil {
		return nil, err
	}
	return raw.Creds(), nil
}

// DeriveAPIKey asks the server to re-derive the credential triple it already
// issued for the wallet and nonce.
func (c *Client) DeriveAPIKey(ctx context.Context, nonce *big.Int) (*types.ApiKeyCreds, error) {
	headers, err := c.l1HeaderMap(nonce)
	if err != nil {
		return nil, err
	}
	var raw types.ApiKeyRaw
	if err := c.http.do(ctx, http.MethodGet, EndpointDeriveAPIKey, &requestOptions{headers: headers}, &raw); err != nil {
		return nil, err
	}
	return raw.Creds(), nil
}

// CreateOrDeriveAPIKey tries to create a credential and, if the create call
// fails for any reason, returns the result of deriving instead. The create
// error is discarded, so a transient outage on the create path surfaces as
// whatever the derive path returns.
func (c *Client) CreateOrDeriveAPIKey(ctx context.Context, nonce *big.Int) (*types.ApiKeyCreds, error) {
	creds, err := c.CreateAPIKey(ctx, nonce)
	if err != nil {
		return c.DeriveAPIKey(ctx, nonce)
	}
	return creds, nil
}

type apiKeysResponse struct {
	ApiKeys []string `json:"apiKeys"`
}

// GetAPIKeys lists the api keys issued for the authenticated account.
func (c *Client) GetAPIKeys(ctx context.Context) ([]string, error) {
	headers, err := c.l2HeaderMap(http.MethodGet, EndpointGetAPIKeys, nil)
	if err != nil {
		return nil, err
	}
	var resp apiKeysResponse
	if err := c.http.do(ctx, http.MethodGet, EndpointGetAPIKeys, &requestOptions{headers: headers}, &resp); err != nil {
		return nil, err
	}
	return resp.ApiKeys, nil
}

// DeleteAPIKey revokes the credential the client is configured with and
// returns the server's confirmation text.
func (c *Client) DeleteAPIKey(ctx context.Context) (string, error) {
	headers, err := c.l2HeaderMap(http.MethodDelete, EndpointDeleteAPIKey, nil)
	if err != nil {
		return "", err
	}
	body, err := c.http.doRaw(ctx, http.MethodDelete, EndpointDeleteAPIKey, &requestOptions{headers: headers})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}
