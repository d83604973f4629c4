package client

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

// Missing-configuration errors. These signal a usage bug (calling a
// privileged method on a client that was never given the required material),
// not a transient condition worth retrying.
var (
	ErrSignerNotSet = errors.New("signer is not configured")
	ErrCredsNotSet  = errors.New("api credentials are not configured")
)

// CanL1Auth reports whether wallet-signature requests are possible.
func (c *Client) CanL1Auth() error {
	if c.signer == nil {
		return ErrSignerNotSet
	}
	return nil
}

// CanL2Auth reports whether credential-based requests are possible.
func (c *Client) CanL2Auth() error {
	if err := c.CanL1Auth(); err != nil {
		return err
	}
	if c.creds == nil {
		return ErrCredsNotSet
	}
	return nil
}

// Address returns the signer's account address.
func (c *Client) Address() (common.Address, error) {
	if err := c.CanL1Auth(); err != nil {
		return common.Address{}, err
	}
	return c.signer.Address(), nil
}

// l2HeaderMap gates on full authentication and builds the L2 header set for
// one request.
func (c *Client) l2HeaderMap(method, requestPath string, body *string) (map[string]string, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	h, err := signing.CreateL2Headers(c.signer.Address(), c.creds, &types.L2HeaderArgs{
		Method:      method,
		RequestPath: requestPath,
		Body:        body,
	}, nil)
	if err != nil {
		return nil, err
	}
	return h.ToMap(), nil
}
