package client

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/betbot/goclob/clob/types"
)

// GetOk reports whether the host answers at all.
func (c *Client) GetOk(ctx context.Context) bool {
	_, err := c.http.doRaw(ctx, http.MethodGet, EndpointOk, nil)
	return err == nil
}

// GetServerTime returns the server's clock in UTC seconds.
func (c *Client) GetServerTime(ctx context.Context) (int64, error) {
	body, err := c.http.doRaw(ctx, http.MethodGet, EndpointTime, nil)
	if err != nil {
		return 0, err
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse server time %q", string(body))
	}
	return ts, nil
}

// GetMidpoint returns the book midpoint for a token.
func (c *Client) GetMidpoint(ctx context.Context, tokenID string) (*types.MidpointResponse, error) {
	var resp types.MidpointResponse
	opt := &requestOptions{params: map[string]string{"token_id": tokenID}}
	if err := c.http.do(ctx, http.MethodGet, EndpointGetMidpoint, opt, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMidpoints returns midpoints for many tokens, keyed by token id.
func (c *Client) GetMidpoints(ctx context.Context, tokenIDs []string) (map[string]string, error) {
	params := make([]types.BookParams, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		params = append(params, types.BookParams{TokenID: id})
	}
	body, err := marshalBody(params)
	if err != nil {
		return nil, err
	}
	var resp map[string]string
	if err := c.http.do(ctx, http.MethodPost, EndpointGetMidpoints, &requestOptions{body: body}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetPrice returns the best price for a token on one side of the book.
func (c *Client) GetPrice(ctx context.Context, tokenID string, side types.Side) (*types.PriceResponse, error) {
	var resp types.PriceResponse
	opt := &requestOptions{params: map[string]string{
		"token_id": tokenID,
		"side":     string(side),
	}}
	if err := c.http.do(ctx, http.MethodGet, EndpointGetPrice, opt, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPrices returns best prices for many token/side pairs, keyed by token id
// then side.
func (c *Client) GetPrices(ctx context.Context, bookParams []types.BookParams) (map[string]map[types.Side]string, error) {
	body, err := marshalBody(bookParams)
	if err != nil {
		return nil, err
	}
	var resp map[string]map[types.Side]string
	if err := c.http.do(ctx, http.MethodPost, EndpointGetPrices, &requestOptions{body: body}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetLastTradePrice returns the last traded price for a token.
func (c *Client) GetLastTradePrice(ctx context.Context, tokenID string) (*types.LastTradePriceResponse, error) {
	var resp types.LastTradePriceResponse
	opt := &requestOptions{params: map[string]string{"token_id": tokenID}}
	if err := c.http.do(ctx, http.MethodGet, EndpointGetLastTradePrice, opt, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
