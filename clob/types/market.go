package types

import "github.com/shopspring/decimal"

// MidpointResponse is the /midpoint payload.
type MidpointResponse struct {
	Mid string `json:"mid"`
}

// Midpoint parses the mid price.
func (m *MidpointResponse) Midpoint() (decimal.Decimal, error) {
	return decimal.NewFromString(m.Mid)
}

// PriceResponse is the /price payload.
type PriceResponse struct {
	Price string `json:"price"`
}

// Value parses the price.
func (p *PriceResponse) Value() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Price)
}

// LastTradePriceResponse is the /last-trade-price payload.
type LastTradePriceResponse struct {
	Price string `json:"price"`
	Side  Side   `json:"side"`
}

// BookParams selects one token/side pair in batched price queries.
type BookParams struct {
	TokenID string `json:"token_id"`
	Side    Side   `json:"side,omitempty"`
}
