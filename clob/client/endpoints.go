package client

// CLOB REST endpoints.
const (
	EndpointOk   = "/"
	EndpointTime = "/time"

	// Auth
	EndpointCreateAPIKey = "/auth/api-key"
	EndpointDeriveAPIKey = "/auth/derive-api-key"
	EndpointGetAPIKeys   = "/auth/api-keys"
	EndpointDeleteAPIKey = "/auth/api-key"

	// Pricing
	EndpointGetMidpoint       = "/midpoint"
	EndpointGetMidpoints      = "/midpoints"
	EndpointGetPrice          = "/price"
	EndpointGetPrices         = "/prices"
	EndpointGetLastTradePrice = "/last-trade-price"
)
