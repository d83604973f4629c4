package client

import (
	"strings"
	"testing"

	"github.com/betbot/goclob/clob/types"
)

func TestGetContractConfig(t *testing.T) {
	check := func(name, addr string) {
		t.Helper()
		if !strings.HasPrefix(addr, "0x") || len(addr) != 42 {
			t.Fatalf("bad %s addr: %q", name, addr)
		}
	}
	for _, chain := range []types.Chain{types.ChainPolygon, types.ChainAmoy} {
		cfg, err := GetContractConfig(chain)
		if err != nil {
			t.Fatalf("chain %d: %v", chain, err)
		}
		check("exchange", cfg.Exchange)
		check("collateral", cfg.Collateral)
		check("conditionalTokens", cfg.ConditionalTokens)
	}

	if _, err := GetContractConfig(types.Chain(1)); err == nil {
		t.Fatal("expected error for unknown chain")
	}
}

func TestClient_ContractAddresses(t *testing.T) {
	c := NewClientWithSigner("http://localhost:1", types.ChainPolygon, nil)

	collateral, err := c.CollateralAddress()
	if err != nil || collateral != PolygonMainnetContracts.Collateral {
		t.Fatalf("collateral: %q %v", collateral, err)
	}
	conditional, err := c.ConditionalTokensAddress()
	if err != nil || conditional != PolygonMainnetContracts.ConditionalTokens {
		t.Fatalf("conditional: %q %v", conditional, err)
	}
	exchange, err := c.ExchangeAddress()
	if err != nil || exchange != PolygonMainnetContracts.Exchange {
		t.Fatalf("exchange: %q %v", exchange, err)
	}

	// chain id never configured
	if _, err := NewClient("http://localhost:1").CollateralAddress(); err == nil {
		t.Fatal("expected error without chain id")
	}
}
