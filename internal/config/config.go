// Package config loads CLI configuration from a YAML file with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

// Config describes one client setup: host, chain, wallet material and an
// optional previously issued credential triple.
type Config struct {
	Host    string `yaml:"host"`
	ChainID uint64 `yaml:"chain_id"`

	// one of the two; private key wins when both are set
	PrivateKey     string `yaml:"private_key"`
	Mnemonic       string `yaml:"mnemonic"`
	DerivationPath string `yaml:"derivation_path"`

	APIKey        string `yaml:"api_key"`
	APISecret     string `yaml:"api_secret"`
	APIPassphrase string `yaml:"api_passphrase"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load reads the YAML file (skipped when path is empty), then applies
// environment overrides and validates.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Host:     "https://clob.polymarket.com",
		ChainID:  uint64(types.ChainPolygon),
		LogLevel: "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if (cfg.PrivateKey != "" || cfg.Mnemonic != "") && cfg.ChainID == 0 {
		return nil, fmt.Errorf("chain_id is required when a wallet is configured")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Host, "CLOB_HOST")
	set(&c.PrivateKey, "CLOB_PRIVATE_KEY")
	set(&c.Mnemonic, "CLOB_MNEMONIC")
	set(&c.DerivationPath, "CLOB_DERIVATION_PATH")
	set(&c.APIKey, "CLOB_API_KEY")
	set(&c.APISecret, "CLOB_API_SECRET")
	set(&c.APIPassphrase, "CLOB_API_PASSPHRASE")
	set(&c.LogLevel, "CLOB_LOG_LEVEL")
	set(&c.LogFile, "CLOB_LOG_FILE")
	if v := os.Getenv("CLOB_CHAIN_ID"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.ChainID = id
		}
	}
}

// Signer builds the wallet signer, or returns nil when none is configured.
func (c *Config) Signer() (signing.Signer, error) {
	switch {
	case c.PrivateKey != "":
		return signing.NewSignerFromHex(c.PrivateKey)
	case c.Mnemonic != "":
		return signing.NewSignerFromMnemonic(c.Mnemonic, c.DerivationPath)
	default:
		return nil, nil
	}
}

// Creds returns the configured credential triple, or nil when incomplete.
func (c *Config) Creds() *types.ApiKeyCreds {
	if c.APIKey == "" || c.APISecret == "" || c.APIPassphrase == "" {
		return nil
	}
	return &types.ApiKeyCreds{
		Key:        c.APIKey,
		Secret:     c.APISecret,
		Passphrase: c.APIPassphrase,
	}
}
