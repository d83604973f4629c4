// Command apikey creates or derives an API credential for the configured
// wallet and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/big"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/betbot/goclob/clob/client"
	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/internal/config"
	"github.com/betbot/goclob/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	nonce := flag.Int64("nonce", 0, "signing nonce")
	deriveOnly := flag.Bool("derive", false, "derive the existing key instead of create-or-derive")
	flag.Parse()

	_ = godotenv.Load()

	log := logger.Get()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, OutputFile: cfg.LogFile}); err != nil {
		log.Fatalf("init logger: %v", err)
	}

	signer, err := cfg.Signer()
	if err != nil {
		log.Fatalf("load wallet: %v", err)
	}
	if signer == nil {
		log.Fatal("a private key or mnemonic is required")
	}

	c := client.NewClientWithSigner(cfg.Host, types.Chain(cfg.ChainID), signer)
	log.WithField("address", signer.Address().Hex()).Info("requesting api credential")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var creds *types.ApiKeyCreds
	if *deriveOnly {
		creds, err = c.DeriveAPIKey(ctx, big.NewInt(*nonce))
	} else {
		creds, err = c.CreateOrDeriveAPIKey(ctx, big.NewInt(*nonce))
	}
	if err != nil {
		log.Fatalf("request credential: %v", err)
	}

	out := types.ApiKeyRaw{ApiKey: creds.Key, Secret: creds.Secret, Passphrase: creds.Passphrase}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode credential: %v", err)
	}
}
