// Command price-watcher polls midpoints and best prices for a set of tokens
// and logs them at a fixed interval.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/betbot/goclob/clob/client"
	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/internal/config"
	"github.com/betbot/goclob/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	tokens := flag.String("tokens", "", "comma-separated token ids")
	interval := flag.Duration("interval", 5*time.Second, "poll interval")
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

	tokenIDs := strings.Split(*tokens, ",")
	if *tokens == "" || len(tokenIDs) == 0 {
		log.Fatal("-tokens is required")
	}

	c := client.NewClient(cfg.Host)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	log.WithField("tokens", tokenIDs).Info("watching prices")
	for {
		for _, id := range tokenIDs {
			mid, err := c.GetMidpoint(ctx, id)
			if err != nil {
				log.WithError(err).WithField("token", id).Warn("midpoint failed")
				continue
			}
			buy, err := c.GetPrice(ctx, id, types.SideBuy)
			if err != nil {
				log.WithError(err).WithField("token", id).Warn("price failed")
				continue
			}
			log.WithFields(map[string]interface{}{
				"token": id,
				"mid":   mid.Mid,
				"buy":   buy.Price,
			}).Info("quote")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
