// Package main provides the CLI entrypoint for the email verification service.
// It wires subcommands (serve, check), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"verifier/internal/config"
	"verifier/pkg/emailverifier/hunterio"
	"verifier/pkg/logger"
	"verifier/pkg/storage/memory"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getClient creates the Hunter.io verification client from configuration values.
func getClient(cfg *config.Config, mp metric.MeterProvider) (*hunterio.Client, error) {
	client, err := hunterio.New(hunterio.Options{
		BaseURL:       cfg.Hunter.BaseURL,
		APIKey:        cfg.Hunter.APIKey,
		Timeout:       cfg.Hunter.Timeout,
		RateLimit:     cfg.Hunter.RateLimit,
		RateBurst:     cfg.Hunter.RateBurst,
		MeterProvider: mp,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create hunter.io client: %w", err)
	}

	return client, nil
}

// getStorage creates the in-memory result store and returns it along with a
// cleanup function releasing it.
func getStorage(ctx context.Context) (*memory.Memory, func()) {
	store := memory.New()

	return store, func() {
		logger.Info(ctx, "closing result storage...")
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close result storage", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging before
// any subcommand runs, and executes the CLI.
func main() {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:          "verifier",
		Short:        "Email and domain verification proxy backed by Hunter.io",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			log.Println("loading config ...")
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = *loaded

			if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
				return fmt.Errorf("could not setup logger: %w", err)
			}

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(&cfg),
		checkCommand(&cfg),
	)

	err := rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
