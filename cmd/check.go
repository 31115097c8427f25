package main

import (
	"context"
	"fmt"
	"verifier/internal/config"
	"verifier/internal/verification"
	"verifier/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand constructs the 'check' subcommand that verifies a single email
// or counts the addresses of a single domain and prints the provider answer.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verifies an email or counts a domain once and prints the JSON answer",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			email, _ := cmd.Flags().GetString("email")
			domainName, _ := cmd.Flags().GetString("domain")

			client, err := getClient(cfg, nil)
			if err != nil {
				logger.Fatal(ctx, "could not create verification client", zap.Error(err))
			}
			store, closeStrg := getStorage(ctx)
			defer closeStrg()
			svc := verification.New(client, store)

			if email != "" {
				res, err := svc.VerifyEmail(ctx, email)
				if err != nil {
					logger.Fatal(ctx, "could not verify email", zap.Error(err))
				}
				fmt.Println(string(res.Body())) //nolint: forbidigo
			}

			if domainName != "" {
				res, err := svc.CountDomain(ctx, domainName)
				if err != nil {
					logger.Fatal(ctx, "could not count domain", zap.Error(err))
				}
				fmt.Println(string(res.Raw)) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().String("email", "", "Email address to verify")
	cmd.Flags().String("domain", "", "Domain whose known addresses are counted")
	cmd.MarkFlagsOneRequired("email", "domain")

	return cmd
}
