package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"multivende-sync/core/crypto"
	"multivende-sync/feature/credential"
)

// tokenCmd refreshes the stored bearer token. Unlike the sync jobs it runs
// even when the current credential is expired; the refresh token is what
// matters here.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Refresh the stored Multivende bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()
		ctx := context.Background()

		env, err := newJobEnv("token_log")
		if err != nil {
			return err
		}
		defer env.logger.Sync()
		defer env.finish(ctx, started)
		env.note(env.audit.Info, "run", "start")

		cipher, err := crypto.New(env.cfg.Auth.SecretKey)
		if err != nil {
			return fmt.Errorf("failed to build token cipher: %w", err)
		}

		refresher := credential.NewRefresher(env.db, cipher, env.api(""), env.logger)
		if err := refresher.Refresh(ctx); err != nil {
			env.note(env.audit.Error, "auth", err.Error())
			return err
		}
		env.note(env.audit.Info, "auth", "token refreshed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tokenCmd)
}
