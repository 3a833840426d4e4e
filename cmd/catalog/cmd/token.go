package cmd

import (
	"fmt"
	"time"

	"servi-search/internal/config"
	"servi-search/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenUserID string
	tokenEmail  string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token signed with JWT_ACCESS_SECRET for local testing",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "user id (default: random)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is not set")
	}

	uid := uuid.New()
	if tokenUserID != "" {
		if uid, err = uuid.Parse(tokenUserID); err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
	}

	tok, err := jwt.NewHMACService(cfg.JWT.AccessSecret, tokenTTL).GenerateAccessToken(uid, tokenEmail, "client")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
