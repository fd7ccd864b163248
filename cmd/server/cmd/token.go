package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"eventmanager/internal/adapters/auth"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var (
		subject string
		roles   []string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API",
		Long: `Issue a JWT signed with APP_JWT_SECRET. Send it as "Authorization: Bearer <token>"
on API writes.

Examples:
  server token --subject organizer
  server token --subject ci --ttl 1h --role admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if !cfg.Auth.AuthEnabled() {
				return errors.New("APP_JWT_SECRET is not set")
			}
			if ttl == 0 {
				ttl = cfg.Auth.TokenTTL
			}
			token, err := issueToken(cfg.Auth.JWTSecret, subject, roles, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject (required)")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "role to embed in the token (repeatable)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: APP_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func issueToken(secret, subject string, roles []string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	token, err := auth.NewJWTIssuer(secret).Issue(subject, roles, ttl)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
