package main

import (
	"errors"
	"fmt"
	"time"

	"portal-api/internal/config"
	"portal-api/internal/pkg/jwt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
	hashCost     int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin access token",
	Long: `Signs an admin token with JWT_ACCESS_SECRET. The token unlocks
PATCH /api/lca/:id/status and shows non-certified postings in listings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ttl := tokenTTL
		if ttl <= 0 {
			ttl = cfg.JWT.AccessExpiresIn
		}
		tok, exp, err := jwt.NewHMACService(cfg.JWT.AccessSecret, ttl).GenerateAdminToken(tokenSubject)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", exp.Format(time.RFC3339))
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Produce a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := hashPassword(args[0], hashCost)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func hashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to JWT_ACCESS_EXPIRES_IN)")
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", bcrypt.DefaultCost, "bcrypt cost")
}
