package main

import (
	"errors"
	"fmt"
	"time"

	"comment-srv/config"
	pkgJWT "comment-srv/pkg/jwt"

	"github.com/spf13/cobra"
)

var (
	tokenUserID   string
	tokenUsername string
	tokenRole     string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development token signed with the configured JWT secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID == "" {
			return errors.New("--user is required")
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		tok, err := mintToken(cfg.JWT, tokenUserID, tokenUsername, tokenRole, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "Subject user id")
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "Display name")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "USER", "Role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
}

func mintToken(cfg config.JWTConfig, userID, username, role string, ttl time.Duration) (string, error) {
	m, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.SecretKey,
		Issuer:    cfg.Issuer,
		Audience:  cfg.Audience,
		TTL:       ttl,
	})
	if err != nil {
		return "", fmt.Errorf("jwt: %w", err)
	}
	return m.GenerateToken(userID, username, role)
}
