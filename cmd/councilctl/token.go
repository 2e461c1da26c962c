package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/camara-backend/internal/auth"
	"github.com/heartmarshall/camara-backend/internal/config"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage bearer tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue an access token for a council member",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rawUser, _ := cmd.Flags().GetString("user")
		rawRole, _ := cmd.Flags().GetString("role")

		userID, err := uuid.Parse(rawUser)
		if err != nil {
			return fmt.Errorf("--user: %w", err)
		}
		role := domain.Role(strings.ToUpper(strings.TrimSpace(rawRole)))
		if !role.IsValid() {
			return fmt.Errorf("--role: unknown role %q", rawRole)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, err := tokens.GenerateAccessToken(userID, role)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().String("user", "", "member id (uuid)")
	tokenIssueCmd.Flags().String("role", "", "ADMIN, PRESIDENT or COUNCILOR")
	_ = tokenIssueCmd.MarkFlagRequired("user")
	_ = tokenIssueCmd.MarkFlagRequired("role")

	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}
