package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/auth"
)

var tokenFlags struct {
	userID uint
	email  string
	role   string
	ttl    time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token",
	Long:  "Signs a bearer token with JWT_SECRET for calling the API locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		role := auth.Role(tokenFlags.role)
		if !role.Valid() {
			return fmt.Errorf("role must be USER or ADMIN, got %q", tokenFlags.role)
		}
		if tokenFlags.userID == 0 {
			return errors.New("--user-id must be a positive integer")
		}

		token, err := auth.IssueToken(cfg.JWTSecret, auth.Principal{
			UserID: tokenFlags.userID,
			Email:  tokenFlags.email,
			Role:   role,
		}, tokenFlags.ttl, time.Now())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().UintVar(&tokenFlags.userID, "user-id", 0, "subject user id")
	tokenCmd.Flags().StringVar(&tokenFlags.email, "email", "", "subject email")
	tokenCmd.Flags().StringVar(&tokenFlags.role, "role", string(auth.RoleUser), "USER or ADMIN")
	tokenCmd.Flags().DurationVar(&tokenFlags.ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("user-id")
	_ = tokenCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(tokenCmd)
}
