package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

var tokenRoles = map[string]int{
	"admin":  domain.RoleAdmin,
	"reader": domain.RoleReader,
}

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Emite um token de acesso à API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roleName, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		role, ok := tokenRoles[roleName]
		if !ok {
			return fmt.Errorf("papel inválido %q (use admin ou reader)", roleName)
		}

		token, err := newApp().Authenticator.IssueToken(args[0], role, ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("role", "reader", "Papel do token (admin ou reader)")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Validade do token")
	rootCmd.AddCommand(tokenCmd)
}
