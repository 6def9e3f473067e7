package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <page_id>",
	Short: "Mostra o status da última sincronização de uma página",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := newApp().SyncService.GetSyncStatus(args[0])
		if err != nil {
			return err
		}
		if status == nil {
			return fmt.Errorf("página %s nunca sincronizada", args[0])
		}

		printJSON(cmd, status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
