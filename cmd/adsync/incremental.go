package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var incrementalCmd = &cobra.Command{
	Use:   "incremental <page_id>",
	Short: "Sincroniza uma página comparando com a réplica",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := newApp().SyncService.IncrementalSync(cmd.Context(), args[0], nil)
		printJSON(cmd, result)

		if !result.Success {
			return fmt.Errorf("sincronização incremental falhou: %s", result.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(incrementalCmd)
}
