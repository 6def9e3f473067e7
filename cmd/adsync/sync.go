package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing"
)

var syncCmd = &cobra.Command{
	Use:   "sync <url|page_id>",
	Short: "Escolhe o modo de sincronização a partir do alvo",
	Long: `Aceita uma URL da biblioteca ou um page id.

Com --incremental e um page id resolvido, executa a sincronização incremental;
nos demais casos executa a completa.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		incremental, _ := cmd.Flags().GetBool("incremental")
		maxRecords, _ := cmd.Flags().GetInt("max-records")

		outcome := newApp().SyncService.SyncAds(cmd.Context(), args[0], syncing.SyncOptions{
			MaxRecords:  maxRecords,
			Incremental: incremental,
		})
		printJSON(cmd, outcome)

		if !outcome.Success() {
			return fmt.Errorf("sincronização (%s) falhou", outcome.Mode)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().Bool("incremental", false, "Usa o modo incremental quando houver page id")
	syncCmd.Flags().Int("max-records", 1000, "Limite de anúncios no modo completo (0 = sem limite)")
	rootCmd.AddCommand(syncCmd)
}
