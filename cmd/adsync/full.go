package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fullCmd = &cobra.Command{
	Use:   "full <url>",
	Short: "Sincronização completa a partir de uma URL da biblioteca",
	Example: `  adsync full "https://www.facebook.com/ads/library/?view_all_page_id=123"
  adsync full "https://www.facebook.com/ads/library/?q=tenis" --max-records 200`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxRecords, _ := cmd.Flags().GetInt("max-records")
		if maxRecords < 0 {
			return fmt.Errorf("--max-records não pode ser negativo")
		}

		result := newApp().SyncService.FullSync(cmd.Context(), args[0], maxRecords, nil)
		printJSON(cmd, result)

		if !result.Success {
			return fmt.Errorf("sincronização completa falhou: %s", result.Error)
		}
		return nil
	},
}

func init() {
	fullCmd.Flags().Int("max-records", 1000, "Limite de anúncios coletados (0 = sem limite)")
	rootCmd.AddCommand(fullCmd)
}
