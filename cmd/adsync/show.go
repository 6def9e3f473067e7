package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <page_id> [ad_id]",
	Short: "Exibe anúncios da réplica",
	Example: `  adsync show 123            # todos os anúncios da página
  adsync show 123 --active   # apenas os ativos
  adsync show 123 987        # um anúncio`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := newApp().SyncService
		pageID := args[0]

		if len(args) == 2 {
			record, err := service.GetRecord(args[1], pageID)
			if err != nil {
				return err
			}
			if record == nil {
				return fmt.Errorf("anúncio %s não encontrado na página %s", args[1], pageID)
			}
			printJSON(cmd, record)
			return nil
		}

		records, err := service.GetPageRecords(pageID)
		if err != nil {
			return err
		}

		if activeOnly, _ := cmd.Flags().GetBool("active"); activeOnly {
			active := make([]*domain.AdRecord, 0, len(records))
			for _, record := range records {
				if record.IsActive {
					active = append(active, record)
				}
			}
			records = active
		}

		printJSON(cmd, records)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("active", false, "Lista apenas anúncios ativos")
	rootCmd.AddCommand(showCmd)
}
