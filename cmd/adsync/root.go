package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/ads-library-sync/internal/app"
	"github.com/vfg2006/ads-library-sync/internal/config"
	"github.com/vfg2006/ads-library-sync/pkg/utils"
)

var (
	appConfig *config.Config

	// fetcher substitui o cliente Rod; nil usa o padrão
	fetcher adlibrary.Fetcher
)

var rootCmd = &cobra.Command{
	Use:   "adsync",
	Short: "Espelho local da biblioteca de anúncios",
	Long: `adsync - Sincroniza anúncios da biblioteca de anúncios da Meta para uma réplica em disco.

A réplica fica em <data-dir>/pages/<page_id>/<ad_id>.json e o status de cada
página em <data-dir>/sync/<page_id>.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("erro ao carregar configuração: %w", err)
		}

		level, err := logrus.ParseLevel(cfg.App.LogLevel)
		if err != nil {
			logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)

		appConfig = cfg
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", "data", "Diretório da réplica")
	flags.String("log-level", "info", "Nível de log (debug, info, warn, error)")
	flags.Int("timeout-ms", 0, "Timeout de navegação em milissegundos")
	flags.Int("max-retries", 0, "Número máximo de tentativas por coleta")
	flags.Bool("headless", true, "Executa o navegador sem interface")
	flags.String("remote-url", "", "Endereço ws:// de um Chrome já em execução")

	bindFlag("data_dir", "data-dir")
	bindFlag("log_level", "log-level")
	bindFlag("scraper_timeout_ms", "timeout-ms")
	bindFlag("scraper_max_retries", "max-retries")
	bindFlag("scraper_headless", "headless")
	bindFlag("scraper_remote_url", "remote-url")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func newApp() *app.App {
	return app.New(appConfig, fetcher)
}

func printJSON(cmd *cobra.Command, v any) {
	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(v))
}
