package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	AdLibrary       AdLibrary       `mapstructure:",squash"`
	Scraper         Scraper         `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	IncrementalSync IncrementalSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Storage struct {
	DataDir string `mapstructure:"data_dir"`
}

type AdLibrary struct {
	BaseURL     string `mapstructure:"ad_library_base_url"`
	QueryMarker string `mapstructure:"ad_library_query_marker"`
}

// Scraper guarda os parâmetros padrão das sessões de navegador
type Scraper struct {
	TimeoutMs              int    `mapstructure:"scraper_timeout_ms"`
	MaxRetries             int    `mapstructure:"scraper_max_retries"`
	DelayBetweenRequestsMs int    `mapstructure:"scraper_delay_between_requests_ms"`
	Headless               bool   `mapstructure:"scraper_headless"`
	UserAgent              string `mapstructure:"scraper_user_agent"`
	ViewportWidth          int    `mapstructure:"scraper_viewport_width"`
	ViewportHeight         int    `mapstructure:"scraper_viewport_height"`
	RemoteURL              string `mapstructure:"scraper_remote_url"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type IncrementalSync struct {
	CronSchedule        string   `mapstructure:"incremental_sync_cron"`
	PageIDs             []string `mapstructure:"incremental_sync_page_ids"`
	RequestDelaySeconds int      `mapstructure:"incremental_sync_request_delay_seconds"`
	MaxConcurrentJobs   int      `mapstructure:"incremental_sync_max_concurrent_jobs"`
	Enabled             bool     `mapstructure:"incremental_sync_enabled"`
}

// SessionConfig converte os parâmetros do scraper na configuração de sessão
func (s Scraper) SessionConfig() domain.SessionConfig {
	headless := s.Headless
	cfg := domain.SessionConfig{
		TimeoutMs:              s.TimeoutMs,
		MaxRetries:             s.MaxRetries,
		DelayBetweenRequestsMs: s.DelayBetweenRequestsMs,
		HeadlessMode:           &headless,
		UserAgent:              s.UserAgent,
		ViewportSize: domain.ViewportSize{
			Width:  s.ViewportWidth,
			Height: s.ViewportHeight,
		},
		RemoteURL: s.RemoteURL,
	}
	return cfg.WithDefaults()
}

func (i IncrementalSync) RequestDelay() time.Duration {
	return time.Duration(i.RequestDelaySeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATA_DIR", "data")

	viper.SetDefault("AD_LIBRARY_BASE_URL", "https://www.facebook.com/ads/library/")
	viper.SetDefault("AD_LIBRARY_QUERY_MARKER", "AdsLibraryQuery")

	viper.SetDefault("SCRAPER_TIMEOUT_MS", domain.DefaultTimeoutMs)
	viper.SetDefault("SCRAPER_MAX_RETRIES", domain.DefaultMaxRetries)
	viper.SetDefault("SCRAPER_DELAY_BETWEEN_REQUESTS_MS", domain.DefaultDelayBetweenRequestsMs)
	viper.SetDefault("SCRAPER_HEADLESS", true)
	viper.SetDefault("SCRAPER_USER_AGENT", domain.DefaultUserAgent)
	viper.SetDefault("SCRAPER_VIEWPORT_WIDTH", domain.DefaultViewportWidth)
	viper.SetDefault("SCRAPER_VIEWPORT_HEIGHT", domain.DefaultViewportHeight)
	viper.SetDefault("SCRAPER_REMOTE_URL", "") // ws:// de um Chrome já em execução

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Defaults para sincronização incremental agendada
	viper.SetDefault("INCREMENTAL_SYNC_CRON", "0 */6 * * *")      // A cada 6 horas
	viper.SetDefault("INCREMENTAL_SYNC_PAGE_IDS", "")             // Lista separada por vírgula
	viper.SetDefault("INCREMENTAL_SYNC_REQUEST_DELAY_SECONDS", 5) // 5 segundos entre páginas
	viper.SetDefault("INCREMENTAL_SYNC_MAX_CONCURRENT_JOBS", 1)   // Um navegador por vez
	viper.SetDefault("INCREMENTAL_SYNC_ENABLED", false)           // Habilitar sincronização agendada

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.IncrementalSync.PageIDs = compact(config.IncrementalSync.PageIDs)

	return config, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
