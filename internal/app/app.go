package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/ads-library-sync/infrastructure/repository"
	"github.com/vfg2006/ads-library-sync/internal/api"
	"github.com/vfg2006/ads-library-sync/internal/config"
	"github.com/vfg2006/ads-library-sync/internal/scheduler"
	"github.com/vfg2006/ads-library-sync/internal/usecases/authenticating"
	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing"
)

// App agrupa os serviços montados a partir da configuração
type App struct {
	Config          *config.Config
	SyncService     *syncing.Service
	Authenticator   authenticating.Authenticator
	IncrementalSync *scheduler.IncrementalSyncService
}

// New monta réplica, cliente da biblioteca de anúncios e serviços.
// Um fetcher nil usa o cliente Rod padrão.
func New(cfg *config.Config, fetcher adlibrary.Fetcher) *App {
	store := repository.NewFileStore(cfg.Storage.DataDir)
	logrus.WithField("data_dir", cfg.Storage.DataDir).Debug("Réplica em disco configurada")

	if fetcher == nil {
		fetcher = adlibraryclient.NewClient(cfg.AdLibrary.QueryMarker)
	}

	syncService := syncing.NewService(
		cfg,
		fetcher,
		repository.NewAdRecordRepository(store),
		repository.NewSyncStatusRepository(store),
	)

	return &App{
		Config:          cfg,
		SyncService:     syncService,
		Authenticator:   authenticating.NewService(cfg),
		IncrementalSync: scheduler.NewIncrementalSyncService(syncService, cfg),
	}
}

// Serve inicia o agendador e o servidor HTTP até o contexto ser cancelado
// ou o processo receber SIGINT/SIGTERM
func (a *App) Serve(ctx context.Context) error {
	if err := a.IncrementalSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização incremental")
	} else {
		logrus.Info("Agendador de sincronização incremental iniciado com sucesso")
	}

	server, err := api.New(a.Config, a.SyncService, a.Authenticator, a.IncrementalSync)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
