package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-library-sync/internal/config"
	"github.com/vfg2006/ads-library-sync/internal/domain"
	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing"
)

// IncrementalSyncConfig representa a configuração do agendador de sincronização incremental
type IncrementalSyncConfig struct {
	CronSchedule        string
	PageIDs             []string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// IncrementalSyncService agenda a sincronização incremental das páginas configuradas
type IncrementalSyncService struct {
	scheduler           *gocron.Scheduler
	config              IncrementalSyncConfig
	syncer              syncing.IncrementalSyncer
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         map[string]domain.IncrementalSyncResult
	sleep               func(ctx context.Context, d time.Duration)
}

// NewIncrementalSyncService cria uma nova instância do agendador de sincronização incremental
func NewIncrementalSyncService(syncer syncing.IncrementalSyncer, appConfig *config.Config) *IncrementalSyncService {
	syncConfig := IncrementalSyncConfig{
		CronSchedule:        appConfig.IncrementalSync.CronSchedule,
		PageIDs:             appConfig.IncrementalSync.PageIDs,
		RequestDelaySeconds: appConfig.IncrementalSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.IncrementalSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.IncrementalSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"pages":                 len(syncConfig.PageIDs),
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização incremental carregada")

	return &IncrementalSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		syncer:      syncer,
		ctx:         context.Background(),
		lastResults: make(map[string]domain.IncrementalSyncResult),
		sleep:       sleepWithContext,
	}
}

// Start inicia o agendador
func (s *IncrementalSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização incremental desabilitada por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização incremental")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllPages(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização incremental: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização incremental")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllPages sincroniza todas as páginas configuradas
func (s *IncrementalSyncService) syncAllPages(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização incremental já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(s.config.PageIDs) == 0 {
		logrus.Info("Nenhuma página configurada para sincronização incremental")
		return
	}

	logrus.WithField("pages", len(s.config.PageIDs)).Info("Iniciando sincronização incremental das páginas configuradas")

	s.processPages(ctx, s.config.PageIDs)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"pages":    len(s.config.PageIDs),
	}).Info("Sincronização incremental concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// processPages distribui as páginas entre no máximo MaxConcurrentJobs workers
func (s *IncrementalSyncService) processPages(ctx context.Context, pageIDs []string) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, pageID := range pageIDs {
		if ctx.Err() != nil {
			logrus.Info("Contexto cancelado, interrompendo sincronização incremental")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(pageID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.processPage(ctx, pageID)

			// Aguardar antes da próxima página para não sobrecarregar a biblioteca
			s.sleep(ctx, time.Duration(s.config.RequestDelaySeconds)*time.Second)
		}(pageID)
	}

	wg.Wait()
}

func (s *IncrementalSyncService) processPage(ctx context.Context, pageID string) {
	logrus.WithField("page_id", pageID).Info("Sincronizando página")

	result := s.syncer.IncrementalSync(ctx, pageID, nil)

	s.syncMutex.Lock()
	s.lastResults[pageID] = result
	s.syncMutex.Unlock()

	if !result.Success {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   result.Error,
		}).Error("Erro ao sincronizar página")
	}
}

// TriggerManualSync inicia manualmente uma sincronização incremental
func (s *IncrementalSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização incremental já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização incremental manual")
	go s.syncAllPages(s.ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *IncrementalSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	results := make(map[string]domain.IncrementalSyncResult, len(s.lastResults))
	for pageID, result := range s.lastResults {
		results[pageID] = result
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_pages":             s.config.PageIDs,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           results,
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
