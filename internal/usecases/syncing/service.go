package syncing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/ads-library-sync/infrastructure/repository"
	"github.com/vfg2006/ads-library-sync/internal/config"
	"github.com/vfg2006/ads-library-sync/internal/domain"
	"github.com/vfg2006/ads-library-sync/pkg/utils"
)

// SyncOptions parametriza o SyncAds
type SyncOptions struct {
	MaxRecords  int
	Incremental bool
	Config      *domain.SessionConfig
}

// SyncOutcome carrega o resultado do modo executado pelo SyncAds
type SyncOutcome struct {
	Mode        string                        `json:"mode"`
	Full        *domain.FullSyncResult        `json:"full,omitempty"`
	Incremental *domain.IncrementalSyncResult `json:"incremental,omitempty"`
}

func (o SyncOutcome) Success() bool {
	if o.Full != nil {
		return o.Full.Success
	}
	return o.Incremental != nil && o.Incremental.Success
}

const (
	ModeFull        = "full"
	ModeIncremental = "incremental"
)

// Service orquestra coleta, extração, normalização, detecção e gravação na réplica
type Service struct {
	fetcher    adlibrary.Fetcher
	adRepo     repository.AdRecordRepository
	statusRepo repository.SyncStatusRepository
	normalizer *Normalizer
	baseURL    string
	session    domain.SessionConfig
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewService cria uma nova instância do serviço de sincronização
func NewService(
	cfg *config.Config,
	fetcher adlibrary.Fetcher,
	adRepo repository.AdRecordRepository,
	statusRepo repository.SyncStatusRepository,
) *Service {
	return &Service{
		fetcher:    fetcher,
		adRepo:     adRepo,
		statusRepo: statusRepo,
		normalizer: NewNormalizer(),
		baseURL:    cfg.AdLibrary.BaseURL,
		session:    cfg.Scraper.SessionConfig(),
		now:        time.Now,
		sleep:      sleepContext,
	}
}

// FullSync coleta a URL informada, normaliza até maxRecords anúncios e grava
// todos na réplica. Falhas nunca escapam: ficam registradas no resultado.
func (s *Service) FullSync(ctx context.Context, sourceURL string, maxRecords int, cfg *domain.SessionConfig) (result domain.FullSyncResult) {
	logger := s.runLogger(logrus.Fields{"url": sourceURL, "max_records": maxRecords})
	runner := newSessionRunner(s.fetcher, s.session.Merge(cfg), s.sleep, logger)

	defer func() {
		runner.close()
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Pânico durante sincronização completa")
			result = domain.FullSyncResult{Success: false, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()

	logger.Info("Iniciando sincronização completa")

	result, err := s.fullSync(ctx, runner, logger, sourceURL, maxRecords)
	if err != nil {
		logger.WithError(err).Error("Sincronização completa falhou")
		return domain.FullSyncResult{Success: false, PageID: result.PageID, Error: err.Error()}
	}

	logger.WithFields(logrus.Fields{
		"page_id":       result.PageID,
		"total_records": result.TotalRecords,
	}).Info("Sincronização completa concluída")

	return result
}

func (s *Service) fullSync(ctx context.Context, runner *sessionRunner, logger *logrus.Entry, sourceURL string, maxRecords int) (domain.FullSyncResult, error) {
	if sourceURL == "" {
		return domain.FullSyncResult{}, ErrSourceURLRequired
	}

	fallbackPageID := adlibrary.PageIDFromURL(sourceURL)

	payloads, err := runner.fetch(ctx, sourceURL, maxRecords)
	if err != nil {
		return domain.FullSyncResult{PageID: fallbackPageID}, newSyncError("fetch", err)
	}

	extraction := Extract(payloads, maxRecords)
	records := s.normalizer.NormalizeBatch(extraction.Records, fallbackPageID)
	records = dropUnstorable(records, &extraction)
	logExtraction(logger, len(payloads), extraction)
	if err := s.SaveRecords(records); err != nil {
		return domain.FullSyncResult{PageID: fallbackPageID}, newSyncError("store", err)
	}

	pageID := fallbackPageID
	if len(records) > 0 {
		pageID = records[0].PageID
	}

	if pageID != "" {
		status := &domain.SyncStatus{
			PageID:     pageID,
			LastSynced: s.now().UTC(),
			TotalAds:   len(records),
		}
		if len(records) > 0 {
			status.LastAdID = records[0].ID
		}
		if err := s.statusRepo.SaveSyncStatus(status); err != nil {
			return domain.FullSyncResult{PageID: pageID}, newSyncError("status", err)
		}
	}

	return domain.FullSyncResult{
		Success:      true,
		TotalRecords: len(records),
		PageID:       pageID,
	}, nil
}

// IncrementalSync compara a página coletada com a réplica, grava novos e
// alterados, desativa os que sumiram e atualiza o status da página.
func (s *Service) IncrementalSync(ctx context.Context, pageID string, cfg *domain.SessionConfig) (result domain.IncrementalSyncResult) {
	logger := s.runLogger(logrus.Fields{"page_id": pageID})
	runner := newSessionRunner(s.fetcher, s.session.Merge(cfg), s.sleep, logger)

	defer func() {
		runner.close()
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Pânico durante sincronização incremental")
			result = domain.IncrementalSyncResult{Success: false, PageID: pageID, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()

	logger.Info("Iniciando sincronização incremental")

	result, err := s.incrementalSync(ctx, runner, logger, pageID)
	if err != nil {
		logger.WithError(err).Error("Sincronização incremental falhou")
		return domain.IncrementalSyncResult{Success: false, PageID: pageID, Error: err.Error()}
	}

	logger.WithFields(logrus.Fields{
		"new":         result.NewCount,
		"updated":     result.UpdatedCount,
		"deactivated": result.DeactivatedCount,
		"total_ads":   result.TotalRecords,
	}).Info("Sincronização incremental concluída")

	return result
}

func (s *Service) incrementalSync(ctx context.Context, runner *sessionRunner, logger *logrus.Entry, pageID string) (domain.IncrementalSyncResult, error) {
	if pageID == "" {
		return domain.IncrementalSyncResult{}, ErrPageIDRequired
	}

	existing, err := s.adRepo.ListByPage(pageID)
	if err != nil {
		return domain.IncrementalSyncResult{}, newSyncError("load", err)
	}

	payloads, err := runner.fetch(ctx, adlibrary.PageURL(s.baseURL, pageID), 0)
	if err != nil {
		return domain.IncrementalSyncResult{}, newSyncError("fetch", err)
	}

	extraction := Extract(payloads, 0)
	fresh := s.normalizer.NormalizeBatch(extraction.Records, pageID)
	for _, record := range fresh {
		record.PageID = pageID
	}
	fresh = dropUnstorable(fresh, &extraction)
	logExtraction(logger, len(payloads), extraction)

	detection := Detect(existing, fresh)
	logger.WithFields(logrus.Fields{
		"existing": len(existing),
		"fetched":  len(fresh),
		"new":      len(detection.New),
		"updated":  len(detection.Updated),
	}).Info("Alterações detectadas")

	if len(fresh) == 0 && len(existing) > 0 {
		logger.Warn("Nenhum anúncio coletado, todos os anúncios ativos da página serão desativados")
	}

	if err := s.SaveRecords(fresh); err != nil {
		return domain.IncrementalSyncResult{}, newSyncError("store", err)
	}

	deactivated := Deactivated(existing, fresh, s.now().UTC())
	if err := s.SaveRecords(deactivated); err != nil {
		return domain.IncrementalSyncResult{}, newSyncError("store", err)
	}

	total := len(existing) + len(detection.New)
	status := &domain.SyncStatus{
		PageID:     pageID,
		LastSynced: s.now().UTC(),
		TotalAds:   total,
	}
	if len(fresh) > 0 {
		status.LastAdID = fresh[0].ID
	}
	if err := s.statusRepo.SaveSyncStatus(status); err != nil {
		return domain.IncrementalSyncResult{}, newSyncError("status", err)
	}

	return domain.IncrementalSyncResult{
		Success:          true,
		PageID:           pageID,
		NewCount:         len(detection.New),
		UpdatedCount:     len(detection.Updated),
		DeactivatedCount: len(deactivated),
		TotalRecords:     total,
	}, nil
}

// SyncAds aceita uma URL da biblioteca ou um page id. O modo incremental só é
// usado quando solicitado e quando há um page id resolvido.
func (s *Service) SyncAds(ctx context.Context, target string, opts SyncOptions) SyncOutcome {
	pageID := adlibrary.PageIDFromURL(target)
	isURL := pageID != "" || looksLikeURL(target)
	if !isURL {
		pageID = target
	}

	if opts.Incremental && pageID != "" {
		result := s.IncrementalSync(ctx, pageID, opts.Config)
		return SyncOutcome{Mode: ModeIncremental, Incremental: &result}
	}

	sourceURL := target
	if !isURL {
		sourceURL = adlibrary.PageURL(s.baseURL, pageID)
	}
	result := s.FullSync(ctx, sourceURL, opts.MaxRecords, opts.Config)
	return SyncOutcome{Mode: ModeFull, Full: &result}
}

// SaveRecords grava os registros em ordem e para no primeiro erro
func (s *Service) SaveRecords(records []*domain.AdRecord) error {
	for _, record := range records {
		if _, err := s.adRepo.Put(record); err != nil {
			return fmt.Errorf("erro ao salvar anúncio %s: %w", record.ID, err)
		}
	}
	return nil
}

func (s *Service) GetRecord(adID, pageID string) (*domain.AdRecord, error) {
	return s.adRepo.Get(adID, pageID)
}

func (s *Service) GetPageRecords(pageID string) ([]*domain.AdRecord, error) {
	return s.adRepo.ListByPage(pageID)
}

func (s *Service) GetSyncStatus(pageID string) (*domain.SyncStatus, error) {
	return s.statusRepo.GetSyncStatus(pageID)
}

func (s *Service) runLogger(fields logrus.Fields) *logrus.Entry {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("%d", s.now().UnixNano())
	}
	return logrus.WithFields(fields).WithField("run_id", runID)
}

// dropUnstorable remove registros cujo id ou page_id não pode virar nome de
// arquivo na réplica e os conta como entradas descartadas
func dropUnstorable(records []*domain.AdRecord, extraction *ExtractionResult) []*domain.AdRecord {
	kept := make([]*domain.AdRecord, 0, len(records))
	for _, record := range records {
		if !repository.ValidKey(record.ID) || !repository.ValidKey(record.PageID) {
			logrus.WithFields(logrus.Fields{
				"ad_id":   record.ID,
				"page_id": record.PageID,
			}).Warn("Anúncio com identificador inválido descartado")
			extraction.SkippedEntries++
			extraction.Accepted--
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

func logExtraction(logger *logrus.Entry, payloads int, extraction ExtractionResult) {
	entry := logger.WithFields(logrus.Fields{
		"payloads":         payloads,
		"accepted":         extraction.Accepted,
		"skipped_entries":  extraction.SkippedEntries,
		"skipped_payloads": extraction.SkippedPayloads,
	})
	if extraction.SkippedEntries > 0 || extraction.SkippedPayloads > 0 {
		entry.Warn("Registros malformados descartados na extração")
		return
	}
	entry.Debug("Extração concluída")
}

func looksLikeURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
