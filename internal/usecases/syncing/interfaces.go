package syncing

import (
	"context"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

// FullSyncer executa a coleta completa a partir de uma URL da biblioteca de anúncios
type FullSyncer interface {
	FullSync(ctx context.Context, sourceURL string, maxRecords int, cfg *domain.SessionConfig) domain.FullSyncResult
}

// IncrementalSyncer executa a sincronização incremental de uma página
type IncrementalSyncer interface {
	IncrementalSync(ctx context.Context, pageID string, cfg *domain.SessionConfig) domain.IncrementalSyncResult
}

// ReplicaReader expõe a réplica local sem acionar coleta
type ReplicaReader interface {
	GetRecord(adID, pageID string) (*domain.AdRecord, error)
	GetPageRecords(pageID string) ([]*domain.AdRecord, error)
	GetSyncStatus(pageID string) (*domain.SyncStatus, error)
}

// Syncer combina as operações de sincronização e consulta da réplica
type Syncer interface {
	FullSyncer
	IncrementalSyncer
	ReplicaReader

	// SaveRecords grava um lote de anúncios normalizados na réplica
	SaveRecords(records []*domain.AdRecord) error

	// SyncAds escolhe entre sincronização completa e incremental para o alvo informado
	SyncAds(ctx context.Context, target string, opts SyncOptions) SyncOutcome
}
