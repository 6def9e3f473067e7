package repository

import (
	"errors"
	"fmt"
	"os"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

type SyncStatusRepository interface {
	SaveSyncStatus(status *domain.SyncStatus) error
	GetSyncStatus(pageID string) (*domain.SyncStatus, error)
}

type syncStatusRepository struct {
	store *FileStore
}

func NewSyncStatusRepository(store *FileStore) SyncStatusRepository {
	return &syncStatusRepository{
		store: store,
	}
}

// SaveSyncStatus sobrescreve integralmente o status da página
func (r *syncStatusRepository) SaveSyncStatus(status *domain.SyncStatus) error {
	if status == nil {
		return newStoreError("put_status", "", "", errors.New("nil sync status"))
	}
	if !ValidKey(status.PageID) {
		return newStoreError("put_status", status.PageID, "", ErrInvalidKey)
	}

	unlock := r.store.locks.Lock("status:" + status.PageID)
	defer unlock()

	path := r.store.statusPath(status.PageID)

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return newStoreError("put_status", status.PageID, path, fmt.Errorf("erro ao serializar status: %w", err))
	}

	if err := writeFileAtomic(path, data); err != nil {
		return newStoreError("put_status", status.PageID, path, err)
	}

	return nil
}

// GetSyncStatus retorna (nil, nil) quando a página nunca foi sincronizada
func (r *syncStatusRepository) GetSyncStatus(pageID string) (*domain.SyncStatus, error) {
	if !ValidKey(pageID) {
		return nil, newStoreError("get_status", pageID, "", ErrInvalidKey)
	}

	unlock := r.store.locks.Lock("status:" + pageID)
	defer unlock()

	path := r.store.statusPath(pageID)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, newStoreError("get_status", pageID, path, err)
	}

	var status domain.SyncStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, newStoreError("get_status", pageID, path, fmt.Errorf("%w: %v", ErrCorruptRecord, err))
	}

	return &status, nil
}
