package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-library-sync/internal/domain"
)

type AdRecordRepository interface {
	Put(record *domain.AdRecord) (*domain.AdRecord, error)
	Get(adID, pageID string) (*domain.AdRecord, error)
	ListByPage(pageID string) ([]*domain.AdRecord, error)
	Delete(adID, pageID string) error
}

type adRecordRepository struct {
	store *FileStore
	now   func() time.Time
}

func NewAdRecordRepository(store *FileStore) AdRecordRepository {
	return &adRecordRepository{
		store: store,
		now:   time.Now,
	}
}

// Put grava o registro mesclando com a versão existente: todos os campos são
// sobrescritos exceto created_at, que é preservado da primeira versão vista.
func (r *adRecordRepository) Put(record *domain.AdRecord) (*domain.AdRecord, error) {
	if record == nil {
		return nil, newStoreError("put", "", "", errors.New("nil record"))
	}

	key := adKey(record.PageID, record.ID)
	if !ValidKey(record.PageID) || !ValidKey(record.ID) {
		return nil, newStoreError("put", key, "", ErrInvalidKey)
	}

	unlock := r.store.locks.Lock("ad:" + key)
	defer unlock()

	path := r.store.adPath(record.PageID, record.ID)

	existing, err := r.read(path)
	if err != nil {
		return nil, newStoreError("put", key, path, err)
	}

	writeTime := r.now().UTC()
	stored := record.Clone()
	if existing != nil {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = writeTime
	}
	stored.UpdatedAt = writeTime
	stored.SyncedAt = &writeTime

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return nil, newStoreError("put", key, path, fmt.Errorf("erro ao serializar anúncio: %w", err))
	}

	if err := writeFileAtomic(path, data); err != nil {
		return nil, newStoreError("put", key, path, err)
	}

	logrus.WithFields(logrus.Fields{
		"ad_id":   stored.ID,
		"page_id": stored.PageID,
		"path":    path,
		"merged":  existing != nil,
	}).Debug("Anúncio gravado na réplica")

	return stored, nil
}

// Get retorna (nil, nil) quando o anúncio não existe
func (r *adRecordRepository) Get(adID, pageID string) (*domain.AdRecord, error) {
	key := adKey(pageID, adID)
	if !ValidKey(pageID) || !ValidKey(adID) {
		return nil, newStoreError("get", key, "", ErrInvalidKey)
	}

	unlock := r.store.locks.Lock("ad:" + key)
	defer unlock()

	path := r.store.adPath(pageID, adID)
	record, err := r.read(path)
	if err != nil {
		return nil, newStoreError("get", key, path, err)
	}

	return record, nil
}

// ListByPage lista os anúncios de uma página ordenados pelo nome do arquivo.
// Uma página desconhecida retorna uma lista vazia.
func (r *adRecordRepository) ListByPage(pageID string) ([]*domain.AdRecord, error) {
	if !ValidKey(pageID) {
		return nil, newStoreError("list", pageID, "", ErrInvalidKey)
	}

	dir := r.store.pageDir(pageID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*domain.AdRecord{}, nil
		}
		return nil, newStoreError("list", pageID, dir, err)
	}

	records := make([]*domain.AdRecord, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}

		adID := strings.TrimSuffix(name, fileExt)
		record, err := r.Get(adID, pageID)
		if err != nil {
			return nil, err
		}
		// removido entre o ReadDir e a leitura
		if record == nil {
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// Delete remove o anúncio; remover um anúncio inexistente não é erro
func (r *adRecordRepository) Delete(adID, pageID string) error {
	key := adKey(pageID, adID)
	if !ValidKey(pageID) || !ValidKey(adID) {
		return newStoreError("delete", key, "", ErrInvalidKey)
	}

	unlock := r.store.locks.Lock("ad:" + key)
	defer unlock()

	path := r.store.adPath(pageID, adID)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return newStoreError("delete", key, path, err)
	}

	logrus.WithFields(logrus.Fields{
		"ad_id":   adID,
		"page_id": pageID,
	}).Info("Anúncio removido da réplica")

	return nil
}

func (r *adRecordRepository) read(path string) (*domain.AdRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var record domain.AdRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}

	return &record, nil
}

func adKey(pageID, adID string) string {
	return pageID + "/" + adID
}
