package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-library-sync/internal/domain"
)

func TestSyncStatusRepository(t *testing.T) {
	store := NewFileStore(t.TempDir())
	repo := NewSyncStatusRepository(store)

	got, err := repo.GetSyncStatus("page-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	first := &domain.SyncStatus{
		PageID:     "page-1",
		LastSynced: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalAds:   5,
		LastAdID:   "ad-1",
	}
	require.NoError(t, repo.SaveSyncStatus(first))

	second := &domain.SyncStatus{
		PageID:     "page-1",
		LastSynced: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		TotalAds:   7,
	}
	require.NoError(t, repo.SaveSyncStatus(second))

	got, err = repo.GetSyncStatus("page-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.TotalAds)
	assert.Empty(t, got.LastAdID)
	assert.True(t, got.LastSynced.Equal(second.LastSynced))

	_, err = os.Stat(filepath.Join(store.DataDir(), "sync", "page-1.json"))
	assert.NoError(t, err)
}

func TestSyncStatusRepository_CorruptFile(t *testing.T) {
	store := NewFileStore(t.TempDir())
	repo := NewSyncStatusRepository(store)

	path := filepath.Join(store.DataDir(), "sync", "page-1.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("["), 0o644))

	_, err := repo.GetSyncStatus("page-1")
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}
