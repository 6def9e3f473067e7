package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidKey(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{name: "Id numérico", key: "123456789", valid: true},
		{name: "Pontos no meio", key: "a..b", valid: true},
		{name: "Placeholder", key: "temp_1700000000000_1", valid: true},
		{name: "Vazio", key: "", valid: false},
		{name: "Ponto", key: ".", valid: false},
		{name: "Dois pontos", key: "..", valid: false},
		{name: "Barra", key: "bad/2", valid: false},
		{name: "Barra invertida", key: `bad\2`, valid: false},
		{name: "Fuga de diretório", key: "../escape", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidKey(tt.key))
		})
	}
}

func TestWriteFileAtomic_UniqueTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page-1", "ad-1.json")

	// um temporário antigo com o nome fixo não atrapalha nem é reaproveitado
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	stale := path + tmpExt
	require.NoError(t, os.WriteFile(stale, []byte("outro processo"), 0o644))

	require.NoError(t, writeFileAtomic(path, []byte(`{"id":"ad-1"}`)))
	require.NoError(t, writeFileAtomic(path, []byte(`{"id":"ad-1","v":2}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"ad-1","v":2}`, string(data))

	staleData, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "outro processo", string(staleData))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, entry := range entries {
		if entry.Name() != "ad-1.json" {
			assert.Equal(t, "ad-1.json"+tmpExt, entry.Name(), "temporário não removido: %s", entry.Name())
		}
	}
}

func TestAdRecordRepository_KeyWithInnerDots(t *testing.T) {
	clock := time.Now()
	repo, _ := newTestAdRepo(t, &clock)

	_, err := repo.Put(sampleAd("a..b", "page-1"))
	require.NoError(t, err)

	got, err := repo.Get("a..b", "page-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	records, err := repo.ListByPage("page-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a..b", records[0].ID)
}
