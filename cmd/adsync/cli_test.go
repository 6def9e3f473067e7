package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	adlibraryMocks "github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary/mocks"
	"github.com/vfg2006/ads-library-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageURL = "https://www.facebook.com/ads/library/?view_all_page_id=p1"

// resetFlags devolve as flags aos valores padrão entre execuções do rootCmd
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func adsPayload(t *testing.T, ids ...string) domain.RawPayload {
	t.Helper()

	edges := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, map[string]any{"node": map[string]any{
			"ad_archive_id":          id,
			"page_id":                "p1",
			"page_name":              "Página Teste",
			"ad_delivery_start_time": "2024-01-10T00:00:00Z",
			"is_active":              id != "ad-2",
		}})
	}
	body, err := json.Marshal(map[string]any{
		"data": map[string]any{"page": map[string]any{"ads": map[string]any{"edges": edges}}},
	})
	require.NoError(t, err)
	return domain.RawPayload{URL: pageURL, Body: body}
}

func TestCLI_FullThenInspect(t *testing.T) {
	dataDir := t.TempDir()

	ctrl := gomock.NewController(t)
	mockFetcher := adlibraryMocks.NewMockFetcher(ctrl)
	session := adlibraryMocks.NewMockSession(ctrl)
	mockFetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(session, nil)
	session.EXPECT().FetchPaginated(gomock.Any(), pageURL, 5).Return([]domain.RawPayload{adsPayload(t, "ad-1", "ad-2")}, nil)
	session.EXPECT().Close().Return(nil)

	fetcher = mockFetcher
	t.Cleanup(func() { fetcher = nil })

	out, err := run(t, "full", pageURL, "--max-records", "5", "--data-dir", dataDir)
	require.NoError(t, err)

	var result domain.FullSyncResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, "p1", result.PageID)
	assert.FileExists(t, filepath.Join(dataDir, "pages", "p1", "ad-1.json"))

	out, err = run(t, "status", "p1", "--data-dir", dataDir)
	require.NoError(t, err)
	var status domain.SyncStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, 2, status.TotalAds)

	out, err = run(t, "show", "p1", "--active", "--data-dir", dataDir)
	require.NoError(t, err)
	var active []*domain.AdRecord
	require.NoError(t, json.Unmarshal([]byte(out), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "ad-1", active[0].ID)

	out, err = run(t, "show", "p1", "ad-2", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, `"is_active": false`)
}

func TestCLI_FullFailureReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := adlibraryMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError).AnyTimes()

	fetcher = mockFetcher
	t.Cleanup(func() { fetcher = nil })

	out, err := run(t, "full", pageURL, "--max-retries", "1", "--data-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out, `"success": false`)
}

func TestCLI_StatusUnknownPage(t *testing.T) {
	_, err := run(t, "status", "nunca", "--data-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nunca sincronizada")
}

func TestCLI_FullRejectsNegativeCap(t *testing.T) {
	_, err := run(t, "full", pageURL, "--max-records=-1", "--data-dir", t.TempDir())
	require.Error(t, err)
}

func TestCLI_TokenRoles(t *testing.T) {
	t.Setenv("AUTH_SECRET", "segredo-cli")

	out, err := run(t, "token", "painel", "--role", "admin", "--data-dir", t.TempDir())
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = run(t, "token", "painel", "--role", "root", "--data-dir", t.TempDir())
	require.Error(t, err)
}
