package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-library-sync/internal/config"
	"github.com/vfg2006/ads-library-sync/internal/domain"
	"github.com/vfg2006/ads-library-sync/internal/usecases/authenticating"
	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing/mocks"
)

func newTestServer(t *testing.T) (*Server, *mocks.MockSyncer, authenticating.Authenticator) {
	t.Helper()

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Auth:   config.Auth{Secret: "segredo-de-teste"},
	}
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)
	auth := authenticating.NewService(cfg)

	srv, err := New(cfg, syncer, auth, nil)
	require.NoError(t, err)

	return srv, syncer, auth
}

func TestServer_Healthcheck(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestServer_RequiresToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pages/p1/ads", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ReaderCanListAds(t *testing.T) {
	srv, syncer, auth := newTestServer(t)

	token, err := auth.IssueToken("painel", domain.RoleReader, time.Hour)
	require.NoError(t, err)

	syncer.EXPECT().GetPageRecords("p1").Return([]*domain.AdRecord{{ID: "a", PageID: "p1", IsActive: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/pages/p1/ads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestServer_UnknownCronType(t *testing.T) {
	srv, _, auth := newTestServer(t)

	token, err := auth.IssueToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/incremental", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
