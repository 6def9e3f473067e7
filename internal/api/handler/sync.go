package handler

import (
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-library-sync/internal/domain"
	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing"
	"github.com/vfg2006/ads-library-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-library-sync/pkg/log"
)

type FullSyncRequest struct {
	URL        string                `json:"url"`
	MaxRecords int                   `json:"max_records"`
	Config     *domain.SessionConfig `json:"config,omitempty"`
}

type IncrementalSyncRequest struct {
	Config *domain.SessionConfig `json:"config,omitempty"`
}

// RunFullSync executa a sincronização completa de forma síncrona
func RunFullSync(service syncing.FullSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FullSyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		if req.URL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo url é obrigatório", nil)
			return
		}
		if req.MaxRecords < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "max_records não pode ser negativo", nil)
			return
		}

		result := service.FullSync(r.Context(), req.URL, req.MaxRecords, req.Config)
		if !result.Success {
			log.ForContext(r.Context()).WithField("error", result.Error).Warn("Sincronização completa sem sucesso")
			apiErrors.WriteError(w, apiErrors.ErrSyncFailed, result.Error, result)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RunIncrementalSync executa a sincronização incremental de uma página.
// O corpo é opcional.
func RunIncrementalSync(service syncing.IncrementalSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID := httprouter.ParamsFromContext(r.Context()).ByName("page_id")

		var req IncrementalSyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result := service.IncrementalSync(r.Context(), pageID, req.Config)
		if !result.Success {
			log.ForContext(r.Context()).WithField("error", result.Error).Warn("Sincronização incremental sem sucesso")
			apiErrors.WriteError(w, apiErrors.ErrSyncFailed, result.Error, result)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
