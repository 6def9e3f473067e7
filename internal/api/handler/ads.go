package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-library-sync/internal/domain"
	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing"
	"github.com/vfg2006/ads-library-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-library-sync/pkg/log"
)

type PageAdsResponse struct {
	PageID string             `json:"page_id"`
	Total  int                `json:"total"`
	Ads    []*domain.AdRecord `json:"ads"`
}

// ListPageAds devolve os anúncios da réplica de uma página.
// Aceita ?active=true|false para filtrar pelo estado.
func ListPageAds(service syncing.ReplicaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID := httprouter.ParamsFromContext(r.Context()).ByName("page_id")

		var activeFilter *bool
		if raw := r.URL.Query().Get("active"); raw != "" {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro active deve ser true ou false", nil)
				return
			}
			activeFilter = &active
		}

		records, err := service.GetPageRecords(pageID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar anúncios da página")
			writeStoreError(w, err)
			return
		}

		ads := make([]*domain.AdRecord, 0, len(records))
		for _, record := range records {
			if activeFilter == nil || record.IsActive == *activeFilter {
				ads = append(ads, record)
			}
		}

		writeJSON(w, http.StatusOK, PageAdsResponse{PageID: pageID, Total: len(ads), Ads: ads})
	}
}

func GetAd(service syncing.ReplicaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		record, err := service.GetRecord(params.ByName("ad_id"), params.ByName("page_id"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar anúncio")
			writeStoreError(w, err)
			return
		}
		if record == nil {
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Anúncio não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func GetSyncStatus(service syncing.ReplicaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID := httprouter.ParamsFromContext(r.Context()).ByName("page_id")

		status, err := service.GetSyncStatus(pageID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar status de sincronização")
			writeStoreError(w, err)
			return
		}
		if status == nil {
			apiErrors.WriteError(w, apiErrors.ErrStatusNotFound, "Página nunca sincronizada", nil)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}
