package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-library-sync/infrastructure/repository"
	"github.com/vfg2006/ads-library-sync/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever resposta")
	}
}

// writeStoreError traduz erros da réplica para o código de API correspondente
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrInvalidKey) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador inválido", nil)
		return
	}

	var storeErr *repository.StoreError
	if errors.As(err, &storeErr) {
		apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao acessar a réplica", map[string]string{
			"op":  storeErr.Op,
			"key": storeErr.Key,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
