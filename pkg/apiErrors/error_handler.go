package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de réplica
	ErrRecordNotFound = "REP_001" // Anúncio não encontrado
	ErrStatusNotFound = "REP_002" // Página nunca sincronizada
	ErrStoreOperation = "REP_003" // Falha de leitura ou escrita na réplica

	// Erros de sincronização
	ErrSyncFailed      = "SYN_001" // Sincronização terminou sem sucesso
	ErrSyncUnavailable = "SYN_002" // Agendador indisponível ou ocupado

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRecordNotFound:        http.StatusNotFound,
	ErrStatusNotFound:        http.StatusNotFound,
	ErrStoreOperation:        http.StatusInternalServerError,
	ErrSyncFailed:            http.StatusBadGateway,
	ErrSyncUnavailable:       http.StatusServiceUnavailable,
	ErrInternalServer:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
