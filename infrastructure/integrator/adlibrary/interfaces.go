package adlibrary

import (
	"context"
	"errors"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

// ErrSessionClosed indica que a sessão de coleta morreu e precisa ser reaberta
var ErrSessionClosed = errors.New("session closed")

// Fetcher abre sessões de coleta contra a biblioteca de anúncios
type Fetcher interface {
	OpenSession(ctx context.Context, cfg domain.SessionConfig) (Session, error)
}

// Session é um recurso com escopo: aberto uma vez por execução de sincronização e sempre fechado ao final
type Session interface {
	// FetchPaginated percorre a paginação da URL e devolve as respostas brutas.
	// recordCap <= 0 significa sem limite.
	FetchPaginated(ctx context.Context, url string, recordCap int) ([]domain.RawPayload, error)
	Close() error
}
