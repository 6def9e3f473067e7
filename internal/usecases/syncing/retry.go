package syncing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/ads-library-sync/internal/domain"
)

var sessionDeadMarkers = []string{"session closed", "target closed", "terminated"}

// sessionRunner mantém uma sessão aberta entre tentativas e a reabre quando
// ela morre. Cada execução de sincronização usa o seu próprio runner.
type sessionRunner struct {
	fetcher adlibrary.Fetcher
	cfg     domain.SessionConfig
	session adlibrary.Session
	sleep   func(ctx context.Context, d time.Duration) error
	logger  *logrus.Entry
}

func newSessionRunner(fetcher adlibrary.Fetcher, cfg domain.SessionConfig, sleep func(context.Context, time.Duration) error, logger *logrus.Entry) *sessionRunner {
	if sleep == nil {
		sleep = sleepContext
	}
	return &sessionRunner{
		fetcher: fetcher,
		cfg:     cfg.WithDefaults(),
		sleep:   sleep,
		logger:  logger,
	}
}

// fetch tenta a coleta paginada até MaxRetries vezes, esperando attempt*delay
// entre tentativas. Sem sucesso, devolve o erro da última tentativa.
func (r *sessionRunner) fetch(ctx context.Context, url string, recordCap int) ([]domain.RawPayload, error) {
	lastErr := ErrNoAttempts

	for attempt := 1; attempt <= r.cfg.MaxRetries; attempt++ {
		payloads, err := r.attempt(ctx, url, recordCap)
		if err == nil {
			if attempt > 1 {
				r.logger.WithField("attempt", attempt).Info("Coleta concluída após retentativa")
			}
			return payloads, nil
		}
		lastErr = err

		r.logger.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": r.cfg.MaxRetries,
			"error":        err.Error(),
		}).Warn("Tentativa de coleta falhou")

		if attempt == r.cfg.MaxRetries || ctx.Err() != nil {
			break
		}

		if isSessionDead(err) {
			r.logger.Warn("Sessão encerrada inesperadamente, será reaberta")
			r.close()
		}

		if err := r.sleep(ctx, time.Duration(attempt)*r.cfg.DelayBetweenRequests()); err != nil {
			break
		}
	}

	return nil, lastErr
}

func (r *sessionRunner) attempt(ctx context.Context, url string, recordCap int) ([]domain.RawPayload, error) {
	if r.session == nil {
		openCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout())
		session, err := r.fetcher.OpenSession(openCtx, r.cfg)
		timedOut := errors.Is(openCtx.Err(), context.DeadlineExceeded)
		cancel()
		if err != nil {
			if timedOut {
				return nil, fmt.Errorf("%w ao abrir sessão após %s: %w", ErrAttemptTimeout, r.cfg.Timeout(), err)
			}
			return nil, err
		}
		r.session = session
	}

	return r.session.FetchPaginated(ctx, url, recordCap)
}

// close libera a sessão atual. Pode ser chamado mais de uma vez.
func (r *sessionRunner) close() {
	if r.session == nil {
		return
	}
	if err := r.session.Close(); err != nil {
		r.logger.WithError(err).Warn("Erro ao encerrar sessão de coleta")
	}
	r.session = nil
}

func isSessionDead(err error) bool {
	if errors.Is(err, adlibrary.ErrSessionClosed) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range sessionDeadMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
