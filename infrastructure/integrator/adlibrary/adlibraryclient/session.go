package adlibraryclient

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/ads-library-sync/internal/domain"
)

const (
	maxScrolls          = 50
	maxUnchangedScrolls = 3
)

type session struct {
	cfg         domain.SessionConfig
	queryMarker string
	httpClient  *http.Client

	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page

	mu        sync.Mutex
	closed    bool
	payloads  []domain.RawPayload
	collected int
}

// FetchPaginated navega até a URL, captura as respostas GraphQL de anúncios e
// rola a página até atingir o limite, esgotar o conteúdo ou o número máximo de rolagens.
func (s *session) FetchPaginated(ctx context.Context, url string, recordCap int) ([]domain.RawPayload, error) {
	s.mu.Lock()
	if s.closed || s.page == nil {
		s.mu.Unlock()
		return nil, adlibrary.ErrSessionClosed
	}
	s.payloads = nil
	s.collected = 0
	s.mu.Unlock()

	page := s.page.Context(ctx)

	router := page.HijackRequests()
	router.MustAdd("*graphql*", s.capture)
	go router.Run()
	defer func() {
		if err := router.Stop(); err != nil {
			logrus.WithError(err).Debug("Erro ao encerrar interceptação de requisições")
		}
	}()

	if err := s.navigate(ctx, url); err != nil {
		return nil, err
	}

	// aguarda os primeiros anúncios serem carregados
	if err := wait(ctx, 5*s.cfg.DelayBetweenRequests()); err != nil {
		return nil, err
	}

	var previousHeight, unchanged int
	for scroll := 0; scroll < maxScrolls; scroll++ {
		if recordCap > 0 && s.collectedCount() >= recordCap {
			break
		}

		if _, err := s.eval(ctx, `() => window.scrollBy(0, window.innerHeight)`); err != nil {
			return nil, classify(err, "erro ao rolar a página")
		}

		if err := wait(ctx, 2*s.cfg.DelayBetweenRequests()); err != nil {
			return nil, err
		}

		res, err := s.eval(ctx, `() => document.body.scrollHeight`)
		if err != nil {
			return nil, classify(err, "erro ao medir a página")
		}

		height := res.Value.Int()
		if height == previousHeight {
			unchanged++
			if unchanged >= maxUnchangedScrolls {
				break
			}
			continue
		}
		unchanged = 0
		previousHeight = height
	}

	s.mu.Lock()
	payloads := s.payloads
	collected := s.collected
	s.payloads = nil
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"payloads":  len(payloads),
		"collected": collected,
	}).Info("Coleta de anúncios finalizada")

	return payloads, nil
}

// navigate aplica o timeout da sessão à navegação e ao carregamento
func (s *session) navigate(ctx context.Context, url string) error {
	navCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()

	page := s.page.Context(navCtx)
	if err := page.Navigate(url); err != nil {
		return classify(err, "erro ao navegar até a biblioteca de anúncios")
	}
	if err := page.WaitLoad(); err != nil {
		return classify(err, "erro ao aguardar carregamento da página")
	}
	return nil
}

func (s *session) eval(ctx context.Context, js string) (*proto.RuntimeRemoteObject, error) {
	evalCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()
	return s.page.Context(evalCtx).Eval(js)
}

// capture guarda as respostas GraphQL que contêm anúncios
func (s *session) capture(h *rod.Hijack) {
	if h.Request.Method() != http.MethodPost || !strings.Contains(h.Request.Body(), s.queryMarker) {
		h.ContinueRequest(&proto.FetchContinueRequest{})
		return
	}

	if err := h.LoadResponse(s.httpClient, true); err != nil {
		logrus.WithError(err).Debug("Erro ao carregar resposta GraphQL")
		h.Response.Fail(proto.NetworkErrorReasonFailed)
		return
	}

	body := []byte(h.Response.Body())
	edges := jsoniter.Get(body, "data", "page", "ads", "edges")
	if edges.ValueType() != jsoniter.ArrayValue {
		return
	}

	s.mu.Lock()
	s.payloads = append(s.payloads, domain.RawPayload{
		URL:        h.Request.URL().String(),
		Body:       body,
		ReceivedAt: time.Now(),
	})
	s.collected += edges.Size()
	collected := s.collected
	s.mu.Unlock()

	logrus.WithField("collected", collected).Debug("Anúncios coletados até agora")
}

func (s *session) collectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collected
}

// Close libera aba, navegador e processo local; pode ser chamado mais de uma vez
func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var closeErr error
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			closeErr = err
		}
		s.page = nil
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && closeErr == nil {
			closeErr = err
		}
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
		s.launcher = nil
	}

	logrus.Info("Sessão de coleta encerrada")

	if closeErr != nil {
		return errors.Wrap(closeErr, "erro ao encerrar sessão de coleta")
	}
	return nil
}

// classify marca como ErrSessionClosed os erros que indicam que o navegador morreu
func classify(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Wrap(err, msg)
	}

	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "target closed") ||
		strings.Contains(lower, "session closed") ||
		strings.Contains(lower, "websocket") ||
		strings.Contains(lower, "use of closed network connection") {
		return errors.Wrapf(adlibrary.ErrSessionClosed, "%s: %v", msg, err)
	}

	return errors.Wrap(err, msg)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
