package adlibraryclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/ads-library-sync/internal/domain"
)

// DefaultQueryMarker identifica as requisições GraphQL que carregam anúncios
const DefaultQueryMarker = "AdsLibraryQuery"

// Client abre sessões de navegador headless (Chrome via Rod) contra a biblioteca de anúncios
type Client struct {
	QueryMarker string
	HTTPClient  *http.Client
}

func NewClient(queryMarker string) adlibrary.Fetcher {
	if queryMarker == "" {
		queryMarker = DefaultQueryMarker
	}
	return &Client{
		QueryMarker: queryMarker,
		HTTPClient:  &http.Client{},
	}
}

// OpenSession inicia (ou conecta a) um Chrome e prepara uma aba com stealth, user agent e viewport
func (c *Client) OpenSession(ctx context.Context, cfg domain.SessionConfig) (adlibrary.Session, error) {
	cfg = cfg.WithDefaults()

	s := &session{
		cfg:         cfg,
		queryMarker: c.QueryMarker,
		httpClient:  c.HTTPClient,
	}

	controlURL := cfg.RemoteURL
	if controlURL == "" {
		l := launcher.New().
			Context(ctx).
			Headless(cfg.Headless()).
			NoSandbox(true).
			Set("disable-dev-shm-usage").
			Set("disable-gpu").
			Set("disable-blink-features", "AutomationControlled").
			Set("window-size", fmt.Sprintf("%d,%d", cfg.ViewportSize.Width, cfg.ViewportSize.Height))

		u, err := l.Launch()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao iniciar o navegador")
		}
		s.launcher = l
		controlURL = u
	}

	b := rod.New().Context(ctx).ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		s.Close()
		return nil, errors.Wrap(err, "erro ao conectar ao navegador")
	}
	// a sessão sobrevive ao contexto de abertura; cada operação recebe o seu
	s.browser = b.Context(context.Background())

	page, err := stealth.Page(s.browser)
	if err != nil {
		s.Close()
		return nil, errors.Wrap(err, "erro ao criar aba")
	}
	s.page = page

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: cfg.UserAgent}); err != nil {
		s.Close()
		return nil, errors.Wrap(err, "erro ao definir user agent")
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             cfg.ViewportSize.Width,
		Height:            cfg.ViewportSize.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		s.Close()
		return nil, errors.Wrap(err, "erro ao definir viewport")
	}

	logrus.WithFields(logrus.Fields{
		"headless": cfg.Headless(),
		"remote":   cfg.RemoteURL != "",
	}).Info("Sessão de coleta iniciada")

	return s, nil
}
