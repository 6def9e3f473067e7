package domain

import "time"

const (
	DefaultTimeoutMs              = 30000
	DefaultMaxRetries             = 3
	DefaultDelayBetweenRequestsMs = 1000
	DefaultUserAgent              = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultViewportWidth          = 1920
	DefaultViewportHeight         = 1080
)

type ViewportSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SessionConfig configura a sessão de coleta e a política de retentativas.
// Valores zerados ou omitidos assumem os padrões documentados.
type SessionConfig struct {
	TimeoutMs              int          `json:"timeout,omitempty"`
	MaxRetries             int          `json:"maxRetries,omitempty"`
	DelayBetweenRequestsMs int          `json:"delayBetweenRequests,omitempty"`
	HeadlessMode           *bool        `json:"headlessMode,omitempty"`
	UserAgent              string       `json:"userAgent,omitempty"`
	ViewportSize           ViewportSize `json:"viewportSize"`
	RemoteURL              string       `json:"-"`
}

// WithDefaults retorna uma cópia da configuração com os valores padrão aplicados
func (c SessionConfig) WithDefaults() SessionConfig {
	if c.TimeoutMs <= 0 {
		c.TimeoutMs = DefaultTimeoutMs
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.DelayBetweenRequestsMs <= 0 {
		c.DelayBetweenRequestsMs = DefaultDelayBetweenRequestsMs
	}
	if c.HeadlessMode == nil {
		headless := true
		c.HeadlessMode = &headless
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.ViewportSize.Width <= 0 {
		c.ViewportSize.Width = DefaultViewportWidth
	}
	if c.ViewportSize.Height <= 0 {
		c.ViewportSize.Height = DefaultViewportHeight
	}
	return c
}

func (c SessionConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

func (c SessionConfig) DelayBetweenRequests() time.Duration {
	return time.Duration(c.DelayBetweenRequestsMs) * time.Millisecond
}

func (c SessionConfig) Headless() bool {
	return c.HeadlessMode == nil || *c.HeadlessMode
}

// Merge sobrepõe os campos informados em override aos valores atuais
func (c SessionConfig) Merge(override *SessionConfig) SessionConfig {
	if override == nil {
		return c.WithDefaults()
	}
	if override.TimeoutMs > 0 {
		c.TimeoutMs = override.TimeoutMs
	}
	if override.MaxRetries > 0 {
		c.MaxRetries = override.MaxRetries
	}
	if override.DelayBetweenRequestsMs > 0 {
		c.DelayBetweenRequestsMs = override.DelayBetweenRequestsMs
	}
	if override.HeadlessMode != nil {
		headless := *override.HeadlessMode
		c.HeadlessMode = &headless
	}
	if override.UserAgent != "" {
		c.UserAgent = override.UserAgent
	}
	if override.ViewportSize.Width > 0 {
		c.ViewportSize.Width = override.ViewportSize.Width
	}
	if override.ViewportSize.Height > 0 {
		c.ViewportSize.Height = override.ViewportSize.Height
	}
	if override.RemoteURL != "" {
		c.RemoteURL = override.RemoteURL
	}
	return c.WithDefaults()
}
