package syncing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary"
	adlibraryMocks "github.com/vfg2006/ads-library-sync/infrastructure/integrator/adlibrary/mocks"
	"github.com/vfg2006/ads-library-sync/internal/domain"
)

type sleepRecorder struct {
	calls []time.Duration
	err   error
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.calls = append(s.calls, d)
	return s.err
}

func testSessionConfig(maxRetries int) domain.SessionConfig {
	return domain.SessionConfig{MaxRetries: maxRetries, DelayBetweenRequestsMs: 100, TimeoutMs: 1000}.WithDefaults()
}

func TestSessionRunner_Fetch(t *testing.T) {
	const url = "https://www.facebook.com/ads/library/?view_all_page_id=p1"
	payloads := []domain.RawPayload{{URL: url, Body: []byte(`{}`)}}

	tests := []struct {
		name       string
		maxRetries int
		sleepErr   error
		setup      func(fetcher *adlibraryMocks.MockFetcher, first, second *adlibraryMocks.MockSession)
		validate   func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration)
	}{
		{
			name:       "sucesso na primeira tentativa",
			maxRetries: 3,
			setup: func(fetcher *adlibraryMocks.MockFetcher, first, _ *adlibraryMocks.MockSession) {
				fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(first, nil).Times(1)
				first.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(payloads, nil).Times(1)
				first.EXPECT().Close().Return(nil).Times(1)
			},
			validate: func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration) {
				require.NoError(t, err)
				assert.Equal(t, payloads, got)
				assert.Empty(t, sleeps)
			},
		},
		{
			name:       "sessão morta é reaberta antes da próxima tentativa",
			maxRetries: 3,
			setup: func(fetcher *adlibraryMocks.MockFetcher, first, second *adlibraryMocks.MockSession) {
				gomock.InOrder(
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(first, nil),
					first.EXPECT().FetchPaginated(gomock.Any(), url, 10).
						Return(nil, fmt.Errorf("erro ao rolar: %w", adlibrary.ErrSessionClosed)),
					first.EXPECT().Close().Return(nil),
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(second, nil),
					second.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(payloads, nil),
					second.EXPECT().Close().Return(nil),
				)
			},
			validate: func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration) {
				require.NoError(t, err)
				assert.Equal(t, payloads, got)
				assert.Equal(t, []time.Duration{100 * time.Millisecond}, sleeps)
			},
		},
		{
			name:       "mensagem de alvo encerrado também reabre a sessão",
			maxRetries: 2,
			setup: func(fetcher *adlibraryMocks.MockFetcher, first, second *adlibraryMocks.MockSession) {
				gomock.InOrder(
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(first, nil),
					first.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(nil, errors.New("Protocol error: Target closed")),
					first.EXPECT().Close().Return(nil),
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(second, nil),
					second.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(payloads, nil),
					second.EXPECT().Close().Return(nil),
				)
			},
			validate: func(t *testing.T, got []domain.RawPayload, err error, _ []time.Duration) {
				require.NoError(t, err)
				assert.Equal(t, payloads, got)
			},
		},
		{
			name:       "maxRetries=2 faz exatamente duas tentativas e devolve o último erro",
			maxRetries: 2,
			setup: func(fetcher *adlibraryMocks.MockFetcher, first, _ *adlibraryMocks.MockSession) {
				fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(first, nil).Times(1)
				gomock.InOrder(
					first.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(payloads, errors.New("timeout 1")),
					first.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(nil, errors.New("timeout 2")),
				)
				first.EXPECT().Close().Return(nil).Times(1)
			},
			validate: func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration) {
				require.Error(t, err)
				assert.Equal(t, "timeout 2", err.Error())
				assert.Nil(t, got)
				assert.Equal(t, []time.Duration{100 * time.Millisecond}, sleeps)
			},
		},
		{
			name:       "espera cresce linearmente com a tentativa",
			maxRetries: 3,
			setup: func(fetcher *adlibraryMocks.MockFetcher, first, _ *adlibraryMocks.MockSession) {
				fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(first, nil).Times(1)
				first.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(nil, errors.New("falhou")).Times(3)
				first.EXPECT().Close().Return(nil).Times(1)
			},
			validate: func(t *testing.T, _ []domain.RawPayload, err error, sleeps []time.Duration) {
				require.Error(t, err)
				assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, sleeps)
			},
		},
		{
			name:       "falha ao abrir sessão conta como tentativa",
			maxRetries: 2,
			setup: func(fetcher *adlibraryMocks.MockFetcher, first, _ *adlibraryMocks.MockSession) {
				gomock.InOrder(
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("chrome não encontrado")),
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(first, nil),
					first.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(payloads, nil),
					first.EXPECT().Close().Return(nil),
				)
			},
			validate: func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration) {
				require.NoError(t, err)
				assert.Equal(t, payloads, got)
				assert.Len(t, sleeps, 1)
			},
		},
		{
			name:       "espera interrompida encerra as tentativas",
			maxRetries: 3,
			sleepErr:   context.Canceled,
			setup: func(fetcher *adlibraryMocks.MockFetcher, first, _ *adlibraryMocks.MockSession) {
				fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(first, nil).Times(1)
				first.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(nil, errors.New("falhou")).Times(1)
				first.EXPECT().Close().Return(nil).Times(1)
			},
			validate: func(t *testing.T, _ []domain.RawPayload, err error, sleeps []time.Duration) {
				require.EqualError(t, err, "falhou")
				assert.Len(t, sleeps, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := adlibraryMocks.NewMockFetcher(ctrl)
			first := adlibraryMocks.NewMockSession(ctrl)
			second := adlibraryMocks.NewMockSession(ctrl)
			tt.setup(fetcher, first, second)

			recorder := &sleepRecorder{err: tt.sleepErr}
			runner := newSessionRunner(fetcher, testSessionConfig(tt.maxRetries), recorder.sleep, logrus.NewEntry(logrus.New()))

			got, err := runner.fetch(context.Background(), url, 10)
			runner.close()

			tt.validate(t, got, err, recorder.calls)
		})
	}
}

func TestIsSessionDead(t *testing.T) {
	assert.True(t, isSessionDead(adlibrary.ErrSessionClosed))
	assert.True(t, isSessionDead(errors.New("Session closed.")))
	assert.True(t, isSessionDead(errors.New("Target closed")))
	assert.True(t, isSessionDead(errors.New("process terminated")))
	assert.False(t, isSessionDead(errors.New("net::ERR_TIMED_OUT")))
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepContext(context.Background(), 0))
}

func TestSessionRunner_OpenSessionTimeout(t *testing.T) {
	const url = "https://www.facebook.com/ads/library/?view_all_page_id=p1"
	payloads := []domain.RawPayload{{URL: url, Body: []byte(`{}`)}}

	blockUntilDeadline := func(ctx context.Context, _ domain.SessionConfig) (adlibrary.Session, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	tests := []struct {
		name     string
		setup    func(fetcher *adlibraryMocks.MockFetcher, session *adlibraryMocks.MockSession)
		validate func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration)
	}{
		{
			name: "abertura lenta conta como tentativa e a seguinte prossegue",
			setup: func(fetcher *adlibraryMocks.MockFetcher, session *adlibraryMocks.MockSession) {
				gomock.InOrder(
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).DoAndReturn(blockUntilDeadline),
					fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(session, nil),
					session.EXPECT().FetchPaginated(gomock.Any(), url, 10).Return(payloads, nil),
					session.EXPECT().Close().Return(nil),
				)
			},
			validate: func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration) {
				require.NoError(t, err)
				assert.Equal(t, payloads, got)
				assert.Len(t, sleeps, 1)
			},
		},
		{
			name: "todas as aberturas expiram",
			setup: func(fetcher *adlibraryMocks.MockFetcher, _ *adlibraryMocks.MockSession) {
				fetcher.EXPECT().OpenSession(gomock.Any(), gomock.Any()).DoAndReturn(blockUntilDeadline).Times(2)
			},
			validate: func(t *testing.T, got []domain.RawPayload, err error, sleeps []time.Duration) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrAttemptTimeout)
				assert.ErrorIs(t, err, context.DeadlineExceeded)
				assert.Nil(t, got)
				assert.Len(t, sleeps, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := adlibraryMocks.NewMockFetcher(ctrl)
			session := adlibraryMocks.NewMockSession(ctrl)
			tt.setup(fetcher, session)

			cfg := domain.SessionConfig{MaxRetries: 2, DelayBetweenRequestsMs: 100, TimeoutMs: 1}.WithDefaults()
			recorder := &sleepRecorder{}
			runner := newSessionRunner(fetcher, cfg, recorder.sleep, logrus.NewEntry(logrus.New()))

			got, err := runner.fetch(context.Background(), url, 10)
			runner.close()

			tt.validate(t, got, err, recorder.calls)
		})
	}
}
