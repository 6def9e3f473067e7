package scheduler

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-library-sync/internal/config"
	"github.com/vfg2006/ads-library-sync/internal/domain"
	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing/mocks"
)

func newTestIncrementalSyncService(syncer *mocks.MockIncrementalSyncer, pageIDs []string, concurrency int) *IncrementalSyncService {
	cfg := &config.Config{IncrementalSync: config.IncrementalSync{
		CronSchedule:      "0 */6 * * *",
		PageIDs:           pageIDs,
		MaxConcurrentJobs: concurrency,
		Enabled:           true,
	}}
	service := NewIncrementalSyncService(syncer, cfg)
	service.sleep = func(context.Context, time.Duration) {}
	return service
}

func TestIncrementalSyncService_syncAllPages(t *testing.T) {
	tests := []struct {
		name        string
		pageIDs     []string
		concurrency int
		setup       func(syncer *mocks.MockIncrementalSyncer, visited *[]string, mu *sync.Mutex)
		validate    func(t *testing.T, service *IncrementalSyncService, visited []string)
	}{
		{
			name:        "sincroniza todas as páginas configuradas",
			pageIDs:     []string{"p1", "p2", "p3"},
			concurrency: 2,
			setup: func(syncer *mocks.MockIncrementalSyncer, visited *[]string, mu *sync.Mutex) {
				syncer.EXPECT().IncrementalSync(gomock.Any(), gomock.Any(), gomock.Nil()).
					DoAndReturn(func(_ context.Context, pageID string, _ *domain.SessionConfig) domain.IncrementalSyncResult {
						mu.Lock()
						*visited = append(*visited, pageID)
						mu.Unlock()
						return domain.IncrementalSyncResult{Success: true, PageID: pageID, NewCount: 1}
					}).Times(3)
			},
			validate: func(t *testing.T, service *IncrementalSyncService, visited []string) {
				sort.Strings(visited)
				assert.Equal(t, []string{"p1", "p2", "p3"}, visited)

				status := service.GetStatus()
				results, ok := status["last_results"].(map[string]domain.IncrementalSyncResult)
				require.True(t, ok)
				assert.Len(t, results, 3)
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name:        "falha em uma página não interrompe as demais",
			pageIDs:     []string{"p1", "p2"},
			concurrency: 1,
			setup: func(syncer *mocks.MockIncrementalSyncer, visited *[]string, mu *sync.Mutex) {
				syncer.EXPECT().IncrementalSync(gomock.Any(), "p1", gomock.Nil()).
					Return(domain.IncrementalSyncResult{Success: false, PageID: "p1", Error: "fetch: timeout"})
				syncer.EXPECT().IncrementalSync(gomock.Any(), "p2", gomock.Nil()).
					Return(domain.IncrementalSyncResult{Success: true, PageID: "p2"})
			},
			validate: func(t *testing.T, service *IncrementalSyncService, _ []string) {
				results := service.GetStatus()["last_results"].(map[string]domain.IncrementalSyncResult)
				assert.False(t, results["p1"].Success)
				assert.True(t, results["p2"].Success)
			},
		},
		{
			name:        "sem páginas configuradas não chama o serviço",
			pageIDs:     nil,
			concurrency: 1,
			setup:       func(*mocks.MockIncrementalSyncer, *[]string, *sync.Mutex) {},
			validate: func(t *testing.T, service *IncrementalSyncService, visited []string) {
				assert.Empty(t, visited)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			syncer := mocks.NewMockIncrementalSyncer(ctrl)

			var visited []string
			var mu sync.Mutex
			tt.setup(syncer, &visited, &mu)

			service := newTestIncrementalSyncService(syncer, tt.pageIDs, tt.concurrency)
			service.syncAllPages(context.Background())

			tt.validate(t, service, visited)
		})
	}
}

func TestIncrementalSyncService_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockIncrementalSyncer(ctrl)
	syncer.EXPECT().IncrementalSync(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	service := newTestIncrementalSyncService(syncer, []string{"p1"}, 1)
	service.syncRunning = true

	service.syncAllPages(context.Background())
	assert.False(t, service.TriggerManualSync())
}

func TestIncrementalSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockIncrementalSyncer(ctrl)

	service := newTestIncrementalSyncService(syncer, []string{"p1"}, 1)
	service.config.SyncEnabled = false

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestIncrementalSyncService_StartRejectsInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockIncrementalSyncer(ctrl)

	service := newTestIncrementalSyncService(syncer, []string{"p1"}, 1)
	service.config.CronSchedule = "not a cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
