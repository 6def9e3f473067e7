package handler

import (
	"net/http"

	"github.com/vfg2006/ads-library-sync/internal/api/handler/router"
	"github.com/vfg2006/ads-library-sync/internal/usecases/syncing"
	"github.com/vfg2006/ads-library-sync/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Replica(service syncing.ReplicaReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pages/:page_id/ads",
			Method:      http.MethodGet,
			Handler:     ListPageAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pages/:page_id/ads/:ad_id",
			Method:      http.MethodGet,
			Handler:     GetAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pages/:page_id/sync-status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/full",
			Method:      http.MethodPost,
			Handler:     RunFullSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/pages/:page_id/sync",
			Method:      http.MethodPost,
			Handler:     RunIncrementalSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
