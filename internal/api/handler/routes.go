package handler

import (
	"net/http"

	"github.com/vfg2006/autosales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
)

func Healthcheck(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(reporter),
		},
	}
}

func Dashboard(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(reporter),
		},
		{
			Path:    "/static/*filepath",
			Method:  http.MethodGet,
			Handler: StaticAssets(),
		},
	}
}

func Reports(reporter reporting.Reporter, renderer ChartRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/options",
			Method:  http.MethodGet,
			Handler: GetReportOptions(reporter),
		},
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: GetReport(reporter),
		},
		{
			Path:    "/v1/reports/charts/:index",
			Method:  http.MethodGet,
			Handler: GetReportChart(reporter, renderer),
		},
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetSummary(reporter),
		},
	}
}

func Exports(reporter reporting.Reporter, exporter exporting.Exporter, store *ExportStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/export",
			Method:  http.MethodGet,
			Handler: ExportReport(reporter, exporter),
		},
		{
			Path:    "/v1/reports/export",
			Method:  http.MethodPost,
			Handler: CreateExport(reporter, exporter, store),
		},
		{
			Path:    "/v1/exports/:token",
			Method:  http.MethodGet,
			Handler: DownloadExport(store),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
