package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

func HealthcheckHandler(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":          "ok",
			"time":            time.Now(),
			"dataset_records": reporter.DatasetSummary().Records,
		}, log.ForContext(r.Context()))
	})
}
