package handler

import (
	"net/http"

	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

// GetDatasetSummary retorna o resumo do dataset carregado
func GetDatasetSummary(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reporter.DatasetSummary(), log.ForContext(r.Context()))
	})
}
