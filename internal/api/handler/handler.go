package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseSelection lê kind e year da query. O ano é descartado quando o seletor
// de ano está desabilitado para o tipo escolhido.
func parseSelection(r *http.Request, reporter reporting.Reporter) (domain.ReportSelection, error) {
	query := r.URL.Query()
	sel := domain.ReportSelection{Kind: domain.ParseReportKind(query.Get("kind"))}

	rawYear := strings.TrimSpace(query.Get("year"))
	if rawYear == "" || reporter.YearSelectorDisabled(sel.Kind) {
		return sel, nil
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return sel, err
	}
	sel.Year = &year

	return sel, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger log.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

func selectionFields(sel domain.ReportSelection) log.Fields {
	fields := log.Fields{"kind": sel.Kind.String()}
	if sel.Year != nil {
		fields["year"] = *sel.Year
	}
	return fields
}
