package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/internal/render"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/autosales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

// ChartRenderer desenha uma tabela agregada
type ChartRenderer interface {
	Render(table domain.AggregateTable, format render.Format) ([]byte, error)
}

// GetReportOptions retorna as opções dos seletores do dashboard
func GetReportOptions(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reporter.ReportOptions(), log.ForContext(r.Context()))
	})
}

// loadReport resolve a seleção da query e gera o relatório. Em caso de erro a
// resposta já foi escrita e o retorno é nil.
func loadReport(w http.ResponseWriter, r *http.Request, reporter reporting.Reporter) *domain.Report {
	logger := log.ForContext(r.Context())

	sel, err := parseSelection(r, reporter)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use um número inteiro (ex: 1980)", nil)
		return nil
	}

	report, err := reporter.GenerateReport(r.Context(), sel)
	if err != nil {
		logger.WithError(err).WithFields(selectionFields(sel)).Error("reports: erro ao gerar relatório")
		if errors.Is(err, reporting.ErrDatasetNotLoaded) {
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, "Dataset não carregado", nil)
			return nil
		}
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
		return nil
	}

	return report
}

// GetReport retorna as tabelas agregadas da seleção. Seleções incompletas
// retornam lista de tabelas vazia.
func GetReport(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report := loadReport(w, r, reporter)
		if report == nil {
			return
		}

		logger.WithFields(selectionFields(report.Selection)).
			WithField("report_tables", len(report.Tables)).
			Info("reports: relatório gerado")

		writeJSON(w, http.StatusOK, report, logger)
	})
}

// GetReportChart desenha a tabela de índice :index do relatório
func GetReportChart(reporter reporting.Reporter, renderer ChartRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		index, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("index"))
		if err != nil || index < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice de gráfico inválido", nil)
			return
		}

		format, err := render.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedFormat, "Formato inválido. Valores aceitos: png, svg", nil)
			return
		}

		report := loadReport(w, r, reporter)
		if report == nil {
			return
		}
		if report.Empty() {
			apiErrors.WriteError(w, apiErrors.ErrEmptyReport, "Seleção não gera gráficos", nil)
			return
		}
		if index >= len(report.Tables) {
			apiErrors.WriteError(w, apiErrors.ErrChartNotFound, "Gráfico inexistente para a seleção",
				map[string]int{"charts": len(report.Tables)})
			return
		}

		table := report.Tables[index]
		img, err := renderer.Render(table, format)
		if err != nil {
			if errors.Is(err, render.ErrEmptyTable) {
				apiErrors.WriteError(w, apiErrors.ErrChartNotFound, "Tabela sem dados para o gráfico", nil)
				return
			}
			logger.WithError(err).WithField("report_table", table.Name).Error("reports: erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRenderFailure, "Erro ao desenhar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Cache-Control", "private, max-age=300")
		if _, err := w.Write(img); err != nil {
			logger.WithError(err).Warn("reports: erro ao enviar gráfico")
		}
	})
}

func exportReport(w http.ResponseWriter, r *http.Request, reporter reporting.Reporter, exporter exporting.Exporter) (string, []byte, bool) {
	logger := log.ForContext(r.Context())

	report := loadReport(w, r, reporter)
	if report == nil {
		return "", nil, false
	}
	if report.Empty() {
		apiErrors.WriteError(w, apiErrors.ErrEmptyReport, "Seleção não gera relatório", nil)
		return "", nil, false
	}

	data, err := exporter.Export(report)
	if err != nil {
		logger.WithError(err).WithFields(selectionFields(report.Selection)).Error("reports: erro ao gerar planilha")
		apiErrors.WriteError(w, apiErrors.ErrRenderFailure, "Erro ao gerar planilha", nil)
		return "", nil, false
	}

	return exporter.Filename(report.Selection), data, true
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func writeXLSX(w http.ResponseWriter, filename string, data []byte, logger log.Logger) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		logger.WithError(err).Warn("reports: erro ao enviar planilha")
	}
}

// ExportReport devolve a planilha da seleção como anexo
func ExportReport(reporter reporting.Reporter, exporter exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filename, data, ok := exportReport(w, r, reporter, exporter)
		if !ok {
			return
		}
		writeXLSX(w, filename, data, log.ForContext(r.Context()))
	})
}

type exportResponse struct {
	Token       string    `json:"token"`
	DownloadURL string    `json:"download_url"`
	Filename    string    `json:"filename"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CreateExport gera a planilha e devolve um link temporário de download
func CreateExport(reporter reporting.Reporter, exporter exporting.Exporter, store *ExportStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filename, data, ok := exportReport(w, r, reporter, exporter)
		if !ok {
			return
		}

		token, expiresAt, err := store.Put(filename, data)
		if err != nil {
			logger.WithError(err).Error("reports: erro ao gerar token de download")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar download", nil)
			return
		}

		logger.WithFields(log.Fields{
			"report_export": filename,
			"report_bytes":  len(data),
		}).Info("reports: planilha disponível para download")

		writeJSON(w, http.StatusCreated, exportResponse{
			Token:       token,
			DownloadURL: "/v1/exports/" + token,
			Filename:    filename,
			ExpiresAt:   expiresAt,
		}, logger)
	})
}

// DownloadExport entrega uma planilha registrada por CreateExport
func DownloadExport(store *ExportStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		item, ok := store.Get(token)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrExportNotFound, "Download expirado ou inexistente", nil)
			return
		}

		writeXLSX(w, item.Filename, item.Data, log.ForContext(r.Context()))
	})
}
