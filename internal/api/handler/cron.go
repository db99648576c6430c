package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/autosales-dashboard/internal/scheduler"
	"github.com/vfg2006/autosales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualRun()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente, por tipo
type CronJobServices map[string]CronJob

// CronJobTypeAll dispara todos os jobs registrados
const CronJobTypeAll = "all"

// NewCronJobServices registra o aquecimento de relatórios
func NewCronJobServices(warmUp CronJob) CronJobServices {
	services := CronJobServices{}
	if warmUp != nil {
		services[scheduler.ReportWarmUpJob] = warmUp
	}
	return services
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, job := range services {
				job.TriggerManualRun()
			}
		} else {
			job, ok := services[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-warmup, all", nil)
				return
			}
			job.TriggerManualRun()
		}

		logger.WithField("type", cronType).Info("cron: job iniciada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}, logger)
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status, log.ForContext(r.Context()))
	})
}
