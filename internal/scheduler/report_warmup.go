package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
)

// ReportWarmUpJob identifica o job nas rotas de cron
const ReportWarmUpJob = "report-warmup"

// ReportWarmUpConfig representa a configuração do agendador de aquecimento
type ReportWarmUpConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportWarmUpService recalcula periodicamente todas as seleções de relatório
// para manter o cache LRU quente
type ReportWarmUpService struct {
	scheduler  *gocron.Scheduler
	config     ReportWarmUpConfig
	reporter   reporting.Reporter
	baseCtx    context.Context
	mutex      sync.Mutex
	running    bool
	startedAt  time.Time
	finishedAt time.Time
	lastCount  int
	lastErr    error
}

func NewReportWarmUpService(reporter reporting.Reporter, appConfig *config.Config) *ReportWarmUpService {
	warmUpConfig := ReportWarmUpConfig{
		CronSchedule: appConfig.ReportWarmUp.CronSchedule,
		Enabled:      appConfig.ReportWarmUp.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmUpConfig.CronSchedule,
		"enabled":       warmUpConfig.Enabled,
	}).Info("Configuração do agendador de aquecimento de relatórios carregada")

	return &ReportWarmUpService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmUpConfig,
		reporter:  reporter,
		baseCtx:   context.Background(),
	}
}

// Start agenda o job e para o agendador quando ctx é cancelado
func (s *ReportWarmUpService) Start(ctx context.Context) error {
	s.mutex.Lock()
	s.baseCtx = ctx
	s.mutex.Unlock()

	if !s.config.Enabled {
		logrus.Info("Aquecimento de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// run executa um aquecimento. Execuções sobrepostas são ignoradas.
func (s *ReportWarmUpService) run(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Aquecimento de relatórios já em andamento, ignorando")
		return
	}
	s.running = true
	s.startedAt = time.Now()
	s.mutex.Unlock()

	count, err := s.reporter.WarmUp(ctx)

	s.mutex.Lock()
	s.running = false
	s.finishedAt = time.Now()
	s.lastCount = count
	s.lastErr = err
	duration := s.finishedAt.Sub(s.startedAt)
	s.mutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("reports", count).Error("Erro no aquecimento de relatórios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"reports":  count,
	}).Info("Aquecimento de relatórios concluído")
}

// TriggerManualRun dispara um aquecimento fora do agendamento
func (s *ReportWarmUpService) TriggerManualRun() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Aquecimento de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	ctx := s.baseCtx
	s.mutex.Unlock()

	logrus.Info("Iniciando aquecimento manual de relatórios")
	go s.run(ctx)
}

// GetStatus retorna o status atual do job
func (s *ReportWarmUpService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := map[string]any{
		"sync_running":           s.running,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.startedAt,
		"last_sync_completed_at": s.finishedAt,
		"last_sync_reports":      s.lastCount,
	}
	if s.lastErr != nil {
		status["last_sync_error"] = s.lastErr.Error()
	}
	return status
}
