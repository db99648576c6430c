package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/autosales-dashboard/internal/cache"
	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

// Service gera relatórios sobre um dataset imutável. Os relatórios em cache
// são compartilhados entre requisições e não devem ser alterados.
type Service struct {
	dataset *domain.Dataset
	cache   *cache.LRUCache[*domain.Report]
	years   []int
	now     func() time.Time
}

var _ Reporter = (*Service)(nil)

func NewService(cfg *config.Config, dataset *domain.Dataset) *Service {
	return &Service{
		dataset: dataset,
		cache:   cache.NewLRUCache[*domain.Report](cfg.Report.CacheSize, cfg.Report.CacheTTL),
		years:   cfg.Report.Years(),
		now:     time.Now,
	}
}

func (s *Service) GenerateReport(ctx context.Context, sel domain.ReportSelection) (*domain.Report, error) {
	if s.dataset == nil {
		return nil, ErrDatasetNotLoaded
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"kind": sel.Kind.String(),
	})
	if sel.Year != nil {
		logger = logger.WithField("year", *sel.Year)
	}

	key := sel.CacheKey()
	if report, ok := s.cache.Get(key); ok {
		logger.Debug("Relatório obtido do cache")
		return report, nil
	}

	start := s.now()
	report := &domain.Report{
		Selection:   sel,
		Tables:      Generate(s.dataset.Records(), sel),
		GeneratedAt: start,
	}

	// Seleções incompletas não ocupam espaço no cache
	if !report.Empty() {
		s.cache.Set(key, report)
	}

	logger.WithFields(log.Fields{
		"report_tables":      len(report.Tables),
		"report_duration_ms": s.now().Sub(start).Milliseconds(),
	}).Debug("Relatório gerado")

	return report, nil
}

func (s *Service) ReportOptions() domain.ReportOptions {
	kinds := make([]domain.ReportKindOption, 0, len(domain.ReportKinds))
	for _, k := range domain.ReportKinds {
		kinds = append(kinds, domain.ReportKindOption{
			Value:        k,
			Label:        k.Label(),
			YearDisabled: s.YearSelectorDisabled(k),
		})
	}

	years := make([]int, len(s.years))
	copy(years, s.years)

	return domain.ReportOptions{Kinds: kinds, Years: years}
}

// YearSelectorDisabled é verdadeiro para qualquer tipo diferente de Yearly
func (s *Service) YearSelectorDisabled(kind domain.ReportKind) bool {
	return kind != domain.ReportKindYearly
}

func (s *Service) DatasetSummary() domain.DatasetSummary {
	return s.dataset.Summary()
}

// WarmUp calcula a seleção de recessão e a anual de cada ano configurado,
// retornando quantos relatórios foram gerados
func (s *Service) WarmUp(ctx context.Context) (int, error) {
	if s.dataset == nil {
		return 0, ErrDatasetNotLoaded
	}

	selections := []domain.ReportSelection{{Kind: domain.ReportKindRecessionPeriod}}
	for _, year := range s.years {
		y := year
		selections = append(selections, domain.ReportSelection{Kind: domain.ReportKindYearly, Year: &y})
	}

	count := 0
	for _, sel := range selections {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if _, err := s.GenerateReport(ctx, sel); err != nil {
			return count, err
		}
		count++
	}

	removed := s.cache.CleanExpired()
	log.ForContext(ctx).WithFields(log.Fields{
		"report_count":         count,
		"report_cache_size":    s.cache.Size(),
		"report_cache_removed": removed,
	}).Info("Aquecimento de relatórios concluído")

	return count, nil
}
