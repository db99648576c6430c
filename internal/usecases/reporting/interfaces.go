package reporting

import (
	"context"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter.go -package=mocks

// Reporter define as operações de relatório expostas para a API e o scheduler
type Reporter interface {
	// GenerateReport calcula (ou lê do cache) as tabelas de uma seleção
	GenerateReport(ctx context.Context, sel domain.ReportSelection) (*domain.Report, error)

	// ReportOptions retorna as opções dos dois seletores do dashboard
	ReportOptions() domain.ReportOptions

	// YearSelectorDisabled informa se o seletor de ano fica desabilitado
	YearSelectorDisabled(kind domain.ReportKind) bool

	// DatasetSummary resume o dataset carregado
	DatasetSummary() domain.DatasetSummary

	// WarmUp pré-calcula todas as seleções válidas
	WarmUp(ctx context.Context) (int, error)
}
