package dataset

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/autosales-dashboard/infrastructure/repository"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

// RepositoryLoader lê o dataset da tabela sales_records
type RepositoryLoader struct {
	driver string
	repo   repository.SalesRecordRepository
}

func NewRepositoryLoader(driver string, repo repository.SalesRecordRepository) *RepositoryLoader {
	return &RepositoryLoader{driver: driver, repo: repo}
}

func (l *RepositoryLoader) Source() string {
	return sourceName(l.driver, "sales_records")
}

func (l *RepositoryLoader) Load(ctx context.Context) ([]domain.SalesRecord, error) {
	records, err := l.repo.ListSalesRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listar registros de vendas")
	}
	return records, nil
}
