// Package dataset carrega o histórico de vendas de arquivos CSV, XLSX ou do banco
package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/autosales-dashboard/infrastructure/repository"
	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

var (
	ErrUnknownSource  = errors.New("origem de dataset desconhecida")
	ErrMissingColumn  = errors.New("coluna obrigatória ausente")
	ErrEmptyFile      = errors.New("arquivo sem cabeçalho")
	ErrRepositoryless = errors.New("origem SQL sem repositório configurado")
)

//go:generate mockgen -source=loader.go -destination=mocks/loader.go -package=mocks
type Loader interface {
	// Load lê todos os registros da origem
	Load(ctx context.Context) ([]domain.SalesRecord, error)
	// Source descreve a origem para logs e para o resumo do dataset
	Source() string
}

// NewLoader escolhe o loader pela origem configurada. repo só é usado nas
// origens postgres e sqlite.
func NewLoader(cfg config.Dataset, repo repository.SalesRecordRepository) (Loader, error) {
	switch cfg.Source {
	case config.SourceCSV:
		return NewCSVLoader(cfg.Path), nil
	case config.SourceXLSX:
		return NewXLSXLoader(cfg.Path, cfg.Sheet), nil
	case config.SourcePostgres, config.SourceSQLite:
		if repo == nil {
			return nil, ErrRepositoryless
		}
		return NewRepositoryLoader(cfg.Source, repo), nil
	}
	return nil, errors.Wrapf(ErrUnknownSource, "DATASET_SOURCE=%q", cfg.Source)
}

// Load executa o loader e monta o dataset imutável usado pelos relatórios
func Load(ctx context.Context, loader Loader) (*domain.Dataset, error) {
	start := time.Now()

	records, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "carregar dataset de %s", loader.Source())
	}

	ds := domain.NewDataset(loader.Source(), records)
	summary := ds.Summary()

	log.ForContext(ctx).WithFields(log.Fields{
		"source":                 loader.Source(),
		"dataset_records":        summary.Records,
		"dataset_recession_rows": summary.RecessionRecords,
		"dataset_years":          len(summary.Years),
		"duration_ms":            time.Since(start).Milliseconds(),
	}).Info("Dataset carregado")

	return ds, nil
}

func sourceName(kind, location string) string {
	return fmt.Sprintf("%s:%s", kind, location)
}
