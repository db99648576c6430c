// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/autosales-dashboard/infrastructure/database"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

const (
	salesRecordTable = "sales_records"

	// insertBatchSize limita a quantidade de linhas por INSERT
	insertBatchSize = 500
)

var salesRecordColumns = []string{
	"year",
	"month",
	"vehicle_type",
	"automobile_sales",
	"advertising_expenditure",
	"recession",
	"unemployment_rate",
}

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record.go -package=mocks
type SalesRecordRepository interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
	InsertSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error)
	ReplaceSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error)
	CountSalesRecords(ctx context.Context) (int, error)
}

type salesRecordRepository struct {
	conn database.Conn
}

func NewSalesRecordRepository(conn database.Conn) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// ListSalesRecords retorna os registros na ordem de inserção
func (r *salesRecordRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(salesRecordColumns...).
		From(salesRecordTable).
		OrderBy("id ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var (
			rec   domain.SalesRecord
			month int
		)
		if err := rows.Scan(
			&rec.Year,
			&month,
			&rec.VehicleType,
			&rec.AutomobileSales,
			&rec.AdvertisingExpenditure,
			&rec.Recession,
			&rec.UnemploymentRate,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler registro de vendas: %w", err)
		}

		rec.Month = domain.Month(month)
		if !rec.Month.Valid() {
			return nil, fmt.Errorf("mês inválido no banco: %d", month)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar registros de vendas: %w", err)
	}

	return records, nil
}

// InsertSalesRecords grava os registros em lotes dentro de uma única transação
func (r *salesRecordRepository) InsertSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		inserted, err = r.insertBatches(ctx, tx, records)
		return err
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// ReplaceSalesRecords apaga a tabela e grava os registros na mesma transação.
// Em caso de erro o conteúdo anterior é mantido.
func (r *salesRecordRepository) ReplaceSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error) {
	sqlQuery, args, err := squirrel.
		Delete(salesRecordTable).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir o delete: %w", err)
	}

	inserted := 0
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao apagar registros de vendas: %w", err)
		}

		var err error
		inserted, err = r.insertBatches(ctx, tx, records)
		return err
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *salesRecordRepository) insertBatches(ctx context.Context, tx *sql.Tx, records []domain.SalesRecord) (int, error) {
	inserted := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))

		builder := squirrel.
			Insert(salesRecordTable).
			Columns(salesRecordColumns...).
			PlaceholderFormat(r.conn.Placeholder())

		for _, rec := range records[start:end] {
			builder = builder.Values(
				rec.Year,
				int(rec.Month),
				rec.VehicleType,
				rec.AutomobileSales,
				rec.AdvertisingExpenditure,
				rec.Recession,
				rec.UnemploymentRate,
			)
		}

		sqlQuery, args, err := builder.ToSql()
		if err != nil {
			return 0, fmt.Errorf("erro ao construir o insert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return 0, fmt.Errorf("erro ao inserir lote %d-%d: %w", start, end, err)
		}
		inserted += end - start
	}
	return inserted, nil
}

func (r *salesRecordRepository) CountSalesRecords(ctx context.Context) (int, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(salesRecordTable).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de vendas: %w", err)
	}

	return count, nil
}
