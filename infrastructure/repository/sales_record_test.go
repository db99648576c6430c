package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/autosales-dashboard/infrastructure/database"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/migrations"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

func newSQLiteRepository(t *testing.T) SalesRecordRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "autosales.db")
	require.NoError(t, migrations.Run(database.DriverSQLite, path))

	conn, err := sqlite.NewConnection(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewSalesRecordRepository(conn)
}

func TestSalesRecordRepository_InsertAndList(t *testing.T) {
	repo := newSQLiteRepository(t)
	ctx := context.Background()

	records := []domain.SalesRecord{
		{Year: 1980, Month: domain.January, VehicleType: "Supperminicar", AutomobileSales: 3.2, AdvertisingExpenditure: 1558, Recession: true, UnemploymentRate: 5.4},
		{Year: 1981, Month: domain.December, VehicleType: "Sports", AutomobileSales: 20.1, AdvertisingExpenditure: 3000.5, Recession: false, UnemploymentRate: 2.3},
	}

	inserted, err := repo.InsertSalesRecords(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	count, err := repo.CountSalesRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	listed, err := repo.ListSalesRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, listed)
}

func TestSalesRecordRepository_InsertEmLotes(t *testing.T) {
	repo := newSQLiteRepository(t)
	ctx := context.Background()

	records := make([]domain.SalesRecord, insertBatchSize+7)
	for i := range records {
		records[i] = domain.SalesRecord{
			Year:        1980 + i%40,
			Month:       domain.Month(i%12 + 1),
			VehicleType: "Executivecar",
		}
	}

	inserted, err := repo.InsertSalesRecords(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, len(records), inserted)

	count, err := repo.CountSalesRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(records), count)
}

func TestSalesRecordRepository_InsertVazio(t *testing.T) {
	repo := newSQLiteRepository(t)

	inserted, err := repo.InsertSalesRecords(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	listed, err := repo.ListSalesRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSalesRecordRepository_MesInvalidoRejeitadoPeloSchema(t *testing.T) {
	repo := newSQLiteRepository(t)

	_, err := repo.InsertSalesRecords(context.Background(), []domain.SalesRecord{
		{Year: 1980, Month: domain.Month(13), VehicleType: "Sports"},
	})
	assert.Error(t, err)

	count, err := repo.CountSalesRecords(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSalesRecordRepository_ReplaceSalesRecords(t *testing.T) {
	first := []domain.SalesRecord{
		{Year: 1980, Month: domain.January, VehicleType: "Sports", AutomobileSales: 10, UnemploymentRate: 5},
		{Year: 1981, Month: domain.February, VehicleType: "Sports", AutomobileSales: 20, UnemploymentRate: 6},
	}
	second := []domain.SalesRecord{
		{Year: 1990, Month: domain.March, VehicleType: "Executivecar", AutomobileSales: 30, UnemploymentRate: 7},
	}

	tests := []struct {
		name      string
		records   []domain.SalesRecord
		wantErr   bool
		wantCount int
		wantList  []domain.SalesRecord
	}{
		{
			name:      "Substitui sem duplicar",
			records:   second,
			wantCount: 1,
			wantList:  second,
		},
		{
			name:      "Substituição por lista vazia limpa a tabela",
			records:   []domain.SalesRecord{},
			wantCount: 0,
			wantList:  []domain.SalesRecord{},
		},
		{
			name:      "Erro mantém os registros anteriores",
			records:   []domain.SalesRecord{{Year: 1990, Month: domain.Month(13), VehicleType: "Sports"}},
			wantErr:   true,
			wantCount: 2,
			wantList:  first,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newSQLiteRepository(t)
			ctx := context.Background()

			_, err := repo.InsertSalesRecords(ctx, first)
			require.NoError(t, err)

			inserted, err := repo.ReplaceSalesRecords(ctx, tt.records)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.records), inserted)
			}

			count, err := repo.CountSalesRecords(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)

			listed, err := repo.ListSalesRecords(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantList, listed)
		})
	}
}
