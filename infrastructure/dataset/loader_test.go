package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/autosales-dashboard/infrastructure/dataset/mocks"
	"github.com/vfg2006/autosales-dashboard/infrastructure/repository"
	repomocks "github.com/vfg2006/autosales-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

const sampleCSV = `Date,Year,Month,Recession,Consumer_Confidence,Seasonality_Weight,Price,Advertising_Expenditure,Competition,GDP,Growth_Rate,unemployment_rate,Automobile_Sales,Vehicle_Type,City
1/31/1980,1980,Jan,1,108.24,0.5,27483.571,1558,7,60.223,0.010,5.4,456,Supperminicar,Georgia
2/29/1980,1980,Feb,1,98.75,0.75,24308.678,3048,4,45.986,-0.309,4.8,555.9,Mediumfamilycar,New York

3/31/1981,1981,Mar,0,107.48,0.2,28238.443,3137,3,35.062,-0.247,3.4,620,Sports,California
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.SalesRecord{
		Year:                   1980,
		Month:                  domain.January,
		VehicleType:            "Supperminicar",
		AutomobileSales:        456,
		AdvertisingExpenditure: 1558,
		Recession:              true,
		UnemploymentRate:       5.4,
	}, records[0])
	assert.Equal(t, domain.February, records[1].Month)
	assert.Equal(t, 555.9, records[1].AutomobileSales)
	assert.False(t, records[2].Recession)
	assert.Equal(t, "Sports", records[2].VehicleType)
}

func TestReadCSV_CabecalhoSemDiferenciarMaiusculas(t *testing.T) {
	input := "\ufeffYEAR,month,VEHICLE_TYPE,automobile_sales,ADVERTISING_EXPENDITURE,recession,Unemployment_Rate\n" +
		"1990,December,Executivecar,12.5,800,true,6\n"

	records, err := ReadCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1990, records[0].Year)
	assert.Equal(t, domain.December, records[0].Month)
	assert.True(t, records[0].Recession)
}

func TestReadCSV_Erros(t *testing.T) {
	header := "Year,Month,Vehicle_Type,Automobile_Sales,Advertising_Expenditure,Recession,unemployment_rate\n"

	tests := []struct {
		name     string
		input    string
		contains []string
		target   error
	}{
		{
			name:   "Arquivo vazio",
			input:  "",
			target: ErrEmptyFile,
		},
		{
			name:     "Coluna obrigatória ausente",
			input:    "Year,Month,Vehicle_Type\n1980,Jan,Sports\n",
			contains: []string{"Automobile_Sales"},
			target:   ErrMissingColumn,
		},
		{
			name:     "Número inválido informa linha e coluna",
			input:    header + "1980,Jan,Sports,10,5,0,3\n1980,Feb,Sports,abc,5,0,3\n",
			contains: []string{"linha 3", "Automobile_Sales"},
		},
		{
			name:     "Mês inválido",
			input:    header + "1980,Foo,Sports,10,5,0,3\n",
			contains: []string{"linha 2", "Month"},
		},
		{
			name:     "Recessão inválida",
			input:    header + "1980,Jan,Sports,10,5,2,3\n",
			contains: []string{"Recession"},
		},
		{
			name:     "Número não finito",
			input:    header + "1980,Jan,Sports,10,5,0,NaN\n",
			contains: []string{"unemployment_rate"},
		},
		{
			name:     "Tipo de veículo vazio",
			input:    header + "1980,Jan,,10,5,0,3\n",
			contains: []string{"Vehicle_Type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			for _, fragment := range tt.contains {
				assert.Contains(t, err.Error(), fragment)
			}
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
		})
	}
}

func TestCSVLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	loader := NewCSVLoader(path)
	assert.Equal(t, "csv:"+path, loader.Source())

	records, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = NewCSVLoader(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
	assert.Error(t, err)
}

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	return f
}

func workbookRows() [][]interface{} {
	return [][]interface{}{
		{"Year", "Month", "Vehicle_Type", "Automobile_Sales", "Advertising_Expenditure", "Recession", "unemployment_rate", "GDP"},
		{1980, "Jan", "Supperminicar", 456.5, 1558, 1, 5.4, 60.2},
		{},
		{1981, "Mar", "Sports", 620, 3137, 0, 3.4, 35.1},
	}
}

func TestReadXLSX(t *testing.T) {
	f := writeWorkbook(t, "Vendas", workbookRows())
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := ReadXLSX(context.Background(), buf, "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.SalesRecord{
		Year:                   1980,
		Month:                  domain.January,
		VehicleType:            "Supperminicar",
		AutomobileSales:        456.5,
		AdvertisingExpenditure: 1558,
		Recession:              true,
		UnemploymentRate:       5.4,
	}, records[0])
	assert.Equal(t, domain.March, records[1].Month)
}

func TestXLSXLoader_Load(t *testing.T) {
	f := writeWorkbook(t, "Sheet1", workbookRows())
	_, err := f.NewSheet("Outra")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))

	records, err := NewXLSXLoader(path, "Sheet1").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Aba vazia não tem cabeçalho
	_, err = NewXLSXLoader(path, "Outra").Load(context.Background())
	assert.True(t, errors.Is(err, ErrEmptyFile))
}

func TestReadXLSX_LinhaInvalida(t *testing.T) {
	rows := workbookRows()
	rows[3][3] = "muitos"
	f := writeWorkbook(t, "Sheet1", rows)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ReadXLSX(context.Background(), buf, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linha 4")
	assert.Contains(t, err.Error(), "Automobile_Sales")
}

func TestNewLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSalesRecordRepository(ctrl)

	tests := []struct {
		name    string
		cfg     config.Dataset
		repo    bool
		want    interface{}
		wantErr error
	}{
		{name: "CSV", cfg: config.Dataset{Source: config.SourceCSV, Path: "a.csv"}, want: &CSVLoader{}},
		{name: "XLSX", cfg: config.Dataset{Source: config.SourceXLSX, Path: "a.xlsx"}, want: &XLSXLoader{}},
		{name: "Postgres", cfg: config.Dataset{Source: config.SourcePostgres}, repo: true, want: &RepositoryLoader{}},
		{name: "SQLite", cfg: config.Dataset{Source: config.SourceSQLite}, repo: true, want: &RepositoryLoader{}},
		{name: "SQL sem repositório", cfg: config.Dataset{Source: config.SourceSQLite}, wantErr: ErrRepositoryless},
		{name: "Origem desconhecida", cfg: config.Dataset{Source: "parquet"}, wantErr: ErrUnknownSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r repository.SalesRecordRepository
			if tt.repo {
				r = repo
			}

			loader, err := NewLoader(tt.cfg, r)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, loader)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, loader)
		})
	}
}

func TestRepositoryLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSalesRecordRepository(ctrl)

	expected := []domain.SalesRecord{{Year: 2000, Month: domain.May, VehicleType: "Sports"}}
	repo.EXPECT().ListSalesRecords(gomock.Any()).Return(expected, nil)
	repo.EXPECT().ListSalesRecords(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	loader := NewRepositoryLoader(config.SourcePostgres, repo)
	assert.Equal(t, "postgres:sales_records", loader.Source())

	records, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, records)

	_, err = loader.Load(context.Background())
	assert.ErrorContains(t, err, "conexão recusada")
}

func TestLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().Source().Return("csv:test.csv").AnyTimes()
	loader.EXPECT().Load(gomock.Any()).Return([]domain.SalesRecord{
		{Year: 1980, Month: domain.January, VehicleType: "Sports", Recession: true},
		{Year: 1981, Month: domain.January, VehicleType: "Sports"},
	}, nil)

	ds, err := Load(context.Background(), loader)
	require.NoError(t, err)

	summary := ds.Summary()
	assert.Equal(t, "csv:test.csv", summary.Source)
	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 1, summary.RecessionRecords)
	assert.Equal(t, []int{1980, 1981}, summary.Years)
}

func TestLoad_Erro(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().Source().Return("xlsx:bad.xlsx").AnyTimes()
	loader.EXPECT().Load(gomock.Any()).Return(nil, ErrEmptyFile)

	ds, err := Load(context.Background(), loader)
	assert.Nil(t, ds)
	assert.True(t, errors.Is(err, ErrEmptyFile))
	assert.Contains(t, err.Error(), "xlsx:bad.xlsx")
}
