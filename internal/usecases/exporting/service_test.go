package exporting

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
)

func recessionReport() *domain.Report {
	records := []domain.SalesRecord{
		{Year: 2019, Month: domain.January, VehicleType: "Car", AutomobileSales: 100, AdvertisingExpenditure: 10, Recession: false, UnemploymentRate: 5},
		{Year: 2019, Month: domain.January, VehicleType: "Car", AutomobileSales: 50, AdvertisingExpenditure: 5, Recession: true, UnemploymentRate: 8},
	}
	sel := domain.ReportSelection{Kind: domain.ReportKindRecessionPeriod}

	return &domain.Report{
		Selection:   sel,
		Tables:      reporting.Generate(records, sel),
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_Export(t *testing.T) {
	data, err := NewService().Export(recessionReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 5)
	assert.Equal(t, "Resumo", sheets[0])
	for _, sheet := range sheets {
		assert.LessOrEqual(t, len(sheet), maxSheetName)
	}

	kind, err := f.GetCellValue("Resumo", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Recession Period Statistics", kind)

	year, err := f.GetCellValue("Resumo", "B2")
	require.NoError(t, err)
	assert.Equal(t, "-", year)

	// Tabela de desemprego: vehicle_type, unemployment_rate, mean, count
	rows, err := f.GetRows(sheets[4])
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Effect of Unemployment Rate on Vehicle Type and Sales", rows[0][0])
	assert.Equal(t, []string{"vehicle_type", "unemployment_rate", "mean(automobile_sales)", "count"}, rows[2])
	assert.Equal(t, []string{"Car", "8", "50", "1"}, rows[3])
}

func TestService_Export_Yearly(t *testing.T) {
	records := []domain.SalesRecord{
		{Year: 2000, Month: domain.March, VehicleType: "Sports", AutomobileSales: 10, AdvertisingExpenditure: 1},
		{Year: 2000, Month: domain.January, VehicleType: "Sports", AutomobileSales: 30, AdvertisingExpenditure: 2},
	}
	year := 2000
	sel := domain.ReportSelection{Kind: domain.ReportKindYearly, Year: &year}
	report := &domain.Report{Selection: sel, Tables: reporting.Generate(records, sel)}

	svc := NewService()
	f, err := svc.Workbook(report)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName(1, reporting.TableMonthlyTotalSales))
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Jan", "30", "1"}, rows[3])
	assert.Equal(t, []string{"Mar", "10", "1"}, rows[4])

	assert.Equal(t, "autosales_yearly_2000.xlsx", svc.Filename(sel))
	assert.Equal(t, "autosales_recession.xlsx", svc.Filename(domain.ReportSelection{Kind: domain.ReportKindRecessionPeriod}))
}

func TestService_Export_RelatorioVazio(t *testing.T) {
	data, err := NewService().Export(&domain.Report{Tables: []domain.AggregateTable{}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Resumo"}, f.GetSheetList())

	_, err = NewService().Export(nil)
	assert.ErrorIs(t, err, ErrNilReport)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "1_yearly", sheetName(0, "yearly"))
	assert.Equal(t, "4_recession_unemployment_averag", sheetName(3, reporting.TableRecessionUnemploymentAverageSales))
}
