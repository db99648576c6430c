package render

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestRenderer() *Renderer {
	return NewRenderer(config.Chart{Width: 480, Height: 320})
}

func sampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{Year: 1980, Month: domain.January, VehicleType: "Supperminicar", AutomobileSales: 100, AdvertisingExpenditure: 1000, Recession: true, UnemploymentRate: 5.5},
		{Year: 1980, Month: domain.February, VehicleType: "Sports", AutomobileSales: 40, AdvertisingExpenditure: 700, Recession: true, UnemploymentRate: 6.1},
		{Year: 1981, Month: domain.March, VehicleType: "Supperminicar", AutomobileSales: 300, AdvertisingExpenditure: 2000, Recession: true, UnemploymentRate: 6.1},
		{Year: 1982, Month: domain.March, VehicleType: "Sports", AutomobileSales: 70, AdvertisingExpenditure: 500, Recession: false, UnemploymentRate: 3.0},
	}
}

func TestRenderer_TodasAsTabelas(t *testing.T) {
	year := 1980
	selections := []domain.ReportSelection{
		{Kind: domain.ReportKindRecessionPeriod},
		{Kind: domain.ReportKindYearly, Year: &year},
	}
	renderer := newTestRenderer()

	for _, sel := range selections {
		for _, table := range reporting.Generate(sampleRecords(), sel) {
			t.Run(table.Name+"/png", func(t *testing.T) {
				img, err := renderer.Render(table, FormatPNG)
				require.NoError(t, err)
				assert.True(t, bytes.HasPrefix(img, pngMagic))
			})
			t.Run(table.Name+"/svg", func(t *testing.T) {
				img, err := renderer.Render(table, FormatSVG)
				require.NoError(t, err)
				assert.Contains(t, string(img), "<svg")
			})
		}
	}
}

func TestRenderer_UmaLinha(t *testing.T) {
	table := domain.AggregateTable{
		Name:       "single",
		Title:      "Single",
		Chart:      domain.ChartTypeLine,
		Dimensions: []domain.Dimension{domain.DimensionYear},
		Measure:    domain.MeasureAutomobileSales,
		Rows:       []domain.AggregateRow{{Key: domain.GroupKey{Year: 2019}, Label: "2019", Value: 50, Count: 1}},
	}

	for _, chartType := range []domain.ChartType{domain.ChartTypeLine, domain.ChartTypeBar, domain.ChartTypePie} {
		table.Chart = chartType
		img, err := newTestRenderer().Render(table, FormatPNG)
		require.NoError(t, err, chartType)
		assert.True(t, bytes.HasPrefix(img, pngMagic), chartType)
	}
}

func TestRenderer_Erros(t *testing.T) {
	rows := []domain.AggregateRow{{Label: "Car", Value: 0, Count: 1}}

	tests := []struct {
		name   string
		table  domain.AggregateTable
		format Format
		target error
	}{
		{
			name:   "Tabela vazia",
			table:  domain.AggregateTable{Name: "empty", Chart: domain.ChartTypeLine, Rows: []domain.AggregateRow{}},
			format: FormatPNG,
			target: ErrEmptyTable,
		},
		{
			name:   "Pizza sem valores positivos",
			table:  domain.AggregateTable{Name: "pie", Chart: domain.ChartTypePie, Rows: rows},
			format: FormatPNG,
			target: ErrEmptyTable,
		},
		{
			name:   "Formato desconhecido",
			table:  domain.AggregateTable{Name: "bar", Chart: domain.ChartTypeBar, Rows: rows},
			format: Format("gif"),
			target: ErrUnsupportedFormat,
		},
		{
			name:   "Tipo de gráfico desconhecido",
			table:  domain.AggregateTable{Name: "radar", Chart: domain.ChartType("radar"), Rows: rows},
			format: FormatSVG,
			target: ErrUnsupportedChart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := newTestRenderer().Render(tt.table, tt.format)
			assert.Nil(t, img)
			assert.True(t, errors.Is(err, tt.target), err)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    Format
		wantErr bool
	}{
		{raw: "", want: FormatPNG},
		{raw: "PNG", want: FormatPNG},
		{raw: " svg ", want: FormatSVG},
		{raw: "jpeg", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.raw)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrUnsupportedFormat))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "image/svg+xml", FormatSVG.ContentType())
}

func TestRenderer_RecessaoDeUmAno(t *testing.T) {
	records := []domain.SalesRecord{
		{Year: 2019, Month: domain.January, VehicleType: "Car", AutomobileSales: 100, AdvertisingExpenditure: 10, UnemploymentRate: 5},
		{Year: 2019, Month: domain.January, VehicleType: "Car", AutomobileSales: 50, AdvertisingExpenditure: 5, Recession: true, UnemploymentRate: 8},
	}
	tables := reporting.Generate(records, domain.ReportSelection{Kind: domain.ReportKindRecessionPeriod})
	require.Len(t, tables, 4)

	for _, format := range []Format{FormatPNG, FormatSVG} {
		for _, table := range tables {
			_, err := newTestRenderer().Render(table, format)
			assert.NoError(t, err, "%s %s", table.Name, format)
		}
	}
}

func TestLineTicks(t *testing.T) {
	ticks := lineTicks([]domain.AggregateRow{{Label: "1980"}, {Label: "1981"}})

	require.Len(t, ticks, 4)
	assert.Equal(t, -0.5, ticks[0].Value)
	assert.Empty(t, ticks[0].Label)
	assert.Equal(t, "1981", ticks[2].Label)
	assert.Equal(t, 1.5, ticks[3].Value)
	assert.Empty(t, ticks[3].Label)
}
