package reporting

import (
	"fmt"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

// Nomes das tabelas agregadas
const (
	TableYearlyAverageSales                = "yearly_average_sales"
	TableMonthlyTotalSales                 = "monthly_total_sales"
	TableVehicleTypeAverageSales           = "vehicle_type_average_sales"
	TableVehicleTypeAdvertising            = "vehicle_type_advertising_expenditure"
	TableRecessionYearlyAverageSales       = "recession_yearly_average_sales"
	TableRecessionVehicleTypeAverageSales  = "recession_vehicle_type_average_sales"
	TableRecessionVehicleTypeAdvertising   = "recession_vehicle_type_advertising_expenditure"
	TableRecessionUnemploymentAverageSales = "recession_unemployment_average_sales"
)

var (
	byYear         = []domain.Dimension{domain.DimensionYear}
	byMonth        = []domain.Dimension{domain.DimensionMonth}
	byVehicleType  = []domain.Dimension{domain.DimensionVehicleType}
	byUnemployment = []domain.Dimension{domain.DimensionVehicleType, domain.DimensionUnemploymentRate}
)

// Generate calcula as tabelas agregadas da seleção. É uma função pura: não
// altera records e devolve sempre o mesmo resultado para a mesma entrada.
// Seleções incompletas (Yearly sem ano, tipo não definido) geram lista vazia.
func Generate(records []domain.SalesRecord, sel domain.ReportSelection) []domain.AggregateTable {
	switch sel.Kind {
	case domain.ReportKindRecessionPeriod:
		return recessionTables(records)
	case domain.ReportKindYearly:
		if sel.Year == nil {
			return []domain.AggregateTable{}
		}
		return yearlyTables(records, *sel.Year)
	case domain.ReportKindUnset:
		return []domain.AggregateTable{}
	}
	return []domain.AggregateTable{}
}

func recessionTables(records []domain.SalesRecord) []domain.AggregateTable {
	recession := filter(records, func(r domain.SalesRecord) bool { return r.Recession })

	return []domain.AggregateTable{
		aggregate(recession, tableDef{
			name:        TableRecessionYearlyAverageSales,
			title:       "Average Automobile Sales fluctuation over Recession Period",
			chart:       domain.ChartTypeLine,
			aggregation: domain.AggregationMean,
			dimensions:  byYear,
			measure:     domain.MeasureAutomobileSales,
		}),
		aggregate(recession, tableDef{
			name:        TableRecessionVehicleTypeAverageSales,
			title:       "Average Number of Vehicles Sold by Type",
			chart:       domain.ChartTypeBar,
			aggregation: domain.AggregationMean,
			dimensions:  byVehicleType,
			measure:     domain.MeasureAutomobileSales,
		}),
		aggregate(recession, tableDef{
			name:        TableRecessionVehicleTypeAdvertising,
			title:       "Total Advertising Expenditure by Vehicle Type",
			chart:       domain.ChartTypePie,
			aggregation: domain.AggregationSum,
			dimensions:  byVehicleType,
			measure:     domain.MeasureAdvertisingExpenditure,
		}),
		aggregate(recession, tableDef{
			name:        TableRecessionUnemploymentAverageSales,
			title:       "Effect of Unemployment Rate on Vehicle Type and Sales",
			chart:       domain.ChartTypeGroupedBar,
			aggregation: domain.AggregationMean,
			dimensions:  byUnemployment,
			measure:     domain.MeasureAutomobileSales,
		}),
	}
}

func yearlyTables(records []domain.SalesRecord, year int) []domain.AggregateTable {
	ofYear := filter(records, func(r domain.SalesRecord) bool { return r.Year == year })

	// O total mensal usa o dataset inteiro, não apenas o ano selecionado.
	monthly := aggregate(records, tableDef{
		name:        TableMonthlyTotalSales,
		title:       fmt.Sprintf("Total Monthly Automobile Sales in the year %d", year),
		chart:       domain.ChartTypeLine,
		aggregation: domain.AggregationSum,
		dimensions:  byMonth,
		measure:     domain.MeasureAutomobileSales,
	})
	sortByMonth(&monthly)

	return []domain.AggregateTable{
		aggregate(records, tableDef{
			name:        TableYearlyAverageSales,
			title:       "Yearly Average Automobile Sales",
			chart:       domain.ChartTypeLine,
			aggregation: domain.AggregationMean,
			dimensions:  byYear,
			measure:     domain.MeasureAutomobileSales,
		}),
		monthly,
		aggregate(ofYear, tableDef{
			name:        TableVehicleTypeAverageSales,
			title:       fmt.Sprintf("Average Vehicles Sold by Vehicle Type in the year %d", year),
			chart:       domain.ChartTypeBar,
			aggregation: domain.AggregationMean,
			dimensions:  byVehicleType,
			measure:     domain.MeasureAutomobileSales,
		}),
		aggregate(ofYear, tableDef{
			name:        TableVehicleTypeAdvertising,
			title:       fmt.Sprintf("Total Advertising Expenditure by Vehicle Type in %d", year),
			chart:       domain.ChartTypePie,
			aggregation: domain.AggregationSum,
			dimensions:  byVehicleType,
			measure:     domain.MeasureAdvertisingExpenditure,
		}),
	}
}
