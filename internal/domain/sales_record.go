// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// SalesRecord representa uma linha do histórico de vendas de automóveis
type SalesRecord struct {
	Year                   int     `json:"year"`
	Month                  Month   `json:"month"`
	VehicleType            string  `json:"vehicle_type"`
	AutomobileSales        float64 `json:"automobile_sales"`
	AdvertisingExpenditure float64 `json:"advertising_expenditure"`
	Recession              bool    `json:"recession"`
	UnemploymentRate       float64 `json:"unemployment_rate"`
}

// Colunas esperadas no arquivo de origem
const (
	ColumnYear                   = "Year"
	ColumnMonth                  = "Month"
	ColumnVehicleType            = "Vehicle_Type"
	ColumnAutomobileSales        = "Automobile_Sales"
	ColumnAdvertisingExpenditure = "Advertising_Expenditure"
	ColumnRecession              = "Recession"
	ColumnUnemploymentRate       = "unemployment_rate"
)

// RequiredColumns lista as colunas obrigatórias do dataset
var RequiredColumns = []string{
	ColumnYear,
	ColumnMonth,
	ColumnVehicleType,
	ColumnAutomobileSales,
	ColumnAdvertisingExpenditure,
	ColumnRecession,
	ColumnUnemploymentRate,
}
