package domain

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportKind identifica o tipo de relatório selecionado no dashboard
type ReportKind int

const (
	ReportKindUnset ReportKind = iota
	ReportKindYearly
	ReportKindRecessionPeriod
)

// ReportKinds lista os tipos selecionáveis, na ordem exibida no dropdown
var ReportKinds = []ReportKind{ReportKindYearly, ReportKindRecessionPeriod}

func (k ReportKind) String() string {
	switch k {
	case ReportKindYearly:
		return "yearly"
	case ReportKindRecessionPeriod:
		return "recession"
	case ReportKindUnset:
		return "unset"
	}
	return fmt.Sprintf("ReportKind(%d)", int(k))
}

// Label retorna o texto exibido no seletor de estatísticas
func (k ReportKind) Label() string {
	switch k {
	case ReportKindYearly:
		return "Yearly Statistics"
	case ReportKindRecessionPeriod:
		return "Recession Period Statistics"
	case ReportKindUnset:
		return "Select Statistics"
	}
	return k.String()
}

// ParseReportKind converte o valor recebido da interface. Valores desconhecidos
// resultam em ReportKindUnset.
func ParseReportKind(raw string) ReportKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yearly", "yearly statistics", "yearly-statistics":
		return ReportKindYearly
	case "recession", "recession-period", "recession period statistics", "recession-period-statistics":
		return ReportKindRecessionPeriod
	}
	return ReportKindUnset
}

func (k ReportKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ReportKind) UnmarshalText(text []byte) error {
	*k = ParseReportKind(string(text))
	return nil
}

// ReportSelection são as duas entradas do dashboard: tipo de relatório e ano opcional
type ReportSelection struct {
	Kind ReportKind `json:"kind"`
	Year *int       `json:"year,omitempty"`
}

// CacheKey identifica a seleção de forma estável
func (s ReportSelection) CacheKey() string {
	if s.Year == nil {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s:%d", s.Kind, *s.Year)
}

// ChartType indica como a tabela agregada deve ser desenhada
type ChartType string

const (
	ChartTypeLine       ChartType = "line"
	ChartTypeBar        ChartType = "bar"
	ChartTypePie        ChartType = "pie"
	ChartTypeGroupedBar ChartType = "grouped-bar"
)

// Aggregation é a operação aplicada dentro de cada grupo
type Aggregation string

const (
	AggregationMean Aggregation = "mean"
	AggregationSum  Aggregation = "sum"
)

// Dimension é um campo de agrupamento
type Dimension string

const (
	DimensionYear             Dimension = "year"
	DimensionMonth            Dimension = "month"
	DimensionVehicleType      Dimension = "vehicle_type"
	DimensionUnemploymentRate Dimension = "unemployment_rate"
)

// Measure é o campo numérico agregado
type Measure string

const (
	MeasureAutomobileSales        Measure = "automobile_sales"
	MeasureAdvertisingExpenditure Measure = "advertising_expenditure"
)

// GroupKey guarda os valores das dimensões de um grupo. Apenas os campos das
// dimensões da tabela são preenchidos.
type GroupKey struct {
	Year             int     `json:"year,omitempty"`
	Month            Month   `json:"month,omitempty"`
	VehicleType      string  `json:"vehicle_type,omitempty"`
	UnemploymentRate float64 `json:"unemployment_rate,omitempty"`
}

// Value retorna o valor da dimensão d na chave
func (k GroupKey) Value(d Dimension) any {
	switch d {
	case DimensionYear:
		return k.Year
	case DimensionMonth:
		return k.Month
	case DimensionVehicleType:
		return k.VehicleType
	case DimensionUnemploymentRate:
		return k.UnemploymentRate
	}
	return nil
}

// Fields retorna apenas as dimensões informadas, inclusive as de valor zero
func (k GroupKey) Fields(dims []Dimension) map[string]any {
	fields := make(map[string]any, len(dims))
	for _, d := range dims {
		fields[string(d)] = k.Value(d)
	}
	return fields
}

// AggregateRow é uma linha da tabela agregada
type AggregateRow struct {
	Key   GroupKey `json:"key"`
	Label string   `json:"label"`
	Value float64  `json:"value"`
	Count int      `json:"count"`
}

// AggregateTable é o resultado de um group-by com mean ou sum
type AggregateTable struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Chart       ChartType      `json:"chart"`
	Aggregation Aggregation    `json:"aggregation"`
	Dimensions  []Dimension    `json:"dimensions"`
	Measure     Measure        `json:"measure"`
	Rows        []AggregateRow `json:"rows"`
}

type aggregateRowJSON struct {
	Key   map[string]any `json:"key"`
	Label string         `json:"label"`
	Value float64        `json:"value"`
	Count int            `json:"count"`
}

type aggregateTableJSON struct {
	Name        string             `json:"name"`
	Title       string             `json:"title"`
	Chart       ChartType          `json:"chart"`
	Aggregation Aggregation        `json:"aggregation"`
	Dimensions  []Dimension        `json:"dimensions"`
	Measure     Measure            `json:"measure"`
	Rows        []aggregateRowJSON `json:"rows"`
}

// MarshalJSON escreve em cada chave somente as dimensões da tabela. Uma taxa
// de desemprego 0 continua presente na chave.
func (t AggregateTable) MarshalJSON() ([]byte, error) {
	rows := make([]aggregateRowJSON, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = aggregateRowJSON{
			Key:   row.Key.Fields(t.Dimensions),
			Label: row.Label,
			Value: row.Value,
			Count: row.Count,
		}
	}

	return json.Marshal(aggregateTableJSON{
		Name:        t.Name,
		Title:       t.Title,
		Chart:       t.Chart,
		Aggregation: t.Aggregation,
		Dimensions:  t.Dimensions,
		Measure:     t.Measure,
		Rows:        rows,
	})
}

// Report é o conjunto ordenado de tabelas geradas para uma seleção
type Report struct {
	Selection   ReportSelection  `json:"selection"`
	Tables      []AggregateTable `json:"tables"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Empty informa se a seleção não produziu nenhuma tabela
func (r *Report) Empty() bool {
	return r == nil || len(r.Tables) == 0
}

// ReportKindOption descreve uma opção do seletor de estatísticas
type ReportKindOption struct {
	Value        ReportKind `json:"value"`
	Label        string     `json:"label"`
	YearDisabled bool       `json:"year_disabled"`
}

// ReportOptions alimenta os dois dropdowns do dashboard
type ReportOptions struct {
	Kinds []ReportKindOption `json:"kinds"`
	Years []int              `json:"years"`
}
