package reporting

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/pkg/utils"
)

// tableDef descreve um group-by: dimensões, medida e operação
type tableDef struct {
	name        string
	title       string
	chart       domain.ChartType
	aggregation domain.Aggregation
	dimensions  []domain.Dimension
	measure     domain.Measure
}

type partition struct {
	key   domain.GroupKey
	sum   float64
	count int
}

func measureValue(m domain.Measure, r domain.SalesRecord) float64 {
	switch m {
	case domain.MeasureAutomobileSales:
		return r.AutomobileSales
	case domain.MeasureAdvertisingExpenditure:
		return r.AdvertisingExpenditure
	}
	return 0
}

func groupKey(dims []domain.Dimension, r domain.SalesRecord) domain.GroupKey {
	var key domain.GroupKey
	for _, d := range dims {
		switch d {
		case domain.DimensionYear:
			key.Year = r.Year
		case domain.DimensionMonth:
			key.Month = r.Month
		case domain.DimensionVehicleType:
			key.VehicleType = r.VehicleType
		case domain.DimensionUnemploymentRate:
			key.UnemploymentRate = r.UnemploymentRate
		}
	}
	return key
}

func groupLabel(dims []domain.Dimension, key domain.GroupKey) string {
	parts := make([]string, 0, len(dims))
	for _, d := range dims {
		switch d {
		case domain.DimensionYear:
			parts = append(parts, strconv.Itoa(key.Year))
		case domain.DimensionMonth:
			parts = append(parts, key.Month.String())
		case domain.DimensionVehicleType:
			parts = append(parts, key.VehicleType)
		case domain.DimensionUnemploymentRate:
			parts = append(parts, utils.FormatDecimal(key.UnemploymentRate))
		}
	}
	return strings.Join(parts, " / ")
}

// aggregate particiona os registros pelas dimensões da tabela e aplica mean ou
// sum em cada partição. As linhas saem na ordem em que a chave aparece pela
// primeira vez.
func aggregate(records []domain.SalesRecord, def tableDef) domain.AggregateTable {
	index := make(map[domain.GroupKey]int)
	partitions := make([]*partition, 0)

	for _, r := range records {
		key := groupKey(def.dimensions, r)
		i, ok := index[key]
		if !ok {
			i = len(partitions)
			index[key] = i
			partitions = append(partitions, &partition{key: key})
		}
		partitions[i].sum += measureValue(def.measure, r)
		partitions[i].count++
	}

	rows := make([]domain.AggregateRow, 0, len(partitions))
	for _, p := range partitions {
		value := p.sum
		if def.aggregation == domain.AggregationMean {
			value = p.sum / float64(p.count)
		}
		rows = append(rows, domain.AggregateRow{
			Key:   p.key,
			Label: groupLabel(def.dimensions, p.key),
			Value: value,
			Count: p.count,
		})
	}

	return domain.AggregateTable{
		Name:        def.name,
		Title:       def.title,
		Chart:       def.chart,
		Aggregation: def.aggregation,
		Dimensions:  def.dimensions,
		Measure:     def.measure,
		Rows:        rows,
	}
}

// sortByMonth reordena as linhas de Jan a Dec
func sortByMonth(table *domain.AggregateTable) {
	sort.SliceStable(table.Rows, func(i, j int) bool {
		return table.Rows[i].Key.Month < table.Rows[j].Key.Month
	})
}

func filter(records []domain.SalesRecord, keep func(domain.SalesRecord) bool) []domain.SalesRecord {
	out := make([]domain.SalesRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
