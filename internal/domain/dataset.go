package domain

import (
	"sort"
	"time"
)

// Dataset é o conjunto de registros carregado uma única vez na inicialização.
// Nenhum método altera os registros depois de NewDataset.
type Dataset struct {
	records      []SalesRecord
	years        []int
	vehicleTypes []string
	recessions   int
	source       string
	loadedAt     time.Time
}

// DatasetSummary resume o dataset carregado para a API
type DatasetSummary struct {
	Source           string    `json:"source"`
	Records          int       `json:"records"`
	RecessionRecords int       `json:"recession_records"`
	Years            []int     `json:"years"`
	VehicleTypes     []string  `json:"vehicle_types"`
	LoadedAt         time.Time `json:"loaded_at"`
}

func NewDataset(source string, records []SalesRecord) *Dataset {
	owned := make([]SalesRecord, len(records))
	copy(owned, records)

	seenYears := make(map[int]struct{})
	seenTypes := make(map[string]struct{})
	ds := &Dataset{
		records:  owned,
		source:   source,
		loadedAt: time.Now(),
	}

	for _, r := range owned {
		if _, ok := seenYears[r.Year]; !ok {
			seenYears[r.Year] = struct{}{}
			ds.years = append(ds.years, r.Year)
		}
		if _, ok := seenTypes[r.VehicleType]; !ok {
			seenTypes[r.VehicleType] = struct{}{}
			ds.vehicleTypes = append(ds.vehicleTypes, r.VehicleType)
		}
		if r.Recession {
			ds.recessions++
		}
	}
	sort.Ints(ds.years)

	return ds
}

// Records retorna os registros. O slice é compartilhado e não deve ser alterado.
func (d *Dataset) Records() []SalesRecord {
	if d == nil {
		return nil
	}
	return d.records
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

func (d *Dataset) Summary() DatasetSummary {
	if d == nil {
		return DatasetSummary{Years: []int{}, VehicleTypes: []string{}}
	}

	years := append([]int{}, d.years...)
	types := append([]string{}, d.vehicleTypes...)

	return DatasetSummary{
		Source:           d.source,
		Records:          len(d.records),
		RecessionRecords: d.recessions,
		Years:            years,
		VehicleTypes:     types,
		LoadedAt:         d.loadedAt,
	}
}
