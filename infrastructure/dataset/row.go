package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

// columnMap guarda a posição de cada coluna obrigatória no cabeçalho
type columnMap map[string]int

// mapColumns localiza as colunas obrigatórias pelo nome, sem diferenciar
// maiúsculas. Colunas extras como Date, GDP e Price são ignoradas.
func mapColumns(header []string) (columnMap, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	cols := make(columnMap, len(domain.RequiredColumns))
	for _, required := range domain.RequiredColumns {
		i, ok := positions[strings.ToLower(required)]
		if !ok {
			return nil, errors.Wrap(ErrMissingColumn, required)
		}
		cols[required] = i
	}
	return cols, nil
}

// parseRow converte uma linha já separada em colunas. line é usado apenas
// nas mensagens de erro.
func (c columnMap) parseRow(row []string, line int) (domain.SalesRecord, error) {
	var (
		rec domain.SalesRecord
		err error
	)

	cell := func(column string) string {
		i := c[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	wrap := func(err error, column string) error {
		return errors.Wrapf(err, "linha %d, coluna %s", line, column)
	}

	if rec.Year, err = parseInt(cell(domain.ColumnYear)); err != nil {
		return rec, wrap(err, domain.ColumnYear)
	}
	if rec.Month, err = domain.ParseMonth(cell(domain.ColumnMonth)); err != nil {
		return rec, wrap(err, domain.ColumnMonth)
	}
	if rec.VehicleType = cell(domain.ColumnVehicleType); rec.VehicleType == "" {
		return rec, wrap(errors.New("tipo de veículo vazio"), domain.ColumnVehicleType)
	}
	if rec.AutomobileSales, err = parseFloat(cell(domain.ColumnAutomobileSales)); err != nil {
		return rec, wrap(err, domain.ColumnAutomobileSales)
	}
	if rec.AdvertisingExpenditure, err = parseFloat(cell(domain.ColumnAdvertisingExpenditure)); err != nil {
		return rec, wrap(err, domain.ColumnAdvertisingExpenditure)
	}
	if rec.Recession, err = parseRecession(cell(domain.ColumnRecession)); err != nil {
		return rec, wrap(err, domain.ColumnRecession)
	}
	if rec.UnemploymentRate, err = parseFloat(cell(domain.ColumnUnemploymentRate)); err != nil {
		return rec, wrap(err, domain.ColumnUnemploymentRate)
	}

	return rec, nil
}

func parseInt(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	// Planilhas costumam gravar inteiros como 1980.0
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, errors.Errorf("inteiro inválido: %q", raw)
	}
	return int(f), nil
}

func parseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Errorf("número inválido: %q", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("número não finito: %q", raw)
	}
	return f, nil
}

// parseRecession aceita 0/1, true/false e 0.0/1.0
func parseRecession(raw string) (bool, error) {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err == nil && (f == 0 || f == 1) {
		return f == 1, nil
	}
	return false, errors.Errorf("indicador de recessão inválido: %q", raw)
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
