package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Month representa um mês do calendário (1 = Jan ... 12 = Dec)
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthLabels = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthLongNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Months retorna os doze meses na ordem canônica
func Months() []Month {
	months := make([]Month, 0, len(monthLabels))
	for m := January; m <= December; m++ {
		months = append(months, m)
	}
	return months
}

// Valid informa se o mês está entre Jan e Dec
func (m Month) Valid() bool {
	return m >= January && m <= December
}

func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthLabels[m-1]
}

// ParseMonth aceita o rótulo curto (Jan), o nome completo (January) ou o número (1-12)
func ParseMonth(raw string) (Month, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return 0, fmt.Errorf("mês vazio")
	}

	if n, err := strconv.Atoi(value); err == nil {
		m := Month(n)
		if !m.Valid() {
			return 0, fmt.Errorf("mês fora do intervalo: %d", n)
		}
		return m, nil
	}

	for i, label := range monthLabels {
		if value == strings.ToLower(label) || value == monthLongNames[i] {
			return Month(i + 1), nil
		}
	}

	return 0, fmt.Errorf("mês inválido: %q", raw)
}

func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("mês inválido: %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
