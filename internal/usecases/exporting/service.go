// Package exporting gera planilhas XLSX a partir dos relatórios
package exporting

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

const (
	summarySheet = "Resumo"

	// Limite do Excel para nomes de aba
	maxSheetName = 31

	headerRow = 3
)

var ErrNilReport = errors.New("relatório nulo")

//go:generate mockgen -source=service.go -destination=mocks/exporter.go -package=mocks
type Exporter interface {
	// Export monta a planilha com uma aba por tabela e a aba de resumo
	Export(report *domain.Report) ([]byte, error)
	// Filename sugere o nome do arquivo para a seleção
	Filename(sel domain.ReportSelection) string
}

type Service struct{}

var _ Exporter = (*Service)(nil)

func NewService() *Service {
	return &Service{}
}

func (s *Service) Export(report *domain.Report) ([]byte, error) {
	f, err := s.Workbook(report)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "gravar planilha")
	}
	return buf.Bytes(), nil
}

// Workbook monta o arquivo excelize. Quem chama deve fechar o arquivo.
func (s *Service) Workbook(report *domain.Report) (*excelize.File, error) {
	if report == nil {
		return nil, ErrNilReport
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "renomear aba de resumo")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "criar estilo de cabeçalho")
	}

	sheets := make([]string, len(report.Tables))
	for i, table := range report.Tables {
		sheets[i] = sheetName(i, table.Name)
		if err := writeTable(f, sheets[i], table, headerStyle); err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "aba %s", sheets[i])
		}
	}

	if err := writeSummary(f, report, sheets, headerStyle); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "aba de resumo")
	}
	f.SetActiveSheet(0)

	return f, nil
}

func (s *Service) Filename(sel domain.ReportSelection) string {
	if sel.Year != nil {
		return fmt.Sprintf("autosales_%s_%d.xlsx", sel.Kind, *sel.Year)
	}
	return fmt.Sprintf("autosales_%s.xlsx", sel.Kind)
}

func sheetName(index int, name string) string {
	sheet := fmt.Sprintf("%d_%s", index+1, name)
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}
	return sheet
}

func writeSummary(f *excelize.File, report *domain.Report, sheets []string, style int) error {
	year := "-"
	if report.Selection.Year != nil {
		year = fmt.Sprint(*report.Selection.Year)
	}

	rows := [][]interface{}{
		{"Estatística", report.Selection.Kind.Label()},
		{"Ano", year},
		{"Gerado em", report.GeneratedAt.UTC().Format("2006-01-02 15:04:05")},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(summarySheet, cell(1, i+1), &row); err != nil {
			return err
		}
	}

	header := []interface{}{"Aba", "Título", "Gráfico", "Agregação", "Linhas"}
	if err := f.SetSheetRow(summarySheet, cell(1, 5), &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(summarySheet, 5, 5, style); err != nil {
		return err
	}

	for i, table := range report.Tables {
		row := []interface{}{sheets[i], table.Title, string(table.Chart), string(table.Aggregation), len(table.Rows)}
		if err := f.SetSheetRow(summarySheet, cell(1, 6+i), &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 34); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 60)
}

func writeTable(f *excelize.File, sheet string, table domain.AggregateTable, style int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", table.Title); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(table.Dimensions)+2)
	for _, d := range table.Dimensions {
		header = append(header, string(d))
	}
	header = append(header, fmt.Sprintf("%s(%s)", table.Aggregation, table.Measure), "count")

	if err := f.SetSheetRow(sheet, cell(1, headerRow), &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, headerRow, headerRow, style); err != nil {
		return err
	}

	for i, row := range table.Rows {
		values := make([]interface{}, 0, len(header))
		for _, d := range table.Dimensions {
			values = append(values, keyValue(d, row.Key))
		}
		values = append(values, row.Value, row.Count)

		if err := f.SetSheetRow(sheet, cell(1, headerRow+1+i), &values); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 22)
}

func keyValue(d domain.Dimension, key domain.GroupKey) interface{} {
	if d == domain.DimensionMonth {
		return key.Month.String()
	}
	if v := key.Value(d); v != nil {
		return v
	}
	return ""
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
