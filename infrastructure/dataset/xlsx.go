package dataset

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

type XLSXLoader struct {
	path  string
	sheet string
}

// NewXLSXLoader cria o loader de planilha. sheet vazio usa a primeira aba.
func NewXLSXLoader(path, sheet string) *XLSXLoader {
	return &XLSXLoader{path: path, sheet: sheet}
}

func (l *XLSXLoader) Source() string {
	return sourceName(config.SourceXLSX, l.path)
}

func (l *XLSXLoader) Load(ctx context.Context) ([]domain.SalesRecord, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, errors.Wrap(err, "abrir planilha")
	}
	defer f.Close()

	records, err := readWorkbook(ctx, f, l.sheet)
	if err != nil {
		return nil, errors.Wrap(err, l.path)
	}
	return records, nil
}

// ReadXLSX lê registros de uma planilha recebida por reader
func ReadXLSX(ctx context.Context, r io.Reader, sheet string) ([]domain.SalesRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "abrir planilha")
	}
	defer f.Close()

	return readWorkbook(ctx, f, sheet)
}

func readWorkbook(ctx context.Context, f *excelize.File, sheet string) ([]domain.SalesRecord, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyFile
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "ler aba %s", sheet)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, errors.Wrapf(err, "aba %s", sheet)
	}

	records := make([]domain.SalesRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}

		// Linha 1 é o cabeçalho
		rec, err := cols.parseRow(row, i+2)
		if err != nil {
			return nil, errors.Wrapf(err, "aba %s", sheet)
		}
		records = append(records, rec)
	}

	return records, nil
}
