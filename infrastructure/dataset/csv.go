package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

type CSVLoader struct {
	path string
}

func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

func (l *CSVLoader) Source() string {
	return sourceName(config.SourceCSV, l.path)
}

func (l *CSVLoader) Load(ctx context.Context) ([]domain.SalesRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrap(err, "abrir CSV")
	}
	defer file.Close()

	records, err := ReadCSV(ctx, file)
	if err != nil {
		return nil, errors.Wrap(err, l.path)
	}
	return records, nil
}

// ReadCSV lê registros de qualquer reader com cabeçalho na primeira linha
func ReadCSV(ctx context.Context, r io.Reader) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, errors.Wrap(err, "ler cabeçalho")
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "ler CSV")
		}

		line, _ := reader.FieldPos(0)
		if isBlank(row) {
			continue
		}

		rec, err := cols.parseRow(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
