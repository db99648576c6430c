package render

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/pkg/utils"
)

// pixelsPerInch é o DPI padrão do vgimg
const pixelsPerInch = 96

// groupedBar desenha uma barra por tipo de veículo em cada taxa de desemprego.
// Combinações ausentes ficam com altura zero.
func (r *Renderer) groupedBar(table domain.AggregateTable, format Format, buf *bytes.Buffer) error {
	var (
		vehicles []string
		rates    []float64
	)
	seenVehicle := make(map[string]struct{})
	seenRate := make(map[float64]struct{})
	values := make(map[string]map[float64]float64)

	for _, row := range table.Rows {
		vt, rate := row.Key.VehicleType, row.Key.UnemploymentRate
		if _, ok := seenVehicle[vt]; !ok {
			seenVehicle[vt] = struct{}{}
			vehicles = append(vehicles, vt)
			values[vt] = make(map[float64]float64)
		}
		if _, ok := seenRate[rate]; !ok {
			seenRate[rate] = struct{}{}
			rates = append(rates, rate)
		}
		values[vt][rate] = row.Value
	}
	sort.Float64s(rates)

	p := plot.New()
	p.Title.Text = table.Title
	p.X.Label.Text = dimensionName(domain.DimensionUnemploymentRate)
	p.Y.Label.Text = measureName(table.Measure)
	p.Y.Min = 0
	p.Legend.Top = true

	width := vg.Length(r.width) * vg.Inch / pixelsPerInch
	height := vg.Length(r.height) * vg.Inch / pixelsPerInch
	barWidth := width * 0.7 / vg.Length(len(rates)*len(vehicles))
	if barWidth < vg.Points(1) {
		barWidth = vg.Points(1)
	}

	for i, vt := range vehicles {
		heights := make(plotter.Values, len(rates))
		for j, rate := range rates {
			heights[j] = values[vt][rate]
		}

		bars, err := plotter.NewBarChart(heights, barWidth)
		if err != nil {
			return errors.Wrapf(err, "barras de %s", vt)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(len(vehicles)-1)/2) * barWidth

		p.Add(bars)
		p.Legend.Add(vt, bars)
	}

	labels := make([]string, len(rates))
	for i, rate := range rates {
		labels[i] = utils.FormatDecimal(rate)
	}
	p.NominalX(labels...)

	writer, err := p.WriterTo(width, height, string(format))
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(buf)
	return err
}
