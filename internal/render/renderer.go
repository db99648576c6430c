// Package render desenha as tabelas agregadas como imagens PNG ou SVG
package render

import (
	"bytes"
	"math"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/domain"
)

type Renderer struct {
	width  int
	height int
}

func NewRenderer(cfg config.Chart) *Renderer {
	return &Renderer{width: cfg.Width, height: cfg.Height}
}

// Render desenha a tabela conforme o tipo de gráfico associado a ela
func (r *Renderer) Render(table domain.AggregateTable, format Format) ([]byte, error) {
	if format != FormatPNG && format != FormatSVG {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if len(table.Rows) == 0 {
		return nil, errors.Wrap(ErrEmptyTable, table.Name)
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch table.Chart {
	case domain.ChartTypeLine:
		err = r.line(table, format, &buf)
	case domain.ChartTypeBar:
		err = r.bar(table, format, &buf)
	case domain.ChartTypePie:
		err = r.pie(table, format, &buf)
	case domain.ChartTypeGroupedBar:
		err = r.groupedBar(table, format, &buf)
	default:
		return nil, errors.Wrapf(ErrUnsupportedChart, "%q", table.Chart)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "desenhar %s", table.Name)
	}

	return buf.Bytes(), nil
}

func provider(format Format) chart.RendererProvider {
	if format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// valueRange inclui o zero e deixa folga acima do maior valor. Sem isso
// uma tabela de uma linha gera intervalo de tamanho zero.
func valueRange(rows []domain.AggregateRow) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, row := range rows {
		lo = math.Min(lo, row.Value)
		hi = math.Max(hi, row.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi + (hi-lo)*0.1}
}

// lineTicks rotula cada ponto e acrescenta ticks vazios em -0.5 e n-0.5.
// O go-chart usa os extremos dos ticks como intervalo do eixo X.
func lineTicks(rows []domain.AggregateRow) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(rows)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, row := range rows {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: row.Label})
	}
	return append(ticks, chart.Tick{Value: float64(len(rows)) - 0.5})
}

func (r *Renderer) line(table domain.AggregateTable, format Format, buf *bytes.Buffer) error {
	xs := make([]float64, len(table.Rows))
	ys := make([]float64, len(table.Rows))
	ticks := lineTicks(table.Rows)
	for i, row := range table.Rows {
		xs[i] = float64(i)
		ys[i] = row.Value
	}

	graph := chart.Chart{
		Title:  table.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  axisName(table.Dimensions),
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  measureName(table.Measure),
			Range: valueRange(table.Rows),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    measureName(table.Measure),
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    chart.ColorBlue,
					DotWidth:    3,
				},
			},
		},
	}

	return graph.Render(provider(format), buf)
}

func (r *Renderer) bar(table domain.AggregateTable, format Format, buf *bytes.Buffer) error {
	bars := make([]chart.Value, len(table.Rows))
	for i, row := range table.Rows {
		bars[i] = chart.Value{Label: row.Label, Value: row.Value}
	}

	barWidth := r.width / (2 * len(bars))
	graph := chart.BarChart{
		Title:  table.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: max(barWidth, 4),
		YAxis: chart.YAxis{
			Name:  measureName(table.Measure),
			Range: valueRange(table.Rows),
		},
		Bars: bars,
	}

	return graph.Render(provider(format), buf)
}

// pie descarta fatias sem valor positivo
func (r *Renderer) pie(table domain.AggregateTable, format Format, buf *bytes.Buffer) error {
	values := make([]chart.Value, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row.Value > 0 {
			values = append(values, chart.Value{Label: row.Label, Value: row.Value})
		}
	}
	if len(values) == 0 {
		return errors.Wrap(ErrEmptyTable, "nenhuma fatia positiva")
	}

	graph := chart.PieChart{
		Title:  table.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}

	return graph.Render(provider(format), buf)
}

func axisName(dims []domain.Dimension) string {
	if len(dims) == 0 {
		return ""
	}
	return dimensionName(dims[0])
}

func dimensionName(d domain.Dimension) string {
	switch d {
	case domain.DimensionYear:
		return "Year"
	case domain.DimensionMonth:
		return "Month"
	case domain.DimensionVehicleType:
		return "Vehicle Type"
	case domain.DimensionUnemploymentRate:
		return "Unemployment Rate"
	}
	return string(d)
}

func measureName(m domain.Measure) string {
	switch m {
	case domain.MeasureAutomobileSales:
		return "Automobile Sales"
	case domain.MeasureAdvertisingExpenditure:
		return "Advertising Expenditure"
	}
	return string(m)
}
