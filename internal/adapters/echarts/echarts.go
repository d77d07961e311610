// Package echarts renders plot series into self-contained interactive HTML
// documents using go-echarts.
package echarts

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/okian/leaguelogic/internal/domain/plot"
)

const (
	defaultHeight     = "360px"
	defaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"
)

// Rendered holds one HTML document per chart, in display order.
type Rendered struct {
	Accuracy []byte
	ROI      []byte
	Split    []byte
}

// Renderer turns chart data into HTML.
type Renderer struct {
	height     string
	assetsHost string
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{height: defaultHeight, assetsHost: defaultAssetsHost}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders all three charts: accuracy, then ROI, then split.
func (r *Renderer) Render(set plot.Set) (Rendered, error) {
	var out Rendered
	var err error
	if out.Accuracy, err = r.doc("accuracy", r.accuracy(set.Accuracy)); err != nil {
		return Rendered{}, err
	}
	if out.ROI, err = r.doc("roi", r.roi(set.ROI)); err != nil {
		return Rendered{}, err
	}
	if out.Split, err = r.doc("split", r.split(set.Split)); err != nil {
		return Rendered{}, err
	}
	return out, nil
}

type renderable interface {
	Render(w io.Writer) error
}

func (r *Renderer) doc(name string, c renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s chart: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) init(title, id string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  title,
			Width:      "100%",
			Height:     r.height,
			AssetsHost: r.assetsHost,
			ChartID:    id,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func (r *Renderer) accuracy(a plot.Accuracy) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(r.init(a.Title, "accuracy"),
		charts.WithXAxisOpts(opts.XAxis{Name: plot.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: plot.AccuracyLabel, Min: a.YMin, Max: a.YMax}),
	)...)

	x := make([]int, len(a.Points))
	data := make([]opts.LineData, len(a.Points))
	for i, p := range a.Points {
		x[i] = p.Index
		data[i] = opts.LineData{Value: p.Value}
	}
	line.SetXAxis(x).AddSeries("Accuracy", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)
	return line
}

func (r *Renderer) roi(ro plot.ROI) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(r.init(ro.Title, "roi"),
		charts.WithXAxisOpts(opts.XAxis{Name: plot.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: plot.ROILabel}),
	)...)

	x := make([]int, len(ro.Bars))
	data := make([]opts.BarData, len(ro.Bars))
	for i, p := range ro.Bars {
		x[i] = p.Index
		data[i] = opts.BarData{Value: p.Value}
	}
	bar.SetXAxis(x).AddSeries("ROI", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: plot.ColorROI}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "break-even", YAxis: ro.Baseline}),
	)
	return bar
}

func (r *Renderer) split(s plot.Split) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(r.init(s.Title, "split")...)

	data := make([]opts.PieData, len(s.Slices))
	for i, sl := range s.Slices {
		data[i] = opts.PieData{
			Name:      sl.Label,
			Value:     sl.Value,
			ItemStyle: &opts.ItemStyle{Color: sl.Color},
		}
	}
	pie.AddSeries("Outcome", data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "75%"}}),
	)
	return pie
}
