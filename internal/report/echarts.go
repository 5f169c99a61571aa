package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/beam.report/internal/beam"
)

// ConvergencePoint records the error of one grid size in a convergence sweep.
type ConvergencePoint struct {
	GridPoints  int     `json:"grid_points"`
	Spacing     float64 `json:"spacing"`
	MaxAbsError float64 `json:"max_abs_error"`
	RMSError    float64 `json:"rms_error"`
}

// RenderOverlay writes an HTML scatter chart overlaying the discrete
// solution and the analytical reference curve.
func RenderOverlay(w io.Writer, res *beam.Result) error {
	n := res.Grid.Len()
	stride := 1
	if n > maxMarkerPoints {
		stride = n / maxMarkerPoints
	}

	discrete := make([]opts.ScatterData, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		discrete = append(discrete, opts.ScatterData{Value: []interface{}{res.Grid.At(i), res.Deflection[i]}})
	}
	analytic := make([]opts.ScatterData, 0, len(res.Reference))
	for _, s := range res.Reference {
		analytic = append(analytic, opts.ScatterData{Value: []interface{}{s.X, s.U}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Beam Deflection", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Beam deflection",
			Subtitle: fmt.Sprintf("N=%d q=%g max_err=%.3g", n, res.BodyForce, res.Comparison.MaxAbsError),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: 1, Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "u(x)", NameLocation: "middle", NameGap: 45}),
	)

	scatter.AddSeries("finite difference", discrete, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))
	scatter.AddSeries("analytic", analytic, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	return scatter.Render(w)
}

// RenderConvergence writes an HTML line chart of max error against grid
// size for a completed sweep.
func RenderConvergence(w io.Writer, points []ConvergencePoint) error {
	x := make([]string, len(points))
	maxErr := make([]opts.LineData, len(points))
	rmsErr := make([]opts.LineData, len(points))
	for i, p := range points {
		x[i] = fmt.Sprintf("%d", p.GridPoints)
		maxErr[i] = opts.LineData{Value: p.MaxAbsError}
		rmsErr[i] = opts.LineData{Value: p.RMSError}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Convergence", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Finite-difference convergence", Subtitle: "error vs grid points"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "N"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "error", Type: "log"}),
	)

	line.SetXAxis(x)
	line.AddSeries("max abs error", maxErr)
	line.AddSeries("rms error", rmsErr)

	return line.Render(w)
}

// WriteOverlayHTML renders the overlay chart to a file.
func WriteOverlayHTML(path string, res *beam.Result) error {
	return writeHTML(path, func(w io.Writer) error { return RenderOverlay(w, res) })
}

// WriteConvergenceHTML renders the convergence chart to a file.
func WriteConvergenceHTML(path string, points []ConvergencePoint) error {
	return writeHTML(path, func(w io.Writer) error { return RenderConvergence(w, points) })
}

func writeHTML(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
