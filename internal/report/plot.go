// Package report renders the solved deflection profile and convergence
// results as PNG plots, standalone HTML charts, and debug HTTP endpoints.
package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/beam.report/internal/beam"
)

// maxMarkerPoints caps the discrete-solution scatter series so plots of
// dense grids stay readable.
const maxMarkerPoints = 200

var (
	discreteColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	analyticColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// SavePNG writes an overlay plot of the discrete solution (markers) and the
// analytical reference curve (line) to the given path.
func SavePNG(path string, res *beam.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Beam deflection (N=%d, q=%g)", res.Grid.Len(), res.BodyForce)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u(x)"

	n := res.Grid.Len()
	stride := 1
	if n > maxMarkerPoints {
		stride = n / maxMarkerPoints
	}
	discrete := make(plotter.XYs, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		discrete = append(discrete, plotter.XY{X: res.Grid.At(i), Y: res.Deflection[i]})
	}

	scatter, err := plotter.NewScatter(discrete)
	if err != nil {
		return fmt.Errorf("failed to build scatter series: %w", err)
	}
	scatter.GlyphStyle.Color = discreteColor
	scatter.GlyphStyle.Radius = vg.Points(2)

	analytic := make(plotter.XYs, len(res.Reference))
	for i, s := range res.Reference {
		analytic[i] = plotter.XY{X: s.X, Y: s.U}
	}
	line, err := plotter.NewLine(analytic)
	if err != nil {
		return fmt.Errorf("failed to build reference line: %w", err)
	}
	line.Color = analyticColor
	line.Width = vg.Points(1)

	p.Add(scatter, line)
	p.Legend.Add("finite difference", scatter)
	p.Legend.Add("analytic", line)
	p.Legend.Top = false

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
