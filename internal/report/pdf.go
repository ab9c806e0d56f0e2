package report

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/aerolab/foilbench/internal/aero"
	apperrors "github.com/aerolab/foilbench/internal/errors"
	"github.com/aerolab/foilbench/internal/format"
)

// Page size of the report document.
const (
	pageWidth  = 14 * vg.Inch
	pageHeight = 10 * vg.Inch
)

// WritePDF renders the comparison report: a title page, lift coefficient
// vs. angle of attack, lift-to-drag ratio vs. angle of attack, the drag
// polar (lift vs. drag), and the best-airfoil summary table, one page each.
func WritePDF(path string, table aero.Table, best aero.BestChoice, reynolds float64) error {
	pages := []func() (*plot.Plot, error){
		func() (*plot.Plot, error) { return titlePage(table, reynolds) },
		func() (*plot.Plot, error) {
			return curvesPage(table, "Lift Coefficient vs. Angle of Attack",
				"Angle of Attack (degrees)", "Lift Coefficient",
				func(r aero.Result) (float64, float64) { return r.Alpha, r.CL })
		},
		func() (*plot.Plot, error) {
			return curvesPage(table, "Lift-to-Drag Ratio vs. Angle of Attack",
				"Angle of Attack (degrees)", "Lift-to-Drag Ratio",
				func(r aero.Result) (float64, float64) { return r.Alpha, r.LiftDrag() })
		},
		func() (*plot.Plot, error) {
			return curvesPage(table, "Lift Coefficient vs. Drag Coefficient",
				"Drag Coefficient (C_D)", "Lift Coefficient (C_L)",
				func(r aero.Result) (float64, float64) { return r.CD, r.CL })
		},
		func() (*plot.Plot, error) { return bestTablePage(best) },
	}

	canvas := vgpdf.New(pageWidth, pageHeight)
	for i, build := range pages {
		p, err := build()
		if err != nil {
			return apperrors.WrapError(err, "building report page %d", i+1)
		}
		if i > 0 {
			canvas.NextPage()
		}
		p.Draw(draw.New(canvas))
	}

	f, err := os.Create(path)
	if err != nil {
		return apperrors.WrapError(err, "creating report file")
	}
	defer f.Close()
	if _, err := canvas.WriteTo(f); err != nil {
		return apperrors.WrapError(err, "writing report file")
	}
	return f.Close()
}

// titlePage renders the cover with the sweep parameters.
func titlePage(table aero.Table, reynolds float64) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()
	p.Title.Text = fmt.Sprintf(
		"Airfoil Performance Analysis\n\nReynolds Number: %s\nAirfoils Analyzed: %s",
		format.FormatReynolds(reynolds),
		strings.Join(table.Airfoils(), ", "))
	p.Title.TextStyle.Font.Size = vg.Points(18)
	return p, nil
}

// curvesPage renders one line-points curve per airfoil, skipping missing
// rows and NaN values.
func curvesPage(table aero.Table, title, xLabel, yLabel string, point func(aero.Result) (float64, float64)) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var series []interface{}
	for _, airfoil := range table.Airfoils() {
		var pts plotter.XYs
		for _, r := range table.ForAirfoil(airfoil) {
			if !r.Converged {
				continue
			}
			x, y := point(r)
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			pts = append(pts, plotter.XY{X: x, Y: y})
		}
		if len(pts) == 0 {
			continue
		}
		series = append(series, airfoil, pts)
	}

	if len(series) > 0 {
		if err := plotutil.AddLinePoints(p, series...); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// bestTablePage renders the per-angle best-airfoil selection as text rows.
func bestTablePage(best aero.BestChoice) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()

	var b strings.Builder
	b.WriteString("Best Airfoils for Each Angle of Attack\n\n")
	b.WriteString("Alpha      Best CL               Best CD               Best L/D\n")
	for _, row := range best {
		fmt.Fprintf(&b, "%-8s   %-12s %-6s   %-12s %-6s   %-12s %-6s\n",
			format.FormatAlpha(row.Alpha),
			row.BestCLAirfoil, format.FormatCoefficient(row.BestCL),
			row.BestCDAirfoil, format.FormatCoefficient(row.BestCD),
			row.BestLDAirfoil, format.FormatRatio(row.BestLD))
	}

	p.Title.Text = b.String()
	p.Title.TextStyle.Font.Size = vg.Points(11)
	return p, nil
}
