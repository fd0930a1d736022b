package render

import (
	"fmt"
	"io"

	"cfreport/filter"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotProfile prints a terminal fold-difference profile per sample, records in
// report order along the x axis.
func PlotProfile(out io.Writer, reports []filter.Report) {
	for _, r := range reports {
		fds := columnValues(r, fdColumn)
		if len(fds) == 0 {
			continue
		}
		fmt.Fprintln(out, asciigraph.Plot(fds,
			asciigraph.Height(10),
			asciigraph.Precision(2),
			asciigraph.Caption(r.Sample.Name+" fold difference")))
		fmt.Fprintln(out)
	}
}

// SavePlot writes a PNG scatter of copy number by record index, one series
// per sample.
func SavePlot(file string, reports []filter.Report) error {
	p := plot.New()
	p.Title.Text = "Copy number profile"
	p.X.Label.Text = "Record index"
	p.Y.Label.Text = "Copy number"

	args := make([]interface{}, 0, 2*len(reports))
	for _, r := range reports {
		cns := columnValues(r, cnColumn)
		pts := make(plotter.XYs, len(cns))
		for i, cn := range cns {
			pts[i].X = float64(i)
			pts[i].Y = cn
		}
		args = append(args, r.Sample.Name, pts)
	}
	err := plotutil.AddScatters(p, args...)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, file)
}
