package render

import (
	"fmt"
	"io"
	"strconv"

	"cfreport/filter"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Column positions in filter.CNVColumns consumed by the summary and plots.
const (
	cnColumn = 6
	fdColumn = 7
)

// Summary appends one line per sample with the reportable record count, mean
// fold difference, and median copy number of the filtered rows.
func Summary(out io.Writer, reports []filter.Report) {
	for _, r := range reports {
		fds := columnValues(r, fdColumn)
		cns := columnValues(r, cnColumn)
		if len(fds) == 0 || len(cns) == 0 {
			fmt.Fprintf(out, "%s\trecords: 0\n", r.Sample.Name)
			continue
		}
		slices.Sort(cns)
		fmt.Fprintf(out, "%s\trecords: %d\tmean FD: %.3f\tmedian CN: %.3f\n",
			r.Sample.Name, len(r.Rows), stat.Mean(fds, nil), stat.Quantile(0.5, stat.Empirical, cns, nil))
	}
}

func columnValues(r filter.Report, col int) []float64 {
	vals := make([]float64, 0, len(r.Rows))
	for _, row := range r.Rows {
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}
