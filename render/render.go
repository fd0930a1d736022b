// Package render writes filtered reports as pretty-printed tables, delimited
// text, or a flattened raw export.
package render

import (
	"fmt"
	"io"
	"strings"

	"cfreport/filter"
	"cfreport/variant"

	"github.com/vertgenlab/gonomics/numbers"
)

// noVariants marks a sample section with nothing left after filtering.
const noVariants = "no reportable variants"

// Static pretty-mode column widths per record type. A zero width means the
// column is sized from the data: longest value across the whole result set
// plus a 2 character pad, floored at the header width.
var (
	CNVWidths    = []int{8, 10, 12, 12, 10, 7, 8, 8, 12, 8, 9}
	FusionWidths = []int{8, 12, 28, 10, 18, 7, 8}
	SNVWidths    = []int{8, 12, 0, 0, 9, 9, 8, 11, 11, 0, 10, 18, 0, 0, 10, 12}
)

// Sample metadata columns flattened into raw exports and banners, per record type.
var (
	CNVMeta    = []string{"Sample", "Gender", "MAPD", "Cellularity"}
	FusionMeta = []string{"Sample"}
	SNVMeta    = []string{"Sample", "Timestamp"}
)

// ValidFormat reports whether name is an accepted -format selector value.
func ValidFormat(name string) bool {
	switch name {
	case "pp", "csv", "tsv":
		return true
	}
	return false
}

// Write renders reports in the named format. Callers validate the format
// selector at startup; an unknown name here is unreachable.
func Write(out io.Writer, reports []filter.Report, columns []string, static []int, meta []string, format string) {
	switch format {
	case "pp":
		Pretty(out, reports, columns, static, meta)
	case "csv":
		Delimited(out, reports, columns, ",")
	case "tsv":
		Delimited(out, reports, columns, "\t")
	}
}

func metaValue(s variant.Sample, name string) string {
	switch name {
	case "Sample":
		return s.Name
	case "Gender":
		return s.Gender
	case "MAPD":
		return s.Mapd
	case "Cellularity":
		return s.Cellularity
	case "Timestamp":
		return s.Timestamp
	}
	return ""
}

// Pretty writes one banner and fixed-width table per sample.
func Pretty(out io.Writer, reports []filter.Report, columns []string, static []int, meta []string) {
	widths := computeWidths(reports, columns, static)
	for _, r := range reports {
		banner(out, r, meta)
		if len(r.Rows) == 0 {
			fmt.Fprintln(out, noVariants)
			fmt.Fprintln(out)
			continue
		}
		writePadded(out, columns, widths)
		for _, row := range r.Rows {
			writePadded(out, row, widths)
		}
		fmt.Fprintln(out)
	}
}

func banner(out io.Writer, r filter.Report, meta []string) {
	parts := make([]string, 0, len(meta)+1)
	for _, name := range meta {
		parts = append(parts, fmt.Sprintf("%s: %s", name, metaValue(r.Sample, name)))
	}
	if r.Controls > 0 {
		parts = append(parts, fmt.Sprintf("Control probes: %d", r.Controls))
	}
	fmt.Fprintln(out, strings.Join(parts, "    "))
}

func writePadded(out io.Writer, cells []string, widths []int) {
	var b strings.Builder
	for i := range cells {
		fmt.Fprintf(&b, "%-*s", widths[i], cells[i])
	}
	fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
}

func computeWidths(reports []filter.Report, columns []string, static []int) []int {
	widths := make([]int, len(columns))
	for i := range columns {
		if static[i] > 0 {
			widths[i] = static[i]
			continue
		}
		w := len(columns[i]) + 2
		for _, r := range reports {
			for _, row := range r.Rows {
				w = numbers.Max(w, len(row[i])+2)
			}
		}
		widths[i] = w
	}
	return widths
}

// Delimited writes one labeled section per sample: a sample line, a header
// row, and one delimiter-joined row per record.
func Delimited(out io.Writer, reports []filter.Report, columns []string, delim string) {
	for _, r := range reports {
		fmt.Fprintf(out, "#%s\n", r.Sample.Name)
		if len(r.Rows) == 0 {
			fmt.Fprintln(out, noVariants)
			continue
		}
		fmt.Fprintln(out, strings.Join(columns, delim))
		for _, row := range r.Rows {
			fmt.Fprintln(out, strings.Join(row, delim))
		}
	}
}

// Raw writes a single global header of sample metadata columns followed by the
// record field names, then fully denormalized comma-joined rows. Intended for
// spreadsheet import: no banners, no per-sample grouping, no empty sections.
func Raw(out io.Writer, reports []filter.Report, columns []string, meta []string) {
	header := make([]string, 0, len(meta)+len(columns))
	header = append(header, meta...)
	header = append(header, columns...)
	fmt.Fprintln(out, strings.Join(header, ","))

	row := make([]string, 0, len(header))
	for _, r := range reports {
		for _, cells := range r.Rows {
			row = row[:0]
			for _, name := range meta {
				row = append(row, metaValue(r.Sample, name))
			}
			row = append(row, cells...)
			fmt.Fprintln(out, strings.Join(row, ","))
		}
	}
}
