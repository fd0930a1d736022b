// Package report wires extraction, filtering, and rendering into the three
// report pipelines shared by the standalone tools and the cfreport umbrella.
package report

import (
	"cfreport/annotate"
	"cfreport/extract"
	"cfreport/filter"
	"cfreport/render"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// CNV generates the copy-number report for all input files.
func CNV(files []string, crit *filter.Criteria, output, format string, raw, summary, plot bool, plotFile string) {
	results, _ := extract.GoExtractAll(files, extract.CNVFile)
	reports := crit.CNVReports(results)

	out := fileio.EasyCreate(output)
	if raw {
		render.Raw(out, reports, filter.CNVColumns, render.CNVMeta)
	} else {
		render.Write(out, reports, filter.CNVColumns, render.CNVWidths, render.CNVMeta, format)
	}
	if summary {
		render.Summary(out, reports)
	}
	if plot {
		render.PlotProfile(out, reports)
	}
	err := out.Close()
	exception.PanicOnErr(err)

	if plotFile != "" {
		err = render.SavePlot(plotFile, reports)
		exception.PanicOnErr(err)
	}
}

// Fusion generates the gene fusion report for all input files.
func Fusion(files []string, crit *filter.Criteria, output, format string, raw bool) {
	results, controls := extract.GoExtractAll(files, extract.FusionFile)
	reports := crit.FusionReports(results, controls)

	out := fileio.EasyCreate(output)
	if raw {
		render.Raw(out, reports, filter.FusionColumns, render.FusionMeta)
	} else {
		render.Write(out, reports, filter.FusionColumns, render.FusionWidths, render.FusionMeta, format)
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// SNV generates the SNV/indel report for all input files, pulling candidate
// records through the external annotator.
func SNV(files []string, crit *filter.Criteria, runner *annotate.Runner, output, format string, raw bool) {
	results, _ := extract.GoExtractAll(files, extract.SNVFile(runner))
	reports := crit.SNVReports(results)

	out := fileio.EasyCreate(output)
	if raw {
		render.Raw(out, reports, filter.SNVColumns, render.SNVMeta)
	} else {
		render.Write(out, reports, filter.SNVColumns, render.SNVWidths, render.SNVMeta, format)
	}
	err := out.Close()
	exception.PanicOnErr(err)
}
