package main

import (
	"flag"
	"fmt"

	"cfreport/filter"
	"cfreport/render"
	"cfreport/report"

	"github.com/vertgenlab/gonomics/exception"
)

func fusionUsage(fusionFlags *flag.FlagSet) {
	fmt.Print(
		"fusion - report gene fusions from panel VCFs\n\n" +
			"Usage:\n" +
			"  cfreport fusion [options] input.vcf [input2.vcf ...]\n\n" +
			"Options:\n")
	fusionFlags.PrintDefaults()
}

func runFusion(args []string) {
	var err error
	fusionFlags := flag.NewFlagSet("fusion", flag.ExitOnError)

	genes := fusionFlags.String("g", "", "Comma separated list of driver genes to restrict the report to. Empty reports all genes.")
	minCount := fusionFlags.Int("minCount", 0, "Minimum supporting read count for a fusion to be reported.")
	nocall := fusionFlags.Bool("nocall", false, "Include NOCALL and FAIL records in the report.")
	novel := fusionFlags.Bool("novel", false, "Include non-targeted (novel) fusions in the report.")
	output := fusionFlags.String("o", "stdout", "Output file.")
	format := fusionFlags.String("format", "pp", "Output format. One of pp, csv, or tsv.")
	raw := fusionFlags.Bool("raw", false, "Write a denormalized comma-delimited export for spreadsheet import. Overrides -format.")

	err = fusionFlags.Parse(args)
	exception.PanicOnErr(err)
	fusionFlags.Usage = func() { fusionUsage(fusionFlags) }

	if fusionFlags.NArg() == 0 {
		fusionFlags.Usage()
		errExit("\nERROR: must provide at least one input VCF")
	}
	if !render.ValidFormat(*format) {
		fusionFlags.Usage()
		errExit(fmt.Sprintf("\nERROR: unknown output format %q. Must be one of pp, csv, or tsv", *format))
	}

	crit := &filter.Criteria{
		Genes:         filter.ParseGeneList(*genes),
		MinCount:      *minCount,
		IncludeNocall: *nocall,
		IncludeNovel:  *novel,
	}
	err = crit.ChooseMode()
	if err != nil {
		fusionFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	report.Fusion(fusionFlags.Args(), crit, *output, *format, *raw)
}
