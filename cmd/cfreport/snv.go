package main

import (
	"flag"
	"fmt"
	"strings"

	"cfreport/annotate"
	"cfreport/filter"
	"cfreport/render"
	"cfreport/report"

	"github.com/vertgenlab/gonomics/exception"
)

func snvUsage(snvFlags *flag.FlagSet) {
	fmt.Print(
		"snv - report SNV/indel calls via the cfanno annotator\n\n" +
			"Usage:\n" +
			"  cfreport snv [options] input.vcf [input2.vcf ...]\n\n" +
			"Options:\n")
	snvFlags.PrintDefaults()
}

func runSnv(args []string) {
	var err error
	snvFlags := flag.NewFlagSet("snv", flag.ExitOnError)

	bin := snvFlags.String("bin", "cfanno", "Path to the cfanno annotator binary.")
	genes := snvFlags.String("g", "", "Comma separated list of genes to restrict the report to. Empty reports all genes.")
	minMolCov := snvFlags.Int("minMolCov", 0, "Minimum molecular alt coverage for a record to be reported.")
	minVaf := snvFlags.Float64("minVaf", 0, "Minimum variant allele frequency for a record to be reported.")
	nocall := snvFlags.Bool("nocall", false, "Ask the annotator to keep NOCALL records.")
	novel := snvFlags.Bool("novel", false, "Ask the annotator to keep novel (non-hotspot) records.")
	ref := snvFlags.Bool("ref", false, "Include reference calls in the report.")
	output := snvFlags.String("o", "stdout", "Output file.")
	format := snvFlags.String("format", "pp", "Output format. One of pp, csv, or tsv.")
	raw := snvFlags.Bool("raw", false, "Write a denormalized comma-delimited export for spreadsheet import. Overrides -format.")

	err = snvFlags.Parse(args)
	exception.PanicOnErr(err)
	snvFlags.Usage = func() { snvUsage(snvFlags) }

	if snvFlags.NArg() == 0 {
		snvFlags.Usage()
		errExit("\nERROR: must provide at least one input VCF")
	}
	if !render.ValidFormat(*format) {
		snvFlags.Usage()
		errExit(fmt.Sprintf("\nERROR: unknown output format %q. Must be one of pp, csv, or tsv", *format))
	}
	err = annotate.CheckVersion(*bin)
	if err != nil {
		errExit("\nERROR: " + err.Error())
	}

	crit := &filter.Criteria{
		Genes:      filter.ParseGeneList(*genes),
		MinMolCov:  *minMolCov,
		MinVaf:     *minVaf,
		IncludeRef: *ref,
	}
	err = crit.ChooseMode()
	if err != nil {
		snvFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	runner := &annotate.Runner{
		Bin:           *bin,
		ExcludeNocall: !*nocall,
		IncludeNovel:  *novel,
	}
	if *genes != "" {
		runner.Genes = strings.Split(*genes, ",")
	}

	report.SNV(snvFlags.Args(), crit, runner, *output, *format, *raw)
}
