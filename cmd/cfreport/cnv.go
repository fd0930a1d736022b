package main

import (
	"flag"
	"fmt"

	"cfreport/filter"
	"cfreport/render"
	"cfreport/report"

	"github.com/vertgenlab/gonomics/exception"
)

func cnvUsage(cnvFlags *flag.FlagSet) {
	fmt.Print(
		"cnv - report copy-number variants from panel VCFs\n\n" +
			"Usage:\n" +
			"  cfreport cnv [options] input.vcf [input2.vcf ...]\n\n" +
			"Options:\n")
	cnvFlags.PrintDefaults()
}

func runCnv(args []string) {
	var err error
	cnvFlags := flag.NewFlagSet("cnv", flag.ExitOnError)

	genes := cnvFlags.String("g", "", "Comma separated list of genes to restrict the report to. Empty reports all genes.")
	copyAmp := cnvFlags.Float64("amp", 0, "Copy number above which a record is reported as an amplification. Must be paired with -loss.")
	copyLoss := cnvFlags.Float64("loss", 0, "Copy number below which a record is reported as a loss. Must be paired with -amp.")
	foldAmp := cnvFlags.Float64("foldAmp", 0, "Fold difference above which a record is reported as an amplification. Must be paired with -foldLoss. Mutually exclusive with -amp/-loss.")
	foldLoss := cnvFlags.Float64("foldLoss", 0, "Fold difference below which a record is reported as a loss. Must be paired with -foldAmp.")
	minTiles := cnvFlags.Int("minTiles", 0, "Minimum number of tiles supporting a record.")
	output := cnvFlags.String("o", "stdout", "Output file.")
	format := cnvFlags.String("format", "pp", "Output format. One of pp, csv, or tsv.")
	raw := cnvFlags.Bool("raw", false, "Write a denormalized comma-delimited export for spreadsheet import. Overrides -format.")
	summary := cnvFlags.Bool("summary", false, "Append a per-sample summary with record count, mean fold difference, and median copy number.")
	plotProfile := cnvFlags.Bool("plot", false, "Append a terminal fold-difference profile per sample.")
	plotFile := cnvFlags.String("plotFile", "", "Write a copy-number profile plot to a PNG file.")

	err = cnvFlags.Parse(args)
	exception.PanicOnErr(err)
	cnvFlags.Usage = func() { cnvUsage(cnvFlags) }

	if cnvFlags.NArg() == 0 {
		cnvFlags.Usage()
		errExit("\nERROR: must provide at least one input VCF")
	}
	if !render.ValidFormat(*format) {
		cnvFlags.Usage()
		errExit(fmt.Sprintf("\nERROR: unknown output format %q. Must be one of pp, csv, or tsv", *format))
	}

	crit := &filter.Criteria{
		Genes:    filter.ParseGeneList(*genes),
		CopyAmp:  *copyAmp,
		CopyLoss: *copyLoss,
		FoldAmp:  *foldAmp,
		FoldLoss: *foldLoss,
		MinTiles: *minTiles,
	}
	err = crit.ChooseMode()
	if err != nil {
		cnvFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	report.CNV(cnvFlags.Args(), crit, *output, *format, *raw, *summary, *plotProfile, *plotFile)
}
