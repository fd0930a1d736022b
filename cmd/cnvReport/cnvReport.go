package main

import (
	"flag"
	"fmt"
	"log"

	"cfreport/filter"
	"cfreport/render"
	"cfreport/report"

	"github.com/pkg/profile"
)

const version string = "1.2.0"

func usage() {
	fmt.Print(
		"cnvReport - Generate copy-number variant reports from cfDNA panel VCFs.\n" +
			"Usage:\n" +
			"cnvReport [options] input.vcf [input2.vcf ...]\n\n")
	flag.PrintDefaults()
}

func main() {
	cpuprofile := flag.Bool("cpuprofile", false, "write cpu profile")
	memprofile := flag.Bool("memprofile", false, "write memory profile")
	genes := flag.String("g", "", "Comma separated list of genes to restrict the report to. Empty reports all genes.")
	copyAmp := flag.Float64("amp", 0, "Copy number above which a record is reported as an amplification. Must be paired with -loss.")
	copyLoss := flag.Float64("loss", 0, "Copy number below which a record is reported as a loss. Must be paired with -amp.")
	foldAmp := flag.Float64("foldAmp", 0, "Fold difference above which a record is reported as an amplification. Must be paired with -foldLoss. Mutually exclusive with -amp/-loss.")
	foldLoss := flag.Float64("foldLoss", 0, "Fold difference below which a record is reported as a loss. Must be paired with -foldAmp.")
	minTiles := flag.Int("minTiles", 0, "Minimum number of tiles supporting a record.")
	output := flag.String("o", "stdout", "Output file.")
	format := flag.String("format", "pp", "Output format. One of pp, csv, or tsv.")
	raw := flag.Bool("raw", false, "Write a denormalized comma-delimited export for spreadsheet import. Overrides -format.")
	summary := flag.Bool("summary", false, "Append a per-sample summary with record count, mean fold difference, and median copy number.")
	plotProfile := flag.Bool("plot", false, "Append a terminal fold-difference profile per sample.")
	plotFile := flag.String("plotFile", "", "Write a copy-number profile plot to a PNG file.")
	printVersion := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *printVersion {
		fmt.Println("cnvReport", version)
		return
	}
	if *memprofile && *cpuprofile {
		usage()
		log.Fatal("ERROR: -memprofile and -cpuprofile are mutually exclusive.")
	}
	if *memprofile {
		defer profile.Start(profile.MemProfile).Stop()
	}
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if flag.NArg() == 0 {
		usage()
		log.Fatal("ERROR: must provide at least one input VCF.")
	}
	if !render.ValidFormat(*format) {
		usage()
		log.Fatalf("ERROR: unknown output format %q. Must be one of pp, csv, or tsv.", *format)
	}

	crit := &filter.Criteria{
		Genes:    filter.ParseGeneList(*genes),
		CopyAmp:  *copyAmp,
		CopyLoss: *copyLoss,
		FoldAmp:  *foldAmp,
		FoldLoss: *foldLoss,
		MinTiles: *minTiles,
	}
	err := crit.ChooseMode()
	if err != nil {
		usage()
		log.Fatal("ERROR: ", err)
	}

	report.CNV(flag.Args(), crit, *output, *format, *raw, *summary, *plotProfile, *plotFile)
}
