package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"cfreport/annotate"
	"cfreport/filter"
	"cfreport/render"
	"cfreport/report"

	"github.com/pkg/profile"
)

const version string = "1.2.0"

func usage() {
	fmt.Print(
		"snvReport - Generate SNV/indel reports from cfDNA panel VCFs.\n" +
			"Candidate records are pre-extracted by the cfanno annotator, which must\n" +
			"be on PATH (or named with -bin) at version " + annotate.MinVersion + " or newer.\n" +
			"Usage:\n" +
			"snvReport [options] input.vcf [input2.vcf ...]\n\n")
	flag.PrintDefaults()
}

func main() {
	cpuprofile := flag.Bool("cpuprofile", false, "write cpu profile")
	memprofile := flag.Bool("memprofile", false, "write memory profile")
	bin := flag.String("bin", "cfanno", "Path to the cfanno annotator binary.")
	genes := flag.String("g", "", "Comma separated list of genes to restrict the report to. Empty reports all genes.")
	minMolCov := flag.Int("minMolCov", 0, "Minimum molecular alt coverage for a record to be reported.")
	minVaf := flag.Float64("minVaf", 0, "Minimum variant allele frequency for a record to be reported.")
	nocall := flag.Bool("nocall", false, "Ask the annotator to keep NOCALL records.")
	novel := flag.Bool("novel", false, "Ask the annotator to keep novel (non-hotspot) records.")
	ref := flag.Bool("ref", false, "Include reference calls in the report.")
	output := flag.String("o", "stdout", "Output file.")
	format := flag.String("format", "pp", "Output format. One of pp, csv, or tsv.")
	raw := flag.Bool("raw", false, "Write a denormalized comma-delimited export for spreadsheet import. Overrides -format.")
	printVersion := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *printVersion {
		fmt.Println("snvReport", version)
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
	err := annotate.CheckVersion(*bin)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}

	crit := &filter.Criteria{
		Genes:      filter.ParseGeneList(*genes),
		MinMolCov:  *minMolCov,
		MinVaf:     *minVaf,
		IncludeRef: *ref,
	}
	err = crit.ChooseMode()
	if err != nil {
		usage()
		log.Fatal("ERROR: ", err)
	}

	runner := &annotate.Runner{
		Bin:           *bin,
		ExcludeNocall: !*nocall,
		IncludeNovel:  *novel,
	}
	if *genes != "" {
		runner.Genes = strings.Split(*genes, ",")
	}

	report.SNV(flag.Args(), crit, runner, *output, *format, *raw)
}
