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
		"fusionReport - Generate gene fusion reports from cfDNA panel VCFs.\n" +
			"Usage:\n" +
			"fusionReport [options] input.vcf [input2.vcf ...]\n\n")
	flag.PrintDefaults()
}

func main() {
	cpuprofile := flag.Bool("cpuprofile", false, "write cpu profile")
	memprofile := flag.Bool("memprofile", false, "write memory profile")
	genes := flag.String("g", "", "Comma separated list of driver genes to restrict the report to. Empty reports all genes.")
	minCount := flag.Int("minCount", 0, "Minimum supporting read count for a fusion to be reported.")
	nocall := flag.Bool("nocall", false, "Include NOCALL and FAIL records in the report.")
	novel := flag.Bool("novel", false, "Include non-targeted (novel) fusions in the report.")
	output := flag.String("o", "stdout", "Output file.")
	format := flag.String("format", "pp", "Output format. One of pp, csv, or tsv.")
	raw := flag.Bool("raw", false, "Write a denormalized comma-delimited export for spreadsheet import. Overrides -format.")
	printVersion := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *printVersion {
		fmt.Println("fusionReport", version)
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
		Genes:         filter.ParseGeneList(*genes),
		MinCount:      *minCount,
		IncludeNocall: *nocall,
		IncludeNovel:  *novel,
	}
	err := crit.ChooseMode()
	if err != nil {
		usage()
		log.Fatal("ERROR: ", err)
	}

	report.Fusion(flag.Args(), crit, *output, *format, *raw)
}
