package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cfreport/filter"
)

var cnvVcf = []string{
	"##fileformat=VCFv4.1",
	"##fileDate=20230107",
	"##sampleGender=Female",
	"##mapd=0.382",
	"##CellularityAsAFractionBetween0-1=0.75",
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1",
	"chr7\t55019017\tEGFR\tA\t<CNV>\t.\tPASS\tEND=55211628;LEN=192611;NUMTILES=26;FD=2.4;PVAL=3.4e-08;RMMDP=1501;MMDP=170\tGT:GQ:CN\t./.:0:5.0",
	"chr2\t29415640\tALK\tA\t<CNV>\t.\tPASS\tEND=30144477;LEN=728837;NUMTILES=19;FD=0.8;PVAL=2.1e-06;RMMDP=1450;MMDP=162\tGT:GQ:CN\t./.:0:1.5",
	"chr12\t25358180\tKRAS\tA\t<CNV>\t.\tPASS\tEND=25403870;LEN=45690;NUMTILES=20;FD=4.0;PVAL=1e-04;RMMDP=1400;MMDP=150\tGT:GQ:CN\t./.:0:9.0",
}

var fusionVcf = []string{
	"##fileformat=VCFv4.1",
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tF1",
	"chr4\t1808623\tFGFR3-TACC3.F17T11\tG\t]chr4:1739412]G\t.\tPASS\tSVTYPE=Fusion;READ_COUNT=112\tGT\t./.",
	"chr2\t42522656\tEML4-ALK.E13A20\tG\tG]chr2:29446394]\t.\tPASS\tSVTYPE=Fusion;READ_COUNT=5\tGT\t./.",
}

func writeLines(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	err := os.WriteFile(file, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return file
}

func TestCNVCsv(t *testing.T) {
	dir := t.TempDir()
	in := writeLines(t, dir, "s1.vcf", cnvVcf)
	out := filepath.Join(dir, "report.csv")

	crit := &filter.Criteria{CopyAmp: 4, CopyLoss: 1}
	if err := crit.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	CNV([]string{in}, crit, out, "csv", false, false, false, "")

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatal("expected sample line, header, and one data row, got:\n" + string(data))
	}
	if lines[0] != "#S1" {
		t.Error("problem with sample section line:", lines[0])
	}
	if lines[1] != strings.Join(filter.CNVColumns, ",") {
		t.Error("problem with header row:", lines[1])
	}
	// the ALK record sits inside the copy window and the KRAS record fails
	// the p-value gate, so only the EGFR amplification survives
	if !strings.HasPrefix(lines[2], "chr7,EGFR,55019017,55211628,") || !strings.Contains(lines[2], ",5.0,") {
		t.Error("problem with data row:", lines[2])
	}
}

func TestCNVSummary(t *testing.T) {
	dir := t.TempDir()
	in := writeLines(t, dir, "s1.vcf", cnvVcf)
	out := filepath.Join(dir, "report.txt")

	crit := new(filter.Criteria)
	if err := crit.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	CNV([]string{in}, crit, out, "pp", false, true, false, "")

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "S1\trecords: 2\t") {
		t.Error("summary should count the records past the p-value gate:\n" + string(data))
	}
}

func TestFusionRaw(t *testing.T) {
	dir := t.TempDir()
	in := writeLines(t, dir, "f1.vcf", fusionVcf)
	out := filepath.Join(dir, "report.csv")

	crit := &filter.Criteria{MinCount: 50}
	if err := crit.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	Fusion([]string{in}, crit, out, "csv", true)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatal("expected one global header and one data row, got:\n" + string(data))
	}
	if lines[0] != "Sample,"+strings.Join(filter.FusionColumns, ",") {
		t.Error("problem with raw header:", lines[0])
	}
	if lines[1] != "F1,chr4,1808623,FGFR3-TACC3.F17T11.1,FGFR3,TACC3,112,PASS" {
		t.Error("problem with raw row:", lines[1])
	}
}
