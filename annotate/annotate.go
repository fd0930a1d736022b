// Package annotate wraps the external cfanno variant annotation tool that
// pre-extracts SNV/indel candidates from panel VCFs.
package annotate

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"cfreport/variant"

	"github.com/vertgenlab/gonomics/exception"
)

// MinVersion is the oldest cfanno release with the 15-column output contract.
const MinVersion = "1.4.0"

// numFields is the fixed column count of the annotator's tabular output.
const numFields = 15

// Record is one annotated SNV/indel candidate as emitted by cfanno. Values are
// kept as written so reports render them unchanged.
type Record struct {
	Locus      string // chrom:pos
	Ref        string
	Alt        string
	Vaf        string
	Lod        string
	AmpCov     string
	MolRefCov  string
	MolAltCov  string
	Id         string
	Gene       string
	Transcript string
	Cds        string
	AA         string
	Location   string
	Function   string
}

// Runner invokes the annotator binary with a fixed filter configuration.
type Runner struct {
	Bin           string
	ExcludeNocall bool
	IncludeNovel  bool
	Genes         []string
}

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// CheckVersion runs `bin --version` and verifies the reported version meets
// MinVersion. Called once at startup, before any input file is opened.
func CheckVersion(bin string) error {
	out, err := exec.Command(bin, "--version").Output()
	if err != nil {
		return fmt.Errorf("could not run %s --version: %w", bin, err)
	}
	ver := versionPattern.FindString(string(out))
	if ver == "" {
		return fmt.Errorf("no version string in %s --version output", bin)
	}
	if variant.CompareNatural(ver, MinVersion) < 0 {
		return fmt.Errorf("%s version %s is older than the minimum supported %s", bin, ver, MinVersion)
	}
	return nil
}

// Run invokes the annotator on one input file and returns its records. The
// subprocess runs nested inside the calling worker; a failed invocation panics
// and is contained by the dispatcher.
func (r *Runner) Run(file string) []Record {
	args := make([]string, 0, 6)
	if r.ExcludeNocall {
		args = append(args, "--exclude-nocall")
	}
	if r.IncludeNovel {
		args = append(args, "--include-novel")
	}
	if len(r.Genes) > 0 {
		args = append(args, "--genes", strings.Join(r.Genes, ","))
	}
	args = append(args, file)

	cmd := exec.Command(r.Bin, args...)
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	exception.PanicOnErr(err)
	err = cmd.Start()
	exception.PanicOnErr(err)

	var records []Record
	s := bufio.NewScanner(stdout)
	for s.Scan() {
		rec, ok := parseRecord(s.Text())
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	exception.PanicOnErr(s.Err())
	err = cmd.Wait()
	exception.PanicOnErr(err)
	return records
}

// parseRecord decodes one tab-delimited annotator line. Lines without the
// expected column count are skipped by the caller.
func parseRecord(line string) (Record, bool) {
	cols := strings.Split(line, "\t")
	if len(cols) != numFields {
		return Record{}, false
	}
	return Record{
		Locus:      cols[0],
		Ref:        cols[1],
		Alt:        cols[2],
		Vaf:        cols[3],
		Lod:        cols[4],
		AmpCov:     cols[5],
		MolRefCov:  cols[6],
		MolAltCov:  cols[7],
		Id:         cols[8],
		Gene:       cols[9],
		Transcript: cols[10],
		Cds:        cols[11],
		AA:         cols[12],
		Location:   cols[13],
		Function:   cols[14],
	}, true
}
