package extract

import (
	"bufio"
	"strconv"
	"strings"

	"cfreport/annotate"
	"cfreport/variant"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// snvDefaults is the fixed SNV/indel field vocabulary.
var snvDefaults = map[string]string{
	"REF":        ".",
	"ALT":        ".",
	"VAF":        "0",
	"LOD":        "0",
	"AMPCOV":     "0",
	"MOLREFCOV":  "0",
	"MOLALTCOV":  "0",
	"ID":         ".",
	"GENE":       ".",
	"TRANSCRIPT": ".",
	"CDS":        ".",
	"AA":         ".",
	"LOCATION":   ".",
	"FUNC":       ".",
}

// SNVFile returns an extraction function that derives sample identity from the
// input file's VCF header and pulls SNV/indel candidates from the annotator
// subprocess. The subprocess runs inside the owning worker.
func SNVFile(runner *annotate.Runner) func(file string) Fragment {
	return func(file string) Fragment {
		var frag Fragment
		frag.File = file
		frag.Sample = headerSample(file)
		frag.Records = annotatedRecords(runner.Run(file))
		return frag
	}
}

// headerSample scans only the header lines of a VCF file for sample identity.
func headerSample(file string) variant.Sample {
	var s variant.Sample
	in := fileio.EasyOpen(file)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "#") {
			break
		}
		scanMeta(line, &s)
	}
	exception.PanicOnErr(scanner.Err())
	err := in.Close()
	exception.PanicOnErr(err)
	return s
}

// annotatedRecords converts annotator output to keyed field sets, applying the
// local secondary filter: candidates at or below the limit of detection, with
// at most one supporting molecule, or with an unset variant id are dropped.
func annotatedRecords(records []annotate.Record) map[variant.Key]variant.FieldSet {
	ans := make(map[variant.Key]variant.FieldSet)
	for _, rec := range records {
		chrom, posText, found := strings.Cut(rec.Locus, ":")
		if !found {
			continue
		}
		pos, err := strconv.Atoi(posText)
		if err != nil {
			continue
		}

		vaf, _ := strconv.ParseFloat(rec.Vaf, 64)
		lod, _ := strconv.ParseFloat(rec.Lod, 64)
		molAlt, _ := strconv.Atoi(rec.MolAltCov)
		if vaf <= lod || molAlt <= 1 || rec.Id == "." {
			continue
		}

		fields := variant.FieldSet{
			"REF":        rec.Ref,
			"ALT":        rec.Alt,
			"VAF":        rec.Vaf,
			"LOD":        rec.Lod,
			"AMPCOV":     rec.AmpCov,
			"MOLREFCOV":  rec.MolRefCov,
			"MOLALTCOV":  rec.MolAltCov,
			"ID":         rec.Id,
			"GENE":       rec.Gene,
			"TRANSCRIPT": rec.Transcript,
			"CDS":        rec.Cds,
			"AA":         rec.AA,
			"LOCATION":   rec.Location,
			"FUNC":       rec.Function,
		}
		key := variant.Key{Chrom: chrom, Pos: pos}
		ans[key] = fillDefaults(fields, snvDefaults)
	}
	return ans
}
