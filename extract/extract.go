// Package extract parses cfDNA panel VCF output into per-sample record maps
// and runs the per-file extraction workers.
package extract

import (
	"bufio"
	"strconv"
	"strings"

	"cfreport/variant"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// cnvAlt marks a data line as a copy-number record.
const cnvAlt = "<CNV>"

// fusionTypes are the SVTYPE values that qualify a line as a fusion record.
var fusionTypes = map[string]bool{
	"Fusion":         true,
	"RNAExonVariant": true,
}

// cnvDefaults is the fixed CNV field vocabulary with per-field sentinels for
// fields missing from the input.
var cnvDefaults = map[string]string{
	"END":      ".",
	"LEN":      ".",
	"NUMTILES": "0",
	"CN":       "0",
	"FD":       "0",
	"HS":       "No",
	"FUNC":     ".",
	"PVAL":     ".",
	"RMMDP":    "0",
	"MMDP":     "0",
}

// fusionDefaults is the fixed fusion field vocabulary.
var fusionDefaults = map[string]string{
	"GENES":   ".",
	"COUNT":   "0",
	"DRIVER":  ".",
	"PARTNER": ".",
	"CALL":    ".",
	"ANNOT":   ".",
}

// Fragment is one worker's owned result: the sample identity derived from a
// single input file plus that file's extracted records. Fusion control and
// reference probe records are tracked apart from the reportable set.
type Fragment struct {
	File     string
	Sample   variant.Sample
	Records  map[variant.Key]variant.FieldSet
	Controls map[variant.Key]variant.FieldSet
}

// CNVFile extracts copy-number records and sample identity from one VCF file.
// An unreadable file panics; the dispatcher contains the panic to this worker.
func CNVFile(file string) Fragment {
	frag := parseCNV(readLines(file))
	frag.File = file
	return frag
}

// FusionFile extracts fusion records and sample identity from one VCF file.
func FusionFile(file string) Fragment {
	frag := parseFusion(readLines(file))
	frag.File = file
	return frag
}

func readLines(file string) []string {
	in := fileio.EasyOpen(file)
	var lines []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	exception.PanicOnErr(s.Err())
	err := in.Close()
	exception.PanicOnErr(err)
	return lines
}

// scanMeta folds one header line into the sample identity. "##" lines carry
// key=value metadata, last occurrence wins. The "#CHROM" column header line
// names the sample in its 10th column.
func scanMeta(line string, s *variant.Sample) {
	if strings.HasPrefix(line, "##") {
		key, val, found := strings.Cut(strings.TrimPrefix(line, "##"), "=")
		if !found {
			return
		}
		switch key {
		case "sampleGender":
			s.Gender = val
		case "mapd":
			s.Mapd = val
		case "CellularityAsAFractionBetween0-1":
			s.Cellularity = val
		case "fileDate":
			s.Timestamp = val
		}
		return
	}
	if strings.HasPrefix(line, "#") {
		cols := strings.Fields(line)
		if len(cols) >= 10 {
			s.Name = cols[9]
		}
	}
}

// parseInfo splits a semicolon-delimited key=value INFO string, normalizing
// the two irregular token shapes: a flag-only token becomes key=Yes, and a
// token with an empty trailing value gets a "." placeholder.
func parseInfo(info string) variant.FieldSet {
	fields := make(variant.FieldSet)
	for _, tok := range strings.Split(info, ";") {
		if tok == "" {
			continue
		}
		key, val, found := strings.Cut(tok, "=")
		if !found {
			val = "Yes"
		}
		if val == "" {
			val = "."
		}
		fields[key] = val
	}
	return fields
}

func fillDefaults(fields variant.FieldSet, defaults map[string]string) variant.FieldSet {
	ans := make(variant.FieldSet, len(defaults))
	for key, val := range defaults {
		ans[key] = val
	}
	for key, val := range fields {
		ans[key] = val
	}
	return ans
}

func parseCNV(lines []string) Fragment {
	var frag Fragment
	frag.Records = make(map[variant.Key]variant.FieldSet)
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			scanMeta(line, &frag.Sample)
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 10 || cols[4] != cnvAlt {
			continue
		}
		pos, err := strconv.Atoi(cols[1])
		if err != nil {
			continue
		}
		fields := parseInfo(cols[7])
		// copy number lives in the last colon subfield of the sample column
		sub := strings.Split(cols[9], ":")
		fields["CN"] = sub[len(sub)-1]
		key := variant.Key{Chrom: cols[0], Pos: pos, Gene: cols[2]}
		frag.Records[key] = fillDefaults(fields, cnvDefaults)
	}
	return frag
}

func parseFusion(lines []string) Fragment {
	var frag Fragment
	frag.Records = make(map[variant.Key]variant.FieldSet)
	frag.Controls = make(map[variant.Key]variant.FieldSet)
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			scanMeta(line, &frag.Sample)
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 8 {
			continue
		}
		info := parseInfo(cols[7])
		if !fusionTypes[info["SVTYPE"]] {
			continue
		}
		pos, err := strconv.Atoi(cols[1])
		if err != nil {
			continue
		}

		genes, junction, id := splitFusionId(cols[2])
		fields := make(variant.FieldSet)
		fields["GENES"] = genes + "." + junction + "." + id
		fields["CALL"] = cols[6]
		if count := info["READ_COUNT"]; count != "" {
			fields["COUNT"] = count
		}
		if annot := info["ANNOTATION"]; annot != "" {
			fields["ANNOT"] = annot
		}

		key := variant.Key{Chrom: cols[0], Pos: pos}
		gene1, gene2, fused := strings.Cut(genes, "-")
		if !fused {
			// control and reference probes carry a single probe name
			frag.Controls[key] = fillDefaults(fields, fusionDefaults)
			continue
		}
		fields["DRIVER"], fields["PARTNER"] = resolveDriver(gene1, gene2)
		frag.Records[key] = fillDefaults(fields, fusionDefaults)
	}
	return frag
}

// splitFusionId breaks a dot- or pipe-delimited composite fusion identifier
// into gene pair, junction, and disambiguating id. A missing id defaults to "1".
func splitFusionId(raw string) (genes, junction, id string) {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == '.' || r == '|' })
	genes, junction, id = raw, ".", "1"
	if len(parts) > 0 {
		genes = parts[0]
	}
	if len(parts) > 1 {
		junction = parts[1]
	}
	if len(parts) > 2 {
		id = parts[2]
	}
	return genes, junction, id
}

// resolveDriver assigns driver and partner roles for a fusion gene pair
// against the known driver gene list. Identical genes fill both roles; if
// both genes are listed the first operand wins; if neither is listed the
// driver is unknown and the partner records both genes.
func resolveDriver(gene1, gene2 string) (driver, partner string) {
	switch {
	case gene1 == gene2:
		return gene1, gene1
	case driverGenes[gene1]:
		return gene1, gene2
	case driverGenes[gene2]:
		return gene2, gene1
	default:
		return "unknown", gene1 + "," + gene2
	}
}
