// Package filter applies the report filter policy to extracted results and
// projects the surviving records into ordered report rows.
package filter

import (
	"errors"
	"strconv"
	"strings"

	"cfreport/variant"
)

// MaxPval is the p-value ceiling applied to every copy-number record before
// any threshold mode is consulted.
const MaxPval = 5e-5

// Mode selects how copy-number records are thresholded. It is chosen once at
// configuration time, never re-derived per record.
type Mode byte

const (
	ModeNone Mode = iota // no thresholds configured, keep everything past the p-value gate
	ModeFold             // keep records outside the fold-difference window
	ModeCopy             // keep records outside the copy-number window
)

// Criteria is the immutable filter configuration for one run.
type Criteria struct {
	Genes         map[string]bool // empty = no gene restriction
	CopyAmp       float64
	CopyLoss      float64
	FoldAmp       float64
	FoldLoss      float64
	MinTiles      int
	MinCount      int // fusion read count threshold
	MinMolCov     int
	MinVaf        float64
	IncludeNocall bool
	IncludeNovel  bool
	IncludeRef    bool

	mode Mode
}

// ParseGeneList splits a comma separated gene flag into an allow-list set.
// An empty flag yields an empty set, meaning no restriction.
func ParseGeneList(flag string) map[string]bool {
	genes := make(map[string]bool)
	for _, gene := range strings.Split(flag, ",") {
		if gene != "" {
			genes[gene] = true
		}
	}
	return genes
}

// ChooseMode fixes the threshold mode from the configured cutoff pairs.
// Supplying a complete fold pair and a complete copy pair together is a
// configuration error, rejected before any file is processed.
func (c *Criteria) ChooseMode() error {
	foldSet := c.FoldAmp != 0 && c.FoldLoss != 0
	copySet := c.CopyAmp != 0 && c.CopyLoss != 0
	switch {
	case foldSet && copySet:
		return errors.New("fold-difference and copy-number threshold pairs are mutually exclusive")
	case foldSet:
		c.mode = ModeFold
	case copySet:
		c.mode = ModeCopy
	default:
		c.mode = ModeNone
	}
	return nil
}

// Mode returns the threshold mode fixed by ChooseMode.
func (c *Criteria) Mode() Mode {
	return c.mode
}

// KeepCNV decides whether one copy-number record is reportable. Order matters:
// the p-value gate rejects unconditionally, then the gene allow-list and tile
// count, then the configured threshold mode.
func (c *Criteria) KeepCNV(key variant.Key, f variant.FieldSet) bool {
	if f.Float("PVAL") > MaxPval {
		return false
	}
	if len(c.Genes) > 0 && !c.Genes[key.Gene] {
		return false
	}
	if c.MinTiles > 0 && f.Int("NUMTILES") < c.MinTiles {
		return false
	}
	switch c.mode {
	case ModeFold:
		fd := f.Float("FD")
		return fd > c.FoldAmp || fd < c.FoldLoss
	case ModeCopy:
		cn := f.Float("CN")
		return cn > c.CopyAmp || cn < c.CopyLoss
	}
	return true
}

// KeepFusion decides whether one fusion record is reportable. The gene
// allow-list is checked against the driver gene only. Control probes never
// reach this decision; they are tracked apart during extraction.
func (c *Criteria) KeepFusion(f variant.FieldSet) bool {
	if len(c.Genes) > 0 && !c.Genes[f["DRIVER"]] {
		return false
	}
	if f.Int("COUNT") < c.MinCount {
		return false
	}
	if !c.IncludeNocall && (f["CALL"] == "NOCALL" || f["CALL"] == "FAIL") {
		return false
	}
	if !c.IncludeNovel && strings.Contains(f["ANNOT"], "Non-Targeted") {
		return false
	}
	return true
}

// KeepSNV decides whether one SNV/indel record is reportable.
func (c *Criteria) KeepSNV(f variant.FieldSet) bool {
	if len(c.Genes) > 0 && !c.Genes[f["GENE"]] {
		return false
	}
	if c.MinMolCov > 0 && f.Int("MOLALTCOV") < c.MinMolCov {
		return false
	}
	if c.MinVaf > 0 && f.Float("VAF") < c.MinVaf {
		return false
	}
	if !c.IncludeRef && f["ALT"] == f["REF"] {
		return false
	}
	return true
}

// Report is one sample's filtered, ordered rows, ready for rendering.
type Report struct {
	Sample   variant.Sample
	Rows     [][]string
	Controls int // fusion control probe count, zero for other record types
}

// Fixed output column orders per record type.
var (
	CNVColumns    = []string{"Chrom", "Gene", "Start", "End", "Length", "Tiles", "CN", "FD", "Pval", "MolCov", "ReadCov"}
	FusionColumns = []string{"Chrom", "Pos", "Genes", "Driver", "Partner", "Count", "Call"}
	SNVColumns    = []string{"Chrom", "Pos", "Ref", "Alt", "VAF", "LOD", "AmpCov", "MolRefCov", "MolAltCov", "ID", "Gene", "Transcript", "CDS", "AA", "Location", "Function"}
)

// CNVReports filters and projects copy-number results, one report per sample
// in natural name order, keys in natural variant order within each sample.
func (c *Criteria) CNVReports(results variant.Results) []Report {
	var reports []Report
	for _, sample := range variant.SortedSamples(results) {
		r := Report{Sample: sample}
		for _, key := range variant.SortedKeys(results[sample]) {
			f := results[sample][key]
			if !c.KeepCNV(key, f) {
				continue
			}
			r.Rows = append(r.Rows, []string{
				key.Chrom, key.Gene, strconv.Itoa(key.Pos),
				f["END"], f["LEN"], f["NUMTILES"], f["CN"], f["FD"], f["PVAL"], f["MMDP"], f["RMMDP"],
			})
		}
		reports = append(reports, r)
	}
	return reports
}

// FusionReports filters and projects fusion results. Control probe counts from
// the separately tracked control map are carried for the banner line.
func (c *Criteria) FusionReports(results, controls variant.Results) []Report {
	var reports []Report
	for _, sample := range variant.SortedSamples(results) {
		r := Report{Sample: sample, Controls: len(controls[sample])}
		for _, key := range variant.SortedKeys(results[sample]) {
			f := results[sample][key]
			if !c.KeepFusion(f) {
				continue
			}
			r.Rows = append(r.Rows, []string{
				key.Chrom, strconv.Itoa(key.Pos),
				f["GENES"], f["DRIVER"], f["PARTNER"], f["COUNT"], f["CALL"],
			})
		}
		reports = append(reports, r)
	}
	return reports
}

// SNVReports filters and projects SNV/indel results.
func (c *Criteria) SNVReports(results variant.Results) []Report {
	var reports []Report
	for _, sample := range variant.SortedSamples(results) {
		r := Report{Sample: sample}
		for _, key := range variant.SortedKeys(results[sample]) {
			f := results[sample][key]
			if !c.KeepSNV(f) {
				continue
			}
			r.Rows = append(r.Rows, []string{
				key.Chrom, strconv.Itoa(key.Pos),
				f["REF"], f["ALT"], f["VAF"], f["LOD"], f["AMPCOV"], f["MOLREFCOV"], f["MOLALTCOV"],
				f["ID"], f["GENE"], f["TRANSCRIPT"], f["CDS"], f["AA"], f["LOCATION"], f["FUNC"],
			})
		}
		reports = append(reports, r)
	}
	return reports
}
