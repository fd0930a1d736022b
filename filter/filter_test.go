package filter

import (
	"testing"

	"cfreport/variant"
)

func cnvField(pval, cn, fd, tiles string) variant.FieldSet {
	return variant.FieldSet{
		"END": "2000", "LEN": "1000", "NUMTILES": tiles,
		"CN": cn, "FD": fd, "HS": "No", "FUNC": ".",
		"PVAL": pval, "RMMDP": "1500", "MMDP": "160",
	}
}

func TestPvalGate(t *testing.T) {
	c := &Criteria{CopyAmp: 4, CopyLoss: 1}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	key := variant.Key{Chrom: "chr7", Pos: 100, Gene: "EGFR"}
	if c.KeepCNV(key, cnvField("1e-4", "9.0", "4.5", "20")) {
		t.Error("p-value above 5e-5 must exclude regardless of other values")
	}
	if !c.KeepCNV(key, cnvField("1e-6", "9.0", "4.5", "20")) {
		t.Error("record past the p-value gate and above the amp threshold should be kept")
	}
}

func TestNoThresholds(t *testing.T) {
	c := new(Criteria)
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	if c.Mode() != ModeNone {
		t.Error("no thresholds should select ModeNone")
	}
	key := variant.Key{Chrom: "chr2", Pos: 100, Gene: "ALK"}
	if !c.KeepCNV(key, cnvField("1e-6", "2.0", "1.0", "10")) {
		t.Error("ModeNone should keep every record past the p-value gate")
	}
	if c.KeepCNV(key, cnvField("1e-4", "2.0", "1.0", "10")) {
		t.Error("ModeNone must still honor the p-value gate")
	}
}

func TestGeneList(t *testing.T) {
	c := &Criteria{Genes: ParseGeneList("ALK,EGFR")}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	f := cnvField("1e-6", "2.0", "1.0", "10")
	if !c.KeepCNV(variant.Key{Chrom: "chr2", Pos: 1, Gene: "ALK"}, f) {
		t.Error("listed gene should be kept")
	}
	if c.KeepCNV(variant.Key{Chrom: "chr2", Pos: 1, Gene: "alk"}, f) {
		t.Error("gene matching is case-sensitive")
	}
	if c.KeepCNV(variant.Key{Chrom: "chr12", Pos: 1, Gene: "KRAS"}, f) {
		t.Error("unlisted gene should be excluded")
	}

	empty := &Criteria{Genes: ParseGeneList("")}
	if err := empty.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	if !empty.KeepCNV(variant.Key{Chrom: "chr12", Pos: 1, Gene: "KRAS"}, f) {
		t.Error("empty allow-list should not restrict genes")
	}
}

func TestModeConflict(t *testing.T) {
	c := &Criteria{CopyAmp: 4, CopyLoss: 1, FoldAmp: 2, FoldLoss: 0.5}
	if err := c.ChooseMode(); err == nil {
		t.Error("complete fold and copy threshold pairs together must be a configuration error")
	}

	// an incomplete fold pair does not conflict with a complete copy pair
	c = &Criteria{CopyAmp: 4, CopyLoss: 1, FoldAmp: 2}
	if err := c.ChooseMode(); err != nil {
		t.Error("incomplete fold pair should not conflict:", err)
	}
	if c.Mode() != ModeCopy {
		t.Error("complete copy pair should select ModeCopy")
	}

	c = &Criteria{FoldAmp: 2, FoldLoss: 0.5}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	if c.Mode() != ModeFold {
		t.Error("complete fold pair should select ModeFold")
	}
}

func TestCopyWindow(t *testing.T) {
	c := &Criteria{CopyAmp: 4, CopyLoss: 1}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}

	sample := variant.Sample{Name: "S1"}
	results := variant.Results{
		sample: {
			{Chrom: "chr7", Pos: 100, Gene: "EGFR"}: cnvField("1e-6", "5.0", "2.4", "20"),
			{Chrom: "chr2", Pos: 200, Gene: "ALK"}:  cnvField("1e-6", "1.5", "0.8", "20"),
			{Chrom: "chr12", Pos: 50, Gene: "KRAS"}: cnvField("1e-4", "9.0", "4.0", "20"),
		},
	}
	reports := c.CNVReports(results)
	if len(reports) != 1 {
		t.Fatal("expected 1 report, got", len(reports))
	}
	if len(reports[0].Rows) != 1 {
		t.Fatal("expected exactly the amplified record, got", len(reports[0].Rows), "rows")
	}
	row := reports[0].Rows[0]
	if row[0] != "chr7" || row[1] != "EGFR" || row[6] != "5.0" {
		t.Error("wrong record survived the copy-number window:", row)
	}
}

func TestFoldWindow(t *testing.T) {
	c := &Criteria{FoldAmp: 2, FoldLoss: 0.5}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	key := variant.Key{Chrom: "chr7", Pos: 100, Gene: "EGFR"}
	if !c.KeepCNV(key, cnvField("1e-6", "2.0", "2.4", "20")) {
		t.Error("fold difference above foldAmp should be kept")
	}
	if !c.KeepCNV(key, cnvField("1e-6", "2.0", "0.3", "20")) {
		t.Error("fold difference below foldLoss should be kept")
	}
	if c.KeepCNV(key, cnvField("1e-6", "9.0", "1.0", "20")) {
		t.Error("fold difference inside the window should be excluded even with high CN")
	}
}

func TestMinTiles(t *testing.T) {
	c := &Criteria{MinTiles: 10}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	key := variant.Key{Chrom: "chr2", Pos: 1, Gene: "ALK"}
	if c.KeepCNV(key, cnvField("1e-6", "2.0", "1.0", "5")) {
		t.Error("record below the tile count threshold should be excluded")
	}
	if !c.KeepCNV(key, cnvField("1e-6", "2.0", "1.0", "10")) {
		t.Error("record at the tile count threshold should be kept")
	}
}

func fusionField(driver, partner, count, call, annot string) variant.FieldSet {
	return variant.FieldSet{
		"GENES": driver + "-" + partner + ".J1.1", "DRIVER": driver, "PARTNER": partner,
		"COUNT": count, "CALL": call, "ANNOT": annot,
	}
}

func TestKeepFusion(t *testing.T) {
	c := &Criteria{MinCount: 50}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	if c.KeepFusion(fusionField("ALK", "EML4", "5", "PASS", ".")) {
		t.Error("fusion below the read count threshold should be excluded")
	}
	if !c.KeepFusion(fusionField("ALK", "EML4", "112", "PASS", ".")) {
		t.Error("fusion above the read count threshold should be kept")
	}
	if c.KeepFusion(fusionField("ALK", "EML4", "112", "NOCALL", ".")) {
		t.Error("NOCALL fusion should be excluded by default")
	}
	if c.KeepFusion(fusionField("ALK", "EML4", "112", "FAIL", ".")) {
		t.Error("FAIL fusion should be excluded by default")
	}
	if c.KeepFusion(fusionField("ALK", "EML4", "112", "PASS", "Non-Targeted")) {
		t.Error("non-targeted fusion should be excluded by default")
	}

	c.IncludeNocall = true
	c.IncludeNovel = true
	if !c.KeepFusion(fusionField("ALK", "EML4", "112", "NOCALL", "Non-Targeted")) {
		t.Error("NOCALL and non-targeted fusions should be kept when requested")
	}
}

func TestFusionGeneListDriverOnly(t *testing.T) {
	c := &Criteria{Genes: ParseGeneList("ALK")}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	if !c.KeepFusion(fusionField("ALK", "EML4", "112", "PASS", ".")) {
		t.Error("driver in allow-list should be kept")
	}
	if c.KeepFusion(fusionField("RET", "ALK", "112", "PASS", ".")) {
		t.Error("allow-list applies to the driver gene only")
	}
}

func snvField(gene, ref, alt, vaf, molAlt string) variant.FieldSet {
	return variant.FieldSet{
		"REF": ref, "ALT": alt, "VAF": vaf, "LOD": "0.001",
		"AMPCOV": "1800", "MOLREFCOV": "4000", "MOLALTCOV": molAlt,
		"ID": "COSM1", "GENE": gene, "TRANSCRIPT": "NM_1", "CDS": "c.1A>T",
		"AA": "p.M1L", "LOCATION": "exonic", "FUNC": "missense",
	}
}

func TestKeepSNV(t *testing.T) {
	c := &Criteria{MinMolCov: 5, MinVaf: 0.001}
	if err := c.ChooseMode(); err != nil {
		t.Fatal(err)
	}
	if !c.KeepSNV(snvField("EGFR", "C", "T", "0.004", "17")) {
		t.Error("record above both thresholds should be kept")
	}
	if c.KeepSNV(snvField("EGFR", "C", "T", "0.004", "3")) {
		t.Error("record below the molecular coverage threshold should be excluded")
	}
	if c.KeepSNV(snvField("EGFR", "C", "T", "0.0001", "17")) {
		t.Error("record below the VAF threshold should be excluded")
	}
	if c.KeepSNV(snvField("EGFR", "C", "C", "0.004", "17")) {
		t.Error("reference call should be excluded by default")
	}
	c.IncludeRef = true
	if !c.KeepSNV(snvField("EGFR", "C", "C", "0.004", "17")) {
		t.Error("reference call should be kept when requested")
	}
}
