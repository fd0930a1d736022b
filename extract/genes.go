package extract

// driverGenes is the reference list of known fusion driver genes for the panel.
var driverGenes = map[string]bool{
	"ABL1":   true,
	"AKT2":   true,
	"AKT3":   true,
	"ALK":    true,
	"AR":     true,
	"AXL":    true,
	"BRAF":   true,
	"BRCA1":  true,
	"BRCA2":  true,
	"CDK4":   true,
	"CDK6":   true,
	"EGFR":   true,
	"ERBB2":  true,
	"ERBB4":  true,
	"ERG":    true,
	"ESR1":   true,
	"ETV1":   true,
	"ETV4":   true,
	"ETV5":   true,
	"FGFR1":  true,
	"FGFR2":  true,
	"FGFR3":  true,
	"FGFR4":  true,
	"FGR":    true,
	"FLT3":   true,
	"JAK2":   true,
	"KIT":    true,
	"KRAS":   true,
	"MDM4":   true,
	"MET":    true,
	"MYB":    true,
	"MYBL1":  true,
	"MYC":    true,
	"NOTCH1": true,
	"NOTCH4": true,
	"NRG1":   true,
	"NTRK1":  true,
	"NTRK2":  true,
	"NTRK3":  true,
	"NUTM1":  true,
	"PDGFRA": true,
	"PDGFRB": true,
	"PIK3CA": true,
	"PPARG":  true,
	"PRKACA": true,
	"PRKACB": true,
	"RAD51B": true,
	"RAF1":   true,
	"RELA":   true,
	"RET":    true,
	"ROS1":   true,
	"RSPO2":  true,
	"RSPO3":  true,
	"TERT":   true,
	"TFE3":   true,
	"TFEB":   true,
	"THADA":  true,
	"VEGFA":  true,
	"YAP1":   true,
	"YES1":   true,
}
