package variant

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CompareNatural orders two strings treating runs of digits as numbers so that
// "chr2" sorts before "chr10". Returns -1, 0, or 1 in the manner of strings.Compare.
func CompareNatural(a, b string) int {
	var ai, bi int
	for ai < len(a) && bi < len(b) {
		if isDigit(a[ai]) && isDigit(b[bi]) {
			aNum, aNext := digitRun(a, ai)
			bNum, bNext := digitRun(b, bi)
			if aNum != bNum {
				if aNum < bNum {
					return -1
				}
				return 1
			}
			ai, bi = aNext, bNext
			continue
		}
		if a[ai] != b[bi] {
			if a[ai] < b[bi] {
				return -1
			}
			return 1
		}
		ai++
		bi++
	}
	return strings.Compare(a[ai:], b[bi:])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitRun parses the run of digits starting at i, returning the value and the
// index one past the run. Leading zeros are not significant.
func digitRun(s string, i int) (val int, next int) {
	for next = i; next < len(s) && isDigit(s[next]); next++ {
		val = val*10 + int(s[next]-'0')
	}
	return val, next
}

// CompareKeys orders variant keys by natural chromosome order, then position,
// then gene symbol.
func CompareKeys(a, b Key) int {
	if c := CompareNatural(a.Chrom, b.Chrom); c != 0 {
		return c
	}
	if a.Pos != b.Pos {
		if a.Pos < b.Pos {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Gene, b.Gene)
}

// SortedSamples returns the samples in r ordered naturally by name.
func SortedSamples(r Results) []Sample {
	samples := maps.Keys(r)
	slices.SortFunc(samples, func(a, b Sample) int {
		if c := CompareNatural(a.Name, b.Name); c != 0 {
			return c
		}
		return CompareNatural(a.Timestamp, b.Timestamp)
	})
	return samples
}

// SortedKeys returns the keys of one sample's record map in natural order.
func SortedKeys(records map[Key]FieldSet) []Key {
	keys := maps.Keys(records)
	slices.SortFunc(keys, CompareKeys)
	return keys
}
