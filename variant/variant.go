// Package variant defines the shared data model for cfDNA panel reports:
// per-record identity keys, extracted field sets, and per-file sample identity.
package variant

import (
	"fmt"
	"strconv"
)

// Key identifies one variant record within a single sample's result set.
// Gene is empty for record types keyed on position alone.
type Key struct {
	Chrom string
	Pos   int
	Gene  string
}

func (k Key) String() string {
	if k.Gene == "" {
		return fmt.Sprintf("%s:%d", k.Chrom, k.Pos)
	}
	return fmt.Sprintf("%s:%d:%s", k.Chrom, k.Pos, k.Gene)
}

// FieldSet maps field names to extracted values for one record. Every record
// of a given type carries the same field vocabulary; fields missing from the
// input are filled with a sentinel ("No", "." or "0") at extraction time.
type FieldSet map[string]string

// Float returns the named field parsed as a float64, or 0 if absent or unparsable.
func (f FieldSet) Float(name string) float64 {
	val, err := strconv.ParseFloat(f[name], 64)
	if err != nil {
		return 0
	}
	return val
}

// Int returns the named field parsed as an int, or 0 if absent or unparsable.
func (f FieldSet) Int(name string) int {
	val, err := strconv.Atoi(f[name])
	if err != nil {
		return 0
	}
	return val
}

// Sample identifies the output of one input file. Metadata fields not present
// in a file's header are empty strings. Comparable, so it can key a map.
type Sample struct {
	Name        string
	Gender      string
	Mapd        string
	Cellularity string
	Timestamp   string
}

// Results holds the merged output of all workers: each sample's mapping from
// variant key to extracted fields. Built once by the dispatcher merge step and
// read-only afterward.
type Results map[Sample]map[Key]FieldSet
