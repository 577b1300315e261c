// Package isotope selects the most common naturally occurring isotope of a
// chemical element from a read-only table of isotope masses and abundances.
package isotope

import (
	"errors"
	"fmt"
)

// DummySymbol is the placeholder atom used in structural notations (e.g. a
// Z-matrix) when the atom identity is unspecified. It has no physical
// isotope and never appears in a table.
const DummySymbol = "X"

var (
	// ErrUnknownSymbol reports a symbol missing from the table.
	ErrUnknownSymbol = errors.New("unknown element symbol")
	// ErrNoIsotopes reports a symbol present in the table with no records.
	ErrNoIsotopes = errors.New("element has no isotope records")
)

// Record is one isotope of an element. Abundance is the natural mole
// fraction and is meaningful only when HasAbundance is set.
type Record struct {
	MassNumber   int
	ExactMass    float64 // Da
	Abundance    float64
	HasAbundance bool
}

// WithAbundance builds a record whose natural abundance is known.
func WithAbundance(massNumber int, exactMass, abundance float64) Record {
	return Record{
		MassNumber:   massNumber,
		ExactMass:    exactMass,
		Abundance:    abundance,
		HasAbundance: true,
	}
}

// MassOnly builds a record for an element without abundance data, such as
// one with no stable isotope.
func MassOnly(massNumber int, exactMass float64) Record {
	return Record{MassNumber: massNumber, ExactMass: exactMass}
}

// Table maps an element symbol ("C", "Fe") to its isotopes in ascending
// mass-number order. Within one element every record carries the same
// HasAbundance value. A table is never mutated after construction, so it is
// safe to share across goroutines.
type Table map[string][]Record

// MostCommon returns the mass number of the most abundant naturally
// occurring isotope of symbol. ok is false only for the dummy atom "X".
//
// When the element carries no abundance data, the table's first listed
// isotope is taken as canonical. On a tie in abundance the earliest record
// wins (stable scan, no reordering).
func MostCommon(symbol string, t Table) (mass int, ok bool, err error) {
	if symbol == DummySymbol {
		return 0, false, nil
	}
	recs, found := t[symbol]
	if !found {
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	if len(recs) == 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrNoIsotopes, symbol)
	}
	best := recs[0]
	if best.HasAbundance {
		for _, r := range recs[1:] {
			if r.Abundance > best.Abundance {
				best = r
			}
		}
	}
	return best.MassNumber, true, nil
}
