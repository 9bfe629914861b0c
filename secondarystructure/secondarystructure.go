/*
Package secondarystructure models RNA and DNA secondary structures: the set of
base-pairing relationships along a nucleotide sequence, independent of how the
structure was determined.

The canonical representation is the Pairing list, where entry i holds the
1-based position of the site paired with site i, or 0 if site i is unpaired.
Dot-bracket strings, including arbitrarily pseudoknotted ones written with
multiple bracket classes, are a derived view produced by DotBracket and decoded
by ParseDotBracket. The package also classifies structures as pseudoknotted or
not and measures distances between structures of equal length with the mountain
metric family.
*/
package secondarystructure

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Pairing lists, for every site of a structure, the 1-based position of its
// base-pairing partner. A value of 0 marks an unpaired site. A valid Pairing
// is symmetric: if entry i holds j != 0 then entry j-1 holds i+1, and no site
// pairs with itself.
type Pairing []int64

// Pairing returns the list itself, satisfying PairedSites.
func (p Pairing) Pairing() Pairing { return p }

// PairedSites is the read-only view of an arbitrarily pseudoknotted secondary
// structure conformation. Both Pairing and *Record satisfy it, so either can
// be passed anywhere a structure is expected.
type PairedSites interface {
	Pairing() Pairing
}

// Equal reports whether two structures have the same conformation, site for
// site.
func Equal(a, b PairedSites) bool {
	return slices.Equal(a.Pairing(), b.Pairing())
}

// Record bundles a secondary structure conformation with a name and a
// nucleotide sequence. Name may be empty for anonymous structures. No
// invariant ties Sequence to Paired beyond equal length, which the file
// writers check before rendering.
type Record struct {
	// Name is a free-form label for this record.
	Name string
	// Sequence holds one nucleotide character per site.
	Sequence string
	// Paired is the structure conformation as a list of paired sites.
	Paired Pairing
}

// New returns a Record for the given conformation with an empty name and a
// placeholder sequence of N's of the same length.
func New(paired Pairing) *Record {
	return &Record{
		Sequence: strings.Repeat("N", len(paired)),
		Paired:   paired,
	}
}

// Parse decodes a dot-bracket string into a Record with a placeholder
// sequence of the same length.
func Parse(dbn string) (*Record, error) {
	paired, err := ParseDotBracket(dbn)
	if err != nil {
		return nil, err
	}
	return New(paired), nil
}

// SetSequence replaces the record's nucleotide sequence.
func (r *Record) SetSequence(sequence string) { r.Sequence = sequence }

// SetPaired replaces the record's structure conformation.
func (r *Record) SetPaired(paired Pairing) { r.Paired = paired }

// Pairing returns the record's conformation, satisfying PairedSites.
func (r *Record) Pairing() Pairing { return r.Paired }

// DotBracket returns the dot-bracket string for the record's conformation.
func (r *Record) DotBracket() (string, error) { return DotBracket(r) }

// IsPseudoknotted reports whether the record's conformation contains crossing
// base pairs.
func (r *Record) IsPseudoknotted() (bool, error) { return IsPseudoknotted(r) }

// MountainDistance returns the mountain distance with exponent p between this
// record's conformation and another structure of the same length.
func (r *Record) MountainDistance(other PairedSites, p float64) (float64, error) {
	return MountainDistance(r, other, p)
}

// MarshalText renders the record in its three-line display form: a ">" headed
// name line, the sequence line, and the dot-bracket line. This is the exact
// form written and read back by the io/dbn package.
func (r *Record) MarshalText() ([]byte, error) {
	dbn, err := DotBracket(r)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(">%s\n%s\n%s", r.Name, r.Sequence, dbn)), nil
}
