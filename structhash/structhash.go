/*
Package structhash derives deterministic identifiers for secondary structure
records, in the spirit of content-addressed sequence databases: two records
with the same molecule and conformation get the same identifier no matter
what they are named or where they came from.
*/
package structhash

import (
	"encoding/hex"
	"fmt"
	"strings"

	"lukechampine.com/blake3"

	"github.com/rnalab/rnastruct/checks"
	"github.com/rnalab/rnastruct/secondarystructure"
)

// Molecule codes embedded in identifiers.
const (
	DNA     = "D"
	RNA     = "R"
	Unknown = "N"
)

// Hash returns the record's identifier: a version tag, a molecule code, and
// the hex encoded blake3 sum of the uppercased sequence and the canonical
// dot-bracket encoding of the conformation. The record's name does not
// participate, so renamed copies collide on purpose.
func Hash(record *secondarystructure.Record) (string, error) {
	dbn, err := record.DotBracket()
	if err != nil {
		return "", err
	}
	sequence := strings.ToUpper(record.Sequence)

	code := Unknown
	switch {
	case sequence == "":
	case checks.IsDNA(sequence):
		code = DNA
	case checks.IsRNA(sequence):
		code = RNA
	}

	sum := blake3.Sum256([]byte(sequence + "\n" + dbn))
	return fmt.Sprintf("v1_%s_%s", code, hex.EncodeToString(sum[:])), nil
}
