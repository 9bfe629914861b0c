/*
Package checks provides utilities to check for certain properties of a sequence.
*/
package checks

import (
	"strings"

	"github.com/rnalab/rnastruct/secondarystructure"
)

// GcContent checks the GcContent of a given sequence.
func GcContent(sequence string) float64 {
	sequence = strings.ToUpper(sequence)
	GuanineCount := strings.Count(sequence, "G")
	CytosineCount := strings.Count(sequence, "C")
	GuanineAndCytosinePercentage := float64(GuanineCount+CytosineCount) / float64(len(sequence))
	return GuanineAndCytosinePercentage
}

func IsDNA(seq string) bool {
	for _, base := range seq {
		switch base {
		case 'A', 'C', 'T', 'G':
			continue
		default:
			return false
		}
	}
	return true
}

// accepts a string and checks if it is a valid RNA sequence.
func IsRNA(seq string) bool {
	for _, base := range seq {
		switch base {
		case 'A', 'C', 'U', 'G':
			continue
		default:
			return false
		}
	}
	return true
}

// accepts a string and checks if it uses valid dot-bracket notation,
// including the extra bracket classes pseudoknotted structures are written
// with. See the secondarystructure package for how the notation is decoded;
// a true here does not mean the brackets are balanced.
func IsValidDotBracketStructure(seq string) bool {
	for _, base := range seq {
		if base == '.' ||
			strings.ContainsRune(secondarystructure.LeftBrackets, base) ||
			strings.ContainsRune(secondarystructure.RightBrackets, base) {
			continue
		}
		return false
	}
	return true
}
