/*
Package combinatorics counts secondary structures.
*/
package combinatorics

import "math/big"

// CountStructures returns the number of distinct non-pseudoknotted secondary
// structures of the given length in which every base pair encloses at least
// minGap sites. Counts grow exponentially with length, hence the big.Int
// result. A negative minGap counts like 0, and with minGap 0 the counts are
// the Motzkin numbers.
func CountStructures(length, minGap int) *big.Int {
	if minGap < 0 {
		minGap = 0
	}
	if length < 0 {
		length = 0
	}

	// counts[n] is the number of structures over n sites. The last site is
	// either unpaired, or paired with site k, splitting the strand into the
	// k-1 sites before and the n-k-1 sites inside the pair.
	counts := make([]*big.Int, length+1)
	one := big.NewInt(1)
	for n := 0; n <= length; n++ {
		if n <= minGap {
			counts[n] = one
			continue
		}
		total := new(big.Int).Set(counts[n-1])
		for k := 1; k < n-minGap; k++ {
			total.Add(total, new(big.Int).Mul(counts[k-1], counts[n-k-1]))
		}
		counts[n] = total
	}
	return counts[length]
}
