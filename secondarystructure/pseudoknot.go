package secondarystructure

import "errors"

// Integrity failures raised when a pairing list is not self-symmetric. They
// signal a malformed caller-supplied Pairing, not a property of the
// structure.
var (
	// ErrPrematureClosure: a closing site was reached although every opening
	// to its left has already been consumed.
	ErrPrematureClosure = errors.New("paired sites to the left have already been consumed")

	// ErrUnconsumedOpenings: the end of the structure was reached with
	// opening sites still unconsumed.
	ErrUnconsumedOpenings = errors.New("paired sites to the left have not been consumed")
)

// IsPseudoknotted reports whether the structure contains crossing base pairs,
// that is pairs (i, j) and (k, l) with i < k < j < l. Only the conformation
// is inspected; the bracket classes of any textual form play no role.
func IsPseudoknotted(s PairedSites) (bool, error) {
	paired := s.Pairing()

	var stack []int64
	for i, j := range paired {
		switch {
		case j == 0:
		case int64(i) < j:
			// An opening site whose partner lies at or beyond the innermost
			// open pair's partner crosses that pair.
			if len(stack) > 0 && j >= stack[len(stack)-1] {
				return true, nil
			}
			stack = append(stack, j)
		default:
			if len(stack) == 0 {
				return false, ErrPrematureClosure
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return false, ErrUnconsumedOpenings
	}
	return false, nil
}
