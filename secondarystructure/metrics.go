package secondarystructure

import (
	"errors"
	"math"
)

// ErrUnequalLength is returned by the distance functions when the two
// structures differ in length.
var ErrUnequalLength = errors.New("secondary structures must have the same length")

// MountainVector returns the mountain representation of a structure: a
// running height that climbs by 1 at each opening site, drops by 1 at each
// closing site, and stays flat across unpaired sites.
func MountainVector(s PairedSites) []float64 {
	paired := s.Pairing()
	mountain := make([]float64, len(paired))
	for i, j := range paired {
		if i > 0 {
			mountain[i] = mountain[i-1]
		}
		if j == 0 {
			continue
		}
		if j > int64(i) {
			mountain[i]++
		} else {
			mountain[i]--
		}
	}
	return mountain
}

// WeightedMountainVector returns the mountain representation with each paired
// site contributing the reciprocal of its pair's span, so local pairs weigh
// more than long-range ones. Closing sites contribute negatively through the
// sign of the span.
func WeightedMountainVector(s PairedSites) []float64 {
	paired := s.Pairing()
	mountain := make([]float64, len(paired))
	for i, j := range paired {
		if i > 0 {
			mountain[i] = mountain[i-1]
		}
		if j != 0 {
			mountain[i] += 1 / float64(j-int64(i))
		}
	}
	return mountain
}

// MountainDistance returns the distance between two structures of equal
// length: the sum over all sites of |h1-h2|^p, where h1 and h2 are the
// structures' mountain vectors. An exponent p of 1 gives the plain mountain
// metric.
func MountainDistance(a, b PairedSites, p float64) (float64, error) {
	pa, pb := a.Pairing(), b.Pairing()
	if len(pa) != len(pb) {
		return 0, ErrUnequalLength
	}
	m1, m2 := MountainVector(pa), MountainVector(pb)
	var distance float64
	for i := range m1 {
		distance += math.Pow(math.Abs(m1[i]-m2[i]), p)
	}
	return distance, nil
}

// WeightedMountainDistance returns the sum of absolute differences between
// the weighted mountain vectors of two structures of equal length.
func WeightedMountainDistance(a, b PairedSites) (float64, error) {
	pa, pb := a.Pairing(), b.Pairing()
	if len(pa) != len(pb) {
		return 0, ErrUnequalLength
	}
	m1, m2 := WeightedMountainVector(pa), WeightedMountainVector(pb)
	var distance float64
	for i := range m1 {
		distance += math.Abs(m1[i] - m2[i])
	}
	return distance, nil
}

// StructureStar returns the maximally nested structure of length n: site i
// pairs with site n-1-i from the outside in, leaving the smallest possible
// unpaired core of one site for odd n and two sites for even n. Together with
// StructureZero it realizes the diameter of the mountain metric space.
func StructureStar(n int) Pairing {
	paired := make(Pairing, n)
	upper := n/2 - (n+1)%2
	for i := 0; i < upper; i++ {
		j := n - i - 1
		paired[i] = int64(j) + 1
		paired[j] = int64(i) + 1
	}
	return paired
}

// StructureZero returns the structure of length n with every site unpaired.
func StructureZero(n int) Pairing {
	return make(Pairing, n)
}

// MountainDiameter returns the largest mountain distance with exponent p
// between any two structures of length n, which is the distance between
// StructureStar and StructureZero.
func MountainDiameter(n int, p float64) float64 {
	diameter, _ := MountainDistance(StructureStar(n), StructureZero(n), p)
	return diameter
}

// WeightedMountainDiameter is MountainDiameter for the weighted metric.
func WeightedMountainDiameter(n int) float64 {
	diameter, _ := WeightedMountainDistance(StructureStar(n), StructureZero(n))
	return diameter
}

// NormalizedMountainDistance returns the mountain distance scaled into
// [0, 1] by the diameter for the structures' length. At lengths of 2 or less
// the star structure has no pairs and the diameter is zero; the normalized
// distance is defined as 0 there.
func NormalizedMountainDistance(a, b PairedSites, p float64) (float64, error) {
	distance, err := MountainDistance(a, b, p)
	if err != nil {
		return 0, err
	}
	diameter := MountainDiameter(len(a.Pairing()), p)
	if diameter == 0 {
		return 0, nil
	}
	return distance / diameter, nil
}

// NormalizedWeightedMountainDistance is NormalizedMountainDistance for the
// weighted metric.
func NormalizedWeightedMountainDistance(a, b PairedSites) (float64, error) {
	distance, err := WeightedMountainDistance(a, b)
	if err != nil {
		return 0, err
	}
	diameter := WeightedMountainDiameter(len(a.Pairing()))
	if diameter == 0 {
		return 0, nil
	}
	return distance / diameter, nil
}
