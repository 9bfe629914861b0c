/*
Package randstruct generates random secondary structures and sequences for
test corpora and simulations. Per-site decisions run through weighted
choosers, so pair density and GC content are tunable, and every generator is
deterministic for a fixed seed.
*/
package randstruct

import (
	"math/rand"

	weightedRand "github.com/mroth/weightedrand"

	"github.com/rnalab/rnastruct/secondarystructure"
)

// Options tune the generators. The zero value is usable: even odds of
// opening a pair at every eligible site, no minimum gap, balanced GC, seed
// 0.
type Options struct {
	// PairWeight and UnpairedWeight set the relative odds of opening a pair
	// at a site that still has eligible partners. Both zero means even odds.
	PairWeight     uint
	UnpairedWeight uint

	// MinGap is the minimum number of sites a pair must enclose.
	MinGap int

	// GC is the percentage weight of G and C when filling sequences, capped
	// at 100. Zero means the balanced 50.
	GC uint

	// Seed fixes the random stream.
	Seed int64
}

type siteState int

const (
	stateUnpaired siteState = iota
	statePaired
)

func pairChooser(opt Options) (*weightedRand.Chooser, error) {
	pair, unpaired := opt.PairWeight, opt.UnpairedWeight
	if pair == 0 && unpaired == 0 {
		pair, unpaired = 1, 1
	}
	return weightedRand.NewChooser(
		weightedRand.Choice{Item: statePaired, Weight: pair},
		weightedRand.Choice{Item: stateUnpaired, Weight: unpaired},
	)
}

func nucleotideChooser(opt Options) (*weightedRand.Chooser, error) {
	gc := opt.GC
	if gc == 0 {
		gc = 50
	}
	if gc > 100 {
		gc = 100
	}
	au := 100 - gc
	return weightedRand.NewChooser(
		weightedRand.Choice{Item: byte('A'), Weight: au},
		weightedRand.Choice{Item: byte('U'), Weight: au},
		weightedRand.Choice{Item: byte('G'), Weight: gc},
		weightedRand.Choice{Item: byte('C'), Weight: gc},
	)
}

// Pairing returns a random conformation over n sites. Partners are drawn
// uniformly among the still-free downstream sites, so crossing pairs arise
// naturally; use NestedPairing for pseudoknot-free structures.
func Pairing(n int, opt Options) (secondarystructure.Pairing, error) {
	rng := rand.New(rand.NewSource(opt.Seed))
	return pairing(n, opt, rng, false)
}

// NestedPairing returns a random conformation over n sites in which no two
// pairs cross.
func NestedPairing(n int, opt Options) (secondarystructure.Pairing, error) {
	rng := rand.New(rand.NewSource(opt.Seed))
	return pairing(n, opt, rng, true)
}

func pairing(n int, opt Options, rng *rand.Rand, nested bool) (secondarystructure.Pairing, error) {
	chooser, err := pairChooser(opt)
	if err != nil {
		return nil, err
	}
	if opt.MinGap < 0 {
		opt.MinGap = 0
	}

	paired := make(secondarystructure.Pairing, n)
	// Closing positions of the currently open pairs, innermost last. Only
	// maintained in nested mode, where new pairs may not reach past the
	// innermost open one.
	var bounds []int
	for i := 0; i < n; i++ {
		if len(bounds) > 0 && bounds[len(bounds)-1] == i {
			bounds = bounds[:len(bounds)-1]
			continue
		}
		if paired[i] != 0 {
			continue
		}
		limit := n
		if nested && len(bounds) > 0 {
			limit = bounds[len(bounds)-1]
		}
		var candidates []int
		for j := i + opt.MinGap + 1; j < limit; j++ {
			if paired[j] == 0 {
				candidates = append(candidates, j)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		if chooser.PickSource(rng).(siteState) != statePaired {
			continue
		}
		j := candidates[rng.Intn(len(candidates))]
		paired[i] = int64(j) + 1
		paired[j] = int64(i) + 1
		if nested {
			bounds = append(bounds, j)
		}
	}
	return paired, nil
}

// Sequence returns a random RNA sequence of length n with the GC share set
// by Options.GC.
func Sequence(n int, opt Options) (string, error) {
	rng := rand.New(rand.NewSource(opt.Seed))
	return sequence(n, opt, rng)
}

func sequence(n int, opt Options, rng *rand.Rand) (string, error) {
	chooser, err := nucleotideChooser(opt)
	if err != nil {
		return "", err
	}
	bases := make([]byte, n)
	for i := range bases {
		bases[i] = chooser.PickSource(rng).(byte)
	}
	return string(bases), nil
}

// Record returns an anonymous record with a random conformation and a
// random sequence of the same length, both drawn from one random stream.
func Record(n int, opt Options) (*secondarystructure.Record, error) {
	rng := rand.New(rand.NewSource(opt.Seed))
	paired, err := pairing(n, opt, rng, false)
	if err != nil {
		return nil, err
	}
	seq, err := sequence(n, opt, rng)
	if err != nil {
		return nil, err
	}
	record := secondarystructure.New(paired)
	record.SetSequence(seq)
	return record, nil
}
