package secondarystructure_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnalab/rnastruct/secondarystructure"
)

func TestIsPseudoknotted(t *testing.T) {
	tests := []struct {
		dbn  string
		want bool
	}{
		{"", false},
		{"...", false},
		{"(((...)))", false},
		{"((..))..((...))", false},
		{"<<<..<<<.<..>>.>..>..>...<<...>..>>.>", false},
		{"<<<..((.>>>....))", true},
		{"A..<<<..a...>>>....", true},
		{"<((..)..).A>..a", true},
	}
	for _, tt := range tests {
		paired, err := secondarystructure.ParseDotBracket(tt.dbn)
		require.NoError(t, err, tt.dbn)

		got, err := secondarystructure.IsPseudoknotted(paired)
		assert.NoError(t, err, tt.dbn)
		assert.Equal(t, tt.want, got, tt.dbn)
	}
}

func TestIsPseudoknottedSingleClassNeverKnotted(t *testing.T) {
	// A structure writable with one bracket class has no crossing pairs.
	for _, dbn := range []string{
		"((.)())",
		"(((((....)))))",
		"().().()",
	} {
		paired, err := secondarystructure.ParseDotBracket(dbn)
		require.NoError(t, err, dbn)

		knotted, err := secondarystructure.IsPseudoknotted(paired)
		assert.NoError(t, err, dbn)
		assert.False(t, knotted, dbn)
	}
}

func TestIsPseudoknottedIntegrity(t *testing.T) {
	_, err := secondarystructure.IsPseudoknotted(secondarystructure.Pairing{0, 1})
	assert.True(t, errors.Is(err, secondarystructure.ErrPrematureClosure))

	_, err = secondarystructure.IsPseudoknotted(secondarystructure.Pairing{2, 0})
	assert.True(t, errors.Is(err, secondarystructure.ErrUnconsumedOpenings))
}
