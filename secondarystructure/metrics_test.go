package secondarystructure_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnalab/rnastruct/secondarystructure"
)

func mustParse(t *testing.T, dbn string) secondarystructure.Pairing {
	t.Helper()
	paired, err := secondarystructure.ParseDotBracket(dbn)
	require.NoError(t, err, dbn)
	return paired
}

func TestMountainVector(t *testing.T) {
	tests := []struct {
		dbn  string
		want []float64
	}{
		{"", []float64{}},
		{"...", []float64{0, 0, 0}},
		{"(((...)))", []float64{1, 2, 3, 3, 3, 3, 2, 1, 0}},
		{".((...)).", []float64{0, 1, 2, 2, 2, 2, 1, 0, 0}},
	}
	for _, tt := range tests {
		got := secondarystructure.MountainVector(mustParse(t, tt.dbn))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("MountainVector(%q) mismatch (-want +got):\n%s", tt.dbn, diff)
		}
	}
}

func TestWeightedMountainVector(t *testing.T) {
	// One pair across the whole strand: the opening side adds 1/4 at every
	// covered site, the closing site subtracts 1/2. Exact in binary.
	got := secondarystructure.WeightedMountainVector(mustParse(t, "(..)"))
	want := []float64{0.25, 0.25, 0.25, -0.25}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WeightedMountainVector mismatch (-want +got):\n%s", diff)
	}
}

func TestMountainDistance(t *testing.T) {
	a := mustParse(t, "(((...)))")
	b := mustParse(t, ".((...)).")

	distance, err := secondarystructure.MountainDistance(a, a, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)

	distance, err = secondarystructure.MountainDistance(a, b, 1)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, distance)

	// The metric is symmetric.
	reverse, err := secondarystructure.MountainDistance(b, a, 1)
	assert.NoError(t, err)
	assert.Equal(t, distance, reverse)
}

func TestMountainDistanceUnequalLength(t *testing.T) {
	_, err := secondarystructure.MountainDistance(
		secondarystructure.StructureZero(3), secondarystructure.StructureZero(4), 1)
	assert.True(t, errors.Is(err, secondarystructure.ErrUnequalLength))

	_, err = secondarystructure.WeightedMountainDistance(
		secondarystructure.StructureZero(3), secondarystructure.StructureZero(4))
	assert.True(t, errors.Is(err, secondarystructure.ErrUnequalLength))
}

func TestStructureStar(t *testing.T) {
	tests := []struct {
		n    int
		want secondarystructure.Pairing
	}{
		{0, secondarystructure.Pairing{}},
		{1, secondarystructure.Pairing{0}},
		{2, secondarystructure.Pairing{0, 0}},
		{3, secondarystructure.Pairing{3, 0, 1}},
		{9, mustParse(t, "((((.))))")},
		{10, mustParse(t, "((((..))))")},
	}
	for _, tt := range tests {
		got := secondarystructure.StructureStar(tt.n)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("StructureStar(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}

func TestStructureZero(t *testing.T) {
	zero := secondarystructure.StructureZero(4)
	assert.Equal(t, secondarystructure.Pairing{0, 0, 0, 0}, zero)

	knotted, err := secondarystructure.IsPseudoknotted(zero)
	assert.NoError(t, err)
	assert.False(t, knotted)
}

func TestMountainDiameter(t *testing.T) {
	assert.Equal(t, 24.0, secondarystructure.MountainDiameter(10, 1))
	assert.Equal(t, 76.0, secondarystructure.MountainDiameter(10, 2))

	// Too short for any base pair, so every distance is zero.
	assert.Equal(t, 0.0, secondarystructure.MountainDiameter(0, 1))
	assert.Equal(t, 0.0, secondarystructure.MountainDiameter(2, 1))
}

func TestWeightedMountainDiameter(t *testing.T) {
	// Star of length 4 pairs the outermost sites only: its weighted vector
	// is [1/4, 1/4, 1/4, -1/4], which sums to 1 against the flat structure.
	assert.Equal(t, 1.0, secondarystructure.WeightedMountainDiameter(4))
	assert.Equal(t, 0.0, secondarystructure.WeightedMountainDiameter(2))
}

func TestNormalizedMountainDistance(t *testing.T) {
	star := secondarystructure.StructureStar(100)
	zero := secondarystructure.StructureZero(100)

	distance, err := secondarystructure.NormalizedMountainDistance(star, zero, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, distance)

	distance, err = secondarystructure.NormalizedMountainDistance(star, star, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)

	distance, err = secondarystructure.NormalizedMountainDistance(zero, zero, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)
}

func TestNormalizedMountainDistanceDegenerateLength(t *testing.T) {
	// Lengths up to 2 have diameter zero; the normalized distance is 0 by
	// definition instead of 0/0.
	distance, err := secondarystructure.NormalizedMountainDistance(
		secondarystructure.StructureZero(2), secondarystructure.StructureZero(2), 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)

	distance, err = secondarystructure.NormalizedWeightedMountainDistance(
		secondarystructure.StructureZero(1), secondarystructure.StructureZero(1))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)
}

func TestNormalizedWeightedMountainDistance(t *testing.T) {
	star := secondarystructure.StructureStar(4)
	zero := secondarystructure.StructureZero(4)

	distance, err := secondarystructure.NormalizedWeightedMountainDistance(star, zero)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, distance)

	distance, err = secondarystructure.NormalizedWeightedMountainDistance(zero, zero)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)
}

func TestDistancesAcceptMixedArguments(t *testing.T) {
	record, err := secondarystructure.Parse("(((...)))")
	require.NoError(t, err)

	distance, err := secondarystructure.MountainDistance(record, mustParse(t, ".((...))."), 1)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, distance)
}
