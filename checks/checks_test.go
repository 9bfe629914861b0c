package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rnalab/rnastruct/checks"
)

func TestGcContent(t *testing.T) {
	assert.Equal(t, 1.0, checks.GcContent("GGCC"))
	assert.Equal(t, 0.5, checks.GcContent("GCAU"))
	assert.Equal(t, 0.5, checks.GcContent("gcau"))
	assert.Equal(t, 0.0, checks.GcContent("AUAU"))
}

func TestIsDNA(t *testing.T) {
	assert.True(t, checks.IsDNA("ACTG"))
	assert.False(t, checks.IsDNA("ACUG"))
	assert.False(t, checks.IsDNA("ACXG"))
}

func TestIsRNA(t *testing.T) {
	assert.True(t, checks.IsRNA("ACUG"))
	assert.False(t, checks.IsRNA("ACTG"))
	assert.False(t, checks.IsRNA("NNNN"))
}

func TestIsValidDotBracketStructure(t *testing.T) {
	assert.True(t, checks.IsValidDotBracketStructure("((..))"))
	assert.True(t, checks.IsValidDotBracketStructure("<<[..AA..]>>aa.."))
	assert.True(t, checks.IsValidDotBracketStructure(""))

	// Only the symbol set is checked, not bracket balance.
	assert.True(t, checks.IsValidDotBracketStructure("((("))
	assert.False(t, checks.IsValidDotBracketStructure("((8))"))
	assert.False(t, checks.IsValidDotBracketStructure("(-)"))
}
