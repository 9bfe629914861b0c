package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want format
	}{
		{"structures.ct", formatCT},
		{"STRUCTURES.CT", formatCT},
		{"x/y/fam.dbn", formatDBN},
		{"notes.dot", formatDBN},
		{"Rfam.seed", formatRfam},
		{"Rfam.seed.gz", formatRfam},
		{"align.sto", formatRfam},
	}
	for _, tt := range tests {
		got, err := detectFormat(tt.path)
		assert.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := detectFormat("structures.txt")
	assert.Error(t, err)
}

func TestResolveFormat(t *testing.T) {
	got, err := resolveFormat("x.ct", formatAuto)
	assert.NoError(t, err)
	assert.Equal(t, formatCT, got)

	got, err = resolveFormat("whatever.bin", formatDBN)
	assert.NoError(t, err)
	assert.Equal(t, formatDBN, got)

	_, err = resolveFormat("x.ct", format("fasta"))
	assert.Error(t, err)
}

func TestLoadJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yml")
	content := `- input: a.ct
  output: a.dbn
- input: b.seed.gz
  output: b.ct
  from: rfam
  to: ct
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	jobs, err := loadJobs(path)
	assert.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, Job{Input: "a.ct", Output: "a.dbn"}, jobs[0])
	assert.Equal(t, Job{Input: "b.seed.gz", Output: "b.ct", From: "rfam", To: "ct"}, jobs[1])
}

func TestConvertFileToFile(t *testing.T) {
	dir := t.TempDir()
	dbnPath := filepath.Join(dir, "in.dbn")
	ctPath := filepath.Join(dir, "out.ct")
	require.NoError(t, os.WriteFile(dbnPath, []byte(">h\nGGAAACC\n((...))\n"), 0644))

	require.NoError(t, convert(dbnPath, ctPath, formatAuto, formatAuto))

	records, err := readRecords(ctPath, formatAuto)
	assert.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "h", records[0].Name)
	assert.Equal(t, "GGAAACC", records[0].Sequence)
}

func TestBuildRecordsRejectsStockholm(t *testing.T) {
	_, err := buildRecords(nil, formatRfam)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}
