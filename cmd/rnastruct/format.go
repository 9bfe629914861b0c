package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rnalab/rnastruct/io/ct"
	"github.com/rnalab/rnastruct/io/dbn"
	"github.com/rnalab/rnastruct/io/rfam"
	"github.com/rnalab/rnastruct/secondarystructure"
)

type format string

const (
	formatAuto format = "auto"
	formatCT   format = "ct"
	formatDBN  format = "dbn"
	formatRfam format = "rfam"
)

// detectFormat guesses a file's format from its extension, ignoring a
// trailing .gz.
func detectFormat(path string) (format, error) {
	name := strings.TrimSuffix(strings.ToLower(path), ".gz")
	switch filepath.Ext(name) {
	case ".ct":
		return formatCT, nil
	case ".dbn", ".dot", ".db":
		return formatDBN, nil
	case ".sto", ".stk", ".stockholm", ".seed":
		return formatRfam, nil
	}
	return "", fmt.Errorf("cannot tell the format of %q from its extension", path)
}

func resolveFormat(path string, chosen format) (format, error) {
	if chosen == formatAuto || chosen == "" {
		return detectFormat(path)
	}
	switch chosen {
	case formatCT, formatDBN, formatRfam:
		return chosen, nil
	}
	return "", fmt.Errorf("unknown format %q", chosen)
}

// readRecords loads all records from path in the given format, with "auto"
// resolved from the file extension.
func readRecords(path string, chosen format) ([]*secondarystructure.Record, error) {
	resolved, err := resolveFormat(path, chosen)
	if err != nil {
		return nil, err
	}
	switch resolved {
	case formatCT:
		return ct.Read(path)
	case formatDBN:
		return dbn.Read(path)
	default:
		if strings.HasSuffix(strings.ToLower(path), ".gz") {
			return rfam.ReadGz(path)
		}
		return rfam.Read(path)
	}
}

// buildRecords renders records in the given format. Stockholm alignments are
// a source format only.
func buildRecords(records []*secondarystructure.Record, chosen format) ([]byte, error) {
	switch chosen {
	case formatCT:
		return ct.Build(records)
	case formatDBN:
		return dbn.Build(records)
	case formatRfam:
		return nil, fmt.Errorf("writing Stockholm alignments is not supported")
	}
	return nil, fmt.Errorf("unknown format %q", chosen)
}

// firstRecord loads the first record of a structure file.
func firstRecord(path string, chosen format) (*secondarystructure.Record, error) {
	records, err := readRecords(path, chosen)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records in %s", path)
	}
	return records[0], nil
}
