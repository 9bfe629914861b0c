/*
Package dbn reads and writes secondary structure records as dot-bracket
files. Each record takes three lines: a ">" headed name line, the nucleotide
sequence, and the dot-bracket structure string.

Records that cannot be decoded are skipped with a warning so that one bad
entry does not sink a whole batch file.
*/
package dbn

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lunny/log"

	"github.com/rnalab/rnastruct/secondarystructure"
)

// Structure lines grow with the strand, so give the scanner more than the
// default token size.
const maxLineBytes = 16 * 1024 * 1024

// Parse reads dot-bracket records from r.
func Parse(r io.Reader) ([]*secondarystructure.Record, error) {
	const (
		wantName = iota
		wantSequence
		wantStructure
	)

	var (
		records []*secondarystructure.Record
		name    string
		seq     string
		state   = wantName
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if state != wantName {
				log.Warnf("skipping dot-bracket record %q: truncated before its structure line", name)
			}
			name = strings.TrimPrefix(line, ">")
			state = wantSequence
			continue
		}
		switch state {
		case wantSequence:
			seq = line
			state = wantStructure
		case wantStructure:
			record, err := secondarystructure.Parse(line)
			if err != nil {
				log.Warnf("skipping dot-bracket record %q: %v", name, err)
			} else {
				record.Name = name
				record.SetSequence(seq)
				records = append(records, record)
			}
			state = wantName
		default:
			// Free text before the first ">" header belongs to no record.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if state != wantName {
		log.Warnf("skipping dot-bracket record %q: truncated before its structure line", name)
	}
	return records, nil
}

// Read parses the dot-bracket file at path.
func Read(path string) ([]*secondarystructure.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Build renders records as dot-bracket text, one three-line block per
// record. The structure lines are the canonical encodings of the records'
// pairings, so the class choices may differ from whatever text the records
// were originally read from.
func Build(records []*secondarystructure.Record) ([]byte, error) {
	var buffer bytes.Buffer
	for _, record := range records {
		text, err := record.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", record.Name, err)
		}
		buffer.Write(text)
		buffer.WriteByte('\n')
	}
	return buffer.Bytes(), nil
}

// Write renders records to the dot-bracket file at path.
func Write(records []*secondarystructure.Record, path string) error {
	data, err := Build(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
