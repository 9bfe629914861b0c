/*
Package rfam extracts consensus secondary structures from Rfam seed
alignments in Stockholm format. For every family the accession, the consensus
sequence, and the consensus structure annotation are kept; everything else in
the alignment is ignored.

The SS_cons annotation uses WUSS notation, which marks unpaired sites with
several different characters. Normalize maps those onto the plain '.' marker
so the annotation decodes as an extended dot-bracket string.
*/
package rfam

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/lunny/log"

	"github.com/rnalab/rnastruct/secondarystructure"
)

// Tags of the Stockholm lines a family record is assembled from.
const (
	headerTag    = "# STOCKHOLM"
	accessionTag = "#=GF AC"
	structureTag = "#=GC SS_cons"
	consensusTag = "#=GC RF"
	endTag       = "//"
)

// Seed alignments of large families carry consensus lines as wide as the
// alignment itself.
const maxLineBytes = 16 * 1024 * 1024

// Normalize maps WUSS structure annotation onto the bracket alphabet: every
// character that is neither a bracket symbol nor '.' (such as the '_', '-',
// ',', ':' and '~' unpaired and gap markers) becomes '.'.
func Normalize(structure string) string {
	normalized := []byte(structure)
	for i, c := range normalized {
		if c == '.' ||
			strings.IndexByte(secondarystructure.LeftBrackets, c) >= 0 ||
			strings.IndexByte(secondarystructure.RightBrackets, c) >= 0 {
			continue
		}
		normalized[i] = '.'
	}
	return string(normalized)
}

// Parse reads Stockholm formatted families from r. Families missing any of
// the accession, consensus sequence, or consensus structure are dropped, as
// are families whose structure annotation does not decode; both cases only
// log a warning.
func Parse(r io.Reader) ([]*secondarystructure.Record, error) {
	var (
		records                                     []*secondarystructure.Record
		accession, structure, consensus             string
		haveAccession, haveStructure, haveConsensus bool
	)
	reset := func() {
		accession, structure, consensus = "", "", ""
		haveAccession, haveStructure, haveConsensus = false, false, false
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, headerTag):
			// A new alignment starts here even if the previous one never
			// reached its "//" terminator.
			reset()
		case strings.HasPrefix(line, accessionTag):
			accession = strings.TrimSpace(line[len(accessionTag):])
			haveAccession = true
		case strings.HasPrefix(line, structureTag):
			structure = strings.TrimSpace(line[len(structureTag):])
			haveStructure = true
		case strings.HasPrefix(line, consensusTag):
			consensus = strings.TrimSpace(line[len(consensusTag):])
			haveConsensus = true
		case strings.HasPrefix(line, endTag):
			if haveAccession && haveStructure && haveConsensus {
				record, err := secondarystructure.Parse(Normalize(structure))
				if err != nil {
					log.Warnf("skipping Rfam family %s: %v", accession, err)
				} else {
					record.Name = accession
					record.SetSequence(consensus)
					records = append(records, record)
				}
			}
			reset()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Read parses the Stockholm file at path.
func Read(path string) ([]*secondarystructure.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// ReadGz parses the gzip compressed Stockholm file at path, the form Rfam
// distributes seed alignments in.
func ReadGz(path string) ([]*secondarystructure.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return Parse(reader)
}
