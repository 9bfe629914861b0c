/*
Package ct reads and writes secondary structure records in connect (CT)
format. Every record starts with a ">" headed name line followed by one row
per site with six tab separated columns: the 1-based site index, the
nucleotide, the indices of the previous and next site, the 1-based index of
the pairing partner (0 for unpaired sites), and the site index again.

Parsing is lenient the way most CT emitting tools require: rows are
recognized by shape rather than position, unreadable rows are skipped with a
warning, and anything else between records is ignored.
*/
package ct

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lunny/log"

	"github.com/rnalab/rnastruct/secondarystructure"
)

// Parse reads CT formatted records from r.
func Parse(r io.Reader) ([]*secondarystructure.Record, error) {
	var (
		records  []*secondarystructure.Record
		name     string
		sequence strings.Builder
		paired   secondarystructure.Pairing
	)
	flush := func() {
		if len(paired) == 0 {
			return
		}
		records = append(records, &secondarystructure.Record{
			Name:     name,
			Sequence: sequence.String(),
			Paired:   paired,
		})
		sequence.Reset()
		paired = nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) > 0 && strings.HasPrefix(fields[0], ">") {
			flush()
			name = strings.TrimPrefix(line, ">")
			continue
		}
		// A site row has at least six columns with numeric first and last
		// ones. Headers and free text fail this shape test and are skipped.
		if len(fields) < 6 {
			continue
		}
		if _, err := strconv.ParseInt(fields[0], 10, 64); err != nil {
			continue
		}
		if _, err := strconv.ParseInt(fields[5], 10, 64); err != nil {
			continue
		}
		partner, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			log.Warnf("skipping CT row with unreadable partner column: %q", line)
			continue
		}
		sequence.WriteString(fields[1])
		paired = append(paired, partner)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}

// Read parses the CT file at path.
func Read(path string) ([]*secondarystructure.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Build renders records in CT format.
func Build(records []*secondarystructure.Record) ([]byte, error) {
	var buffer bytes.Buffer
	for _, record := range records {
		if len(record.Sequence) != len(record.Paired) {
			return nil, fmt.Errorf("record %q: sequence length %d does not match structure length %d",
				record.Name, len(record.Sequence), len(record.Paired))
		}
		fmt.Fprintf(&buffer, ">%s\n", record.Name)
		for i, partner := range record.Paired {
			fmt.Fprintf(&buffer, "%d\t%c\t%d\t%d\t%d\t%d\n",
				i+1, record.Sequence[i], i, i+2, partner, i+1)
		}
	}
	return buffer.Bytes(), nil
}

// Write renders records to the CT file at path.
func Write(records []*secondarystructure.Record, path string) error {
	data, err := Build(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
