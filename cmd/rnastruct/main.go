// Command rnastruct converts, compares, and summarizes RNA and DNA
// secondary structure files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lunny/log"
	"github.com/mitchellh/go-wordwrap"
)

const description = "rnastruct works on RNA and DNA secondary structures stored as " +
	"connect (CT) files, dot-bracket (DBN) files, or Rfam Stockholm seed alignments, " +
	"gzipped or not. Structures are held as paired-site lists, so arbitrarily " +
	"pseudoknotted conformations survive every conversion, comparison, and hash."

var commands = []struct {
	name    string
	summary string
	run     func(args []string) error
}{
	{"convert", "convert structure files between formats", runConvert},
	{"batch", "run the conversions listed in a YAML job file", runBatch},
	{"dist", "mountain distance between two structures", runDist},
	{"diff", "line diff of two structure files in canonical form", runDiff},
	{"stat", "per-record summary table of structure files", runStat},
	{"hash", "content identifiers of structure records", runHash},
	{"count", "count the structures of a given length", runCount},
	{"random", "generate random structure records", runRandom},
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	name := os.Args[1]
	for _, command := range commands {
		if command.name != name {
			continue
		}
		if err := command.run(os.Args[2:]); err != nil {
			log.Errorf("%s: %v", name, err)
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
	usage(os.Stderr)
	os.Exit(2)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: rnastruct <command> [flags] [files]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, command := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", command.name, command.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.WrapString(description, 76))
}
