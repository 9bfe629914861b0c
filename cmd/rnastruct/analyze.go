package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lunny/log"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/exp/slices"

	"github.com/rnalab/rnastruct/checks"
	"github.com/rnalab/rnastruct/io/dbn"
	"github.com/rnalab/rnastruct/secondarystructure"
	"github.com/rnalab/rnastruct/structhash"
)

func runDist(args []string) error {
	flags := flag.NewFlagSet("dist", flag.ExitOnError)
	from := flags.String("from", "auto", "format of both inputs")
	p := flags.Float64("p", 1, "exponent of the mountain metric")
	weighted := flags.Bool("weighted", false, "weigh pairs by the reciprocal of their span (ignores -p)")
	normalized := flags.Bool("normalized", false, "scale by the diameter for the structures' length")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("expected two structure files, got %d", flags.NArg())
	}

	a, err := firstRecord(flags.Arg(0), format(*from))
	if err != nil {
		return err
	}
	b, err := firstRecord(flags.Arg(1), format(*from))
	if err != nil {
		return err
	}

	var distance float64
	switch {
	case *weighted && *normalized:
		distance, err = secondarystructure.NormalizedWeightedMountainDistance(a, b)
	case *weighted:
		distance, err = secondarystructure.WeightedMountainDistance(a, b)
	case *normalized:
		distance, err = secondarystructure.NormalizedMountainDistance(a, b, *p)
	default:
		distance, err = secondarystructure.MountainDistance(a, b, *p)
	}
	if err != nil {
		return err
	}
	fmt.Println(distance)
	return nil
}

func runDiff(args []string) error {
	flags := flag.NewFlagSet("diff", flag.ExitOnError)
	from := flags.String("from", "auto", "format of both inputs")
	context := flags.Int("context", 3, "unified diff context lines")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("expected two structure files, got %d", flags.NArg())
	}

	// Compare the canonical dot-bracket renderings, so the same conformation
	// never diffs against itself over cosmetic class choices.
	var texts [2]string
	for i := range texts {
		records, err := readRecords(flags.Arg(i), format(*from))
		if err != nil {
			return err
		}
		data, err := dbn.Build(records)
		if err != nil {
			return err
		}
		texts[i] = string(data)
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(texts[0]),
		B:        difflib.SplitLines(texts[1]),
		FromFile: flags.Arg(0),
		ToFile:   flags.Arg(1),
		Context:  *context,
	})
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func runStat(args []string) error {
	flags := flag.NewFlagSet("stat", flag.ExitOnError)
	from := flags.String("from", "auto", "format of the inputs")
	sortByName := flags.Bool("sort", false, "sort rows by record name")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("expected at least one structure file")
	}

	var all []*secondarystructure.Record
	for _, path := range flags.Args() {
		records, err := readRecords(path, format(*from))
		if err != nil {
			return err
		}
		all = append(all, records...)
	}
	if *sortByName {
		slices.SortFunc(all, func(a, b *secondarystructure.Record) bool {
			return a.Name < b.Name
		})
	}

	fmt.Println("name\tlength\tpairs\tpseudoknotted\tmolecule\tgc")
	for _, record := range all {
		knotted, err := record.IsPseudoknotted()
		if err != nil {
			log.Warnf("skipping %q: %v", record.Name, err)
			continue
		}
		pairs := 0
		for _, partner := range record.Paired {
			if partner != 0 {
				pairs++
			}
		}
		fmt.Printf("%s\t%d\t%d\t%t\t%s\t%.3f\n",
			record.Name, len(record.Paired), pairs/2, knotted,
			molecule(record.Sequence), checks.GcContent(record.Sequence))
	}
	return nil
}

// molecule names the nucleic acid a sequence spells.
func molecule(sequence string) string {
	upper := strings.ToUpper(sequence)
	switch {
	case upper == "":
		return "n/a"
	case checks.IsDNA(upper):
		return "DNA"
	case checks.IsRNA(upper):
		return "RNA"
	}
	return "n/a"
}

func runHash(args []string) error {
	flags := flag.NewFlagSet("hash", flag.ExitOnError)
	from := flags.String("from", "auto", "format of the inputs")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("expected at least one structure file")
	}
	for _, path := range flags.Args() {
		records, err := readRecords(path, format(*from))
		if err != nil {
			return err
		}
		for _, record := range records {
			hash, err := structhash.Hash(record)
			if err != nil {
				log.Warnf("skipping %q: %v", record.Name, err)
				continue
			}
			fmt.Printf("%s\t%s\n", hash, record.Name)
		}
	}
	return nil
}
