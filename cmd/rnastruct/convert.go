package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lunny/log"
	"gopkg.in/yaml.v3"
)

func runConvert(args []string) error {
	flags := flag.NewFlagSet("convert", flag.ExitOnError)
	from := flags.String("from", "auto", "input format: ct, dbn, rfam, or auto")
	to := flags.String("to", "auto", "output format: ct or dbn, auto uses the output extension")
	output := flags.String("o", "", "output path (default stdout)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file, got %d", flags.NArg())
	}
	return convert(flags.Arg(0), *output, format(*from), format(*to))
}

func convert(input, output string, from, to format) error {
	records, err := readRecords(input, from)
	if err != nil {
		return err
	}
	log.Infof("read %d records from %s", len(records), input)

	if to == formatAuto || to == "" {
		if output == "" {
			to = formatDBN
		} else if to, err = detectFormat(output); err != nil {
			return err
		}
	}
	data, err := buildRecords(records, to)
	if err != nil {
		return err
	}
	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0644)
}

// A Job is one conversion in a batch file.
type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

// loadJobs reads a YAML list of conversion jobs.
func loadJobs(path string) ([]Job, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var jobs []Job
	if err := yaml.NewDecoder(file).Decode(&jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func runBatch(args []string) error {
	flags := flag.NewFlagSet("batch", flag.ExitOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("expected exactly one job file, got %d", flags.NArg())
	}
	jobs, err := loadJobs(flags.Arg(0))
	if err != nil {
		return err
	}

	failed := 0
	for _, job := range jobs {
		if job.Output == "" {
			log.Errorf("job %q has no output path", job.Input)
			failed++
			continue
		}
		if err := convert(job.Input, job.Output, format(job.From), format(job.To)); err != nil {
			log.Errorf("job %q: %v", job.Input, err)
			failed++
			continue
		}
		log.Infof("wrote %s", job.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(jobs))
	}
	return nil
}
