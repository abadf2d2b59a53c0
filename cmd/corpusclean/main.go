package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/narrativenexus/corpusprep/pkg/config"
	"github.com/narrativenexus/corpusprep/pkg/dataset"
	"github.com/narrativenexus/corpusprep/pkg/logging"
	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

func main() {
	input := flag.String("input", "", "Dataset to re-clean, CSV or XLSX (required)")
	outCSV := flag.String("out-csv", "processed/corpus_final.csv", "Path to the CSV output")
	outXLSX := flag.String("out-xlsx", "processed/corpus_final.xlsx", "Path to the XLSX output")
	minBodyLen := flag.Int("min-body-len", config.DefaultMinBodyLen, "Minimum cleaned body length; shorter rows are dropped")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Dataset Re-Cleaner\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s -input <dataset.csv|dataset.xlsx> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Runs the body cleaning pass over the text column of an existing\n")
		fmt.Fprintf(os.Stderr, "dataset, drops rows that end up too short, and rewrites the table.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logging.New(os.Stdout, *verbose)

	if *input == "" {
		fmt.Fprintf(os.Stderr, "Error: -input is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	rows, err := dataset.LoadTable(*input)
	if err != nil {
		logger.Error("Failed to load dataset", "path", *input, "error", err)
		os.Exit(1)
	}
	logger.Info("Loaded dataset", "path", *input, "rows", len(rows))

	cleaned := dataset.Reclean(rows, textclean.NewCleaner(nil), *minBodyLen)
	if len(cleaned) == 0 {
		logger.Warn("All rows empty or too short after cleaning; no output written")
		return
	}

	for _, sink := range []dataset.Sink{
		dataset.CSVSink{Path: *outCSV},
		dataset.XLSXSink{Path: *outXLSX},
	} {
		if err := sink.Write(cleaned); err != nil {
			logger.Error("Failed to write output", "sink", sink.Name(), "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Saved cleaned dataset",
		"rows", len(cleaned),
		"dropped", len(rows)-len(cleaned),
		"csv", *outCSV,
		"xlsx", *outXLSX,
	)
}
