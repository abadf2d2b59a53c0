package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/narrativenexus/corpusprep/pkg/config"
	"github.com/narrativenexus/corpusprep/pkg/corpus"
	"github.com/narrativenexus/corpusprep/pkg/dataset"
	"github.com/narrativenexus/corpusprep/pkg/extract"
	"github.com/narrativenexus/corpusprep/pkg/logging"
	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := flag.String("root", cfg.Root, "Corpus root directory, one subdirectory per category (required)")
	outCSV := flag.String("out-csv", cfg.OutCSV, "Path to the CSV output")
	outXLSX := flag.String("out-xlsx", cfg.OutXLSX, "Path to the XLSX output")
	outJSONL := flag.String("out-jsonl", cfg.OutJSONL, "Optional path to a JSONL output with envelope metadata")
	maxPerCategory := flag.Int("max-per-category", cfg.MaxFilesPerCategory, "Maximum message files taken per category")
	minBodyLen := flag.Int("min-body-len", cfg.MinBodyLen, "Minimum cleaned body length; shorter rows are dropped")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Newsgroup Corpus Preparer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts the human-authored body from every message file under the\n")
		fmt.Fprintf(os.Stderr, "corpus root, normalizes it, and writes a filename/category/text table.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -root req_data/20news_18828 -out-csv processed/corpus.csv\n", os.Args[0])
	}
	flag.Parse()

	logger := logging.New(os.Stdout, *verbose)

	if *root == "" {
		fmt.Fprintf(os.Stderr, "Error: -root (or CORPUS_ROOT) is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	rules := textclean.DefaultRules()
	assembler := dataset.NewAssembler(
		corpus.NewLocator(*maxPerCategory, logger),
		extract.New(rules, *minBodyLen, logger),
		textclean.NewCleaner(rules),
		*minBodyLen,
		logger,
	)

	sinks := []dataset.Sink{
		dataset.CSVSink{Path: *outCSV},
		dataset.XLSXSink{Path: *outXLSX},
	}
	if *outJSONL != "" {
		sinks = append(sinks, dataset.JSONLSink{Path: *outJSONL})
	}

	report, err := assembler.Run(context.Background(), *root, sinks...)
	if err != nil {
		logger.Error("Run failed", "error", err)
		os.Exit(1)
	}
	if report.Rows == 0 {
		logger.Warn("No usable rows extracted; no output written", "located", report.Located)
		return
	}
	logger.Info("Saved dataset",
		"rows", report.Rows,
		"categories", report.Categories,
		"csv", *outCSV,
		"xlsx", *outXLSX,
	)
}
