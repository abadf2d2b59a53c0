package dataset

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/narrativenexus/corpusprep/pkg/corpus"
	"github.com/narrativenexus/corpusprep/pkg/extract"
	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

// Assembler drives the full pipeline: locate message files, extract and
// normalize each body, filter out unusable rows, and write the surviving
// dataset to the configured sinks.
type Assembler struct {
	locator    *corpus.Locator
	extractor  *extract.Extractor
	cleaner    *textclean.Cleaner
	minBodyLen int
	logger     *log.Logger
}

func NewAssembler(locator *corpus.Locator, extractor *extract.Extractor, cleaner *textclean.Cleaner, minBodyLen int, logger *log.Logger) *Assembler {
	return &Assembler{
		locator:    locator,
		extractor:  extractor,
		cleaner:    cleaner,
		minBodyLen: minBodyLen,
		logger:     logger,
	}
}

// Report summarizes one pipeline run.
type Report struct {
	RunID      string
	Located    int
	Rows       int
	Categories int
	Outputs    []string
}

// Run processes every located message under root. Per-file read and parse
// failures are logged and absorbed; only sink write failures abort the run.
// When no usable rows survive, no sink is written and the report says so via
// a zero row count.
func (a *Assembler) Run(ctx context.Context, root string, sinks ...Sink) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	logger := a.logger.With("run_id", report.RunID)

	msgs := a.locator.Collect(root)
	report.Located = len(msgs)
	if len(msgs) == 0 {
		logger.Warn("No message files found", "root", root)
		return report, nil
	}
	logger.Info("Collected message files", "count", len(msgs), "root", root)

	recs := make([]Record, 0, len(msgs))
	categories := make(map[string]struct{})
	for _, m := range msgs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		raw, err := os.ReadFile(m.Path)
		if err != nil {
			logger.Warn("Could not read message file", "path", m.Path, "error", err)
			continue
		}

		res := a.extractor.Extract(raw)
		text := a.cleaner.Clean(res.Body)
		if len(strings.TrimSpace(text)) < a.minBodyLen {
			logger.Debug("Dropping short body", "file", m.Filename, "len", len(text))
			continue
		}

		recs = append(recs, sanitize(Record{
			Row:     Row{Filename: m.Filename, Category: m.Category, Text: text},
			Subject: res.Subject,
			From:    res.From,
			Date:    res.Date,
		}))
		categories[m.Category] = struct{}{}
	}

	report.Rows = len(recs)
	report.Categories = len(categories)
	if report.Rows == 0 {
		logger.Warn("No usable bodies extracted (all empty or too short)")
		return report, nil
	}

	for _, s := range sinks {
		if err := s.Write(recs); err != nil {
			return nil, errors.Wrapf(err, "writing %s sink", s.Name())
		}
		report.Outputs = append(report.Outputs, s.Name())
	}

	logger.Info("Dataset assembled", "rows", report.Rows, "categories", report.Categories)
	return report, nil
}
