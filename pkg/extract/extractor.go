package extract

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

// Result is the outcome of body extraction for one message. The metadata
// fields are filled only when the structured envelope parse produced the
// body; heuristic extraction has no headers to report.
type Result struct {
	Body    string
	Subject string
	From    string
	Date    time.Time
}

// Strategy is one way of recovering body text from a raw message blob.
// Strategies are tried in order and the first usable result wins, so adding a
// new extraction approach is a matter of appending to the chain.
type Strategy interface {
	Name() string
	Extract(raw []byte) (Result, bool)
}

// Extractor runs the ordered strategy chain: structured envelope parsing
// first, raw-text heuristics as the fallback.
type Extractor struct {
	strategies []Strategy
	logger     *log.Logger
}

func New(rules *textclean.Rules, minBodyLen int, logger *log.Logger) *Extractor {
	if rules == nil {
		rules = textclean.DefaultRules()
	}
	h := NewHeuristic(rules, minBodyLen)
	return &Extractor{
		strategies: []Strategy{
			&envelopeStrategy{rules: rules, heuristic: h, minBodyLen: minBodyLen},
			&heuristicStrategy{heuristic: h},
		},
		logger: logger,
	}
}

// Extract returns the first non-empty strategy result. A zero Result means
// nothing usable was recovered; the caller's length filter drops the row.
func (e *Extractor) Extract(raw []byte) Result {
	for _, s := range e.strategies {
		if res, ok := s.Extract(raw); ok {
			e.logger.Debug("Extracted body", "strategy", s.Name(), "len", len(res.Body))
			return res
		}
	}
	return Result{}
}

type envelopeStrategy struct {
	rules      *textclean.Rules
	heuristic  *Heuristic
	minBodyLen int
}

func (s *envelopeStrategy) Name() string { return "envelope" }

func (s *envelopeStrategy) Extract(raw []byte) (Result, bool) {
	env, ok := ParseEnvelope(raw)
	if !ok || strings.TrimSpace(env.Text) == "" {
		return Result{}, false
	}
	body := s.lightPass(env.Text)
	return Result{Body: body, Subject: env.Subject, From: env.From, Date: env.Date}, body != ""
}

// lightPass picks the first envelope-derived paragraph that is long enough
// and not quoted reply text, filtering the winning paragraph line by line
// with the shared rule set. A signature boundary cuts the paragraph even
// when no blank line precedes it. When no paragraph qualifies the full
// heuristic runs over the envelope text instead.
func (s *envelopeStrategy) lightPass(text string) string {
	text = textclean.NormalizeNewlines(text)
	for _, p := range paragraphSplit.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" || len(p) < s.minBodyLen || s.rules.IsQuote(p) {
			continue
		}
		var kept []string
	lines:
		for _, line := range strings.Split(p, "\n") {
			switch s.rules.Classify(line) {
			case textclean.LineHeader, textclean.LineQuote, textclean.LineReplyMarker, textclean.LineSeparator:
				continue
			case textclean.LineSignatureBoundary:
				break lines
			default:
				kept = append(kept, line)
			}
		}
		if out := strings.TrimSpace(strings.Join(kept, "\n")); out != "" {
			return out
		}
	}
	return s.heuristic.Extract(text)
}

type heuristicStrategy struct {
	heuristic *Heuristic
}

func (s *heuristicStrategy) Name() string { return "heuristic" }

func (s *heuristicStrategy) Extract(raw []byte) (Result, bool) {
	body := s.heuristic.Extract(DecodePermissive(raw))
	return Result{Body: body}, body != ""
}
