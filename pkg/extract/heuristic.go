package extract

import (
	"regexp"
	"strings"

	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

var (
	paragraphSplit = regexp.MustCompile(`\n{2,}`)
	markupTag      = regexp.MustCompile(`<[^>]+>`)
)

// Heuristic recovers the best body paragraph from message text of unknown
// structure: anything after the first blank line is the candidate body, the
// shared rule set drops metadata/quote/signature lines, and the longest or
// first sufficiently long paragraph wins.
type Heuristic struct {
	rules      *textclean.Rules
	minBodyLen int
}

func NewHeuristic(rules *textclean.Rules, minBodyLen int) *Heuristic {
	if rules == nil {
		rules = textclean.DefaultRules()
	}
	return &Heuristic{rules: rules, minBodyLen: minBodyLen}
}

// Extract returns the best-effort body paragraph. Empty input yields an empty
// string, never an error.
func (h *Heuristic) Extract(raw string) string {
	body := textclean.BodyAfterHeaders(textclean.NormalizeNewlines(raw))
	cleaned := h.rules.FilterLines(body)
	cleaned = markupTag.ReplaceAllString(cleaned, " ")
	return h.bestParagraph(cleaned)
}

func (h *Heuristic) bestParagraph(cleaned string) string {
	var paras []string
	for _, p := range paragraphSplit.Split(cleaned, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	if len(paras) == 0 {
		// No paragraph structure survived; collapse the remaining lines onto
		// a single line and use that.
		var lines []string
		for _, l := range strings.Split(cleaned, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		return strings.Join(lines, " ")
	}
	for _, p := range paras {
		if len(p) >= h.minBodyLen {
			return p
		}
	}
	longest := paras[0]
	for _, p := range paras[1:] {
		if len(p) > len(longest) {
			longest = p
		}
	}
	return longest
}
