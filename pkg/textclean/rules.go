package textclean

import (
	"regexp"
	"strings"
)

// LineKind tags a single line of message text during the cleaning scan.
type LineKind int

const (
	LineContent LineKind = iota
	LineHeader
	LineQuote
	LineReplyMarker
	LineSignatureBoundary
	LineSeparator
)

// Rules is the shared line-classification rule set used by both the heuristic
// body extractor and the second-pass cleaner. Newsgroup metadata prefixes are
// the superset of what both passes of the legacy pipeline recognized.
type Rules struct {
	headerLine  *regexp.Regexp
	quoteLine   *regexp.Regexp
	replyMarker *regexp.Regexp
	sigBoundary *regexp.Regexp
	separator   *regexp.Regexp
}

var defaultHeaderPrefixes = []string{
	"archive-name", "from", "subject", "path", "xref", "organization",
	"lines", "newsgroups", "message-id", "keywords", "date", "sender",
	"last-modified", "version",
}

// DefaultRules builds the rule set with the default metadata-header prefixes.
func DefaultRules() *Rules {
	return NewRules(defaultHeaderPrefixes)
}

// NewRules builds a rule set recognizing the given header prefixes.
func NewRules(headerPrefixes []string) *Rules {
	return &Rules{
		headerLine:  regexp.MustCompile(`(?i)^(` + strings.Join(headerPrefixes, "|") + `):`),
		quoteLine:   regexp.MustCompile(`^\s*[>|]`),
		replyMarker: regexp.MustCompile(`(?i)(writes:|wrote:|In article\s*<)`),
		sigBoundary: regexp.MustCompile(`^\s*--\s*$`),
		separator:   regexp.MustCompile(`^\s*[-=]{3,}\s*$`),
	}
}

// Classify tags a line. Checks are ordered: a line that is both quoted and
// contains a reply marker counts as quoted, and the two-dash signature
// boundary wins over the generic separator.
func (r *Rules) Classify(line string) LineKind {
	switch {
	case r.headerLine.MatchString(line):
		return LineHeader
	case r.quoteLine.MatchString(line):
		return LineQuote
	case r.replyMarker.MatchString(line):
		return LineReplyMarker
	case r.sigBoundary.MatchString(line):
		return LineSignatureBoundary
	case r.separator.MatchString(line):
		return LineSeparator
	default:
		return LineContent
	}
}

// IsQuote reports whether the line starts with a quote/forward marker.
func (r *Rules) IsQuote(line string) bool {
	return r.quoteLine.MatchString(line)
}

// IsHeader reports whether the line looks like a metadata header.
func (r *Rules) IsHeader(line string) bool {
	return r.headerLine.MatchString(line)
}

// FilterLines scans body line by line, dropping header, quote, reply-marker
// and separator lines, and stops entirely at a signature boundary. The
// retained lines are rejoined and trimmed.
func (r *Rules) FilterLines(body string) string {
	var kept []string
scan:
	for _, line := range strings.Split(body, "\n") {
		switch r.Classify(line) {
		case LineHeader, LineQuote, LineReplyMarker, LineSeparator:
			continue
		case LineSignatureBoundary:
			break scan
		default:
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

var firstBlankLine = regexp.MustCompile(`\n\s*\n`)

// NormalizeNewlines maps CRLF and bare CR line endings to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// BodyAfterHeaders returns everything after the first blank-line boundary,
// or the whole text when no blank line exists.
func BodyAfterHeaders(s string) string {
	parts := firstBlankLine.Split(s, 2)
	if len(parts) > 1 {
		return parts[1]
	}
	return parts[0]
}
