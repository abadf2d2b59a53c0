package textclean

import (
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`\S+@\S+`)
	urlPattern     = regexp.MustCompile(`http\S+|www\.\S+`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	nonTextPattern = regexp.MustCompile(`[^a-zA-Z0-9\s.,!?]`)
	multiNewline   = regexp.MustCompile(`\n{2,}`)
	multiSpace     = regexp.MustCompile(`\s{2,}`)

	// Control characters illegal in XLSX cell values. Stripped from every
	// output field, not just the text column.
	illegalChars = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F]")
)

// Cleaner normalizes extracted message text. Clean is deterministic and
// idempotent: re-cleaning already-cleaned text is a no-op.
type Cleaner struct {
	rules *Rules
}

// NewCleaner returns a Cleaner over the given rule set; nil means DefaultRules.
func NewCleaner(rules *Rules) *Cleaner {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Cleaner{rules: rules}
}

// Rules exposes the line-classification rule set the cleaner shares with the
// heuristic extractor.
func (c *Cleaner) Rules() *Rules {
	return c.rules
}

// Clean applies the ordered normalization pipeline: drop email addresses,
// URLs and markup tags, reduce the alphabet to letters/digits/whitespace and
// basic punctuation, collapse runs of newlines and whitespace, lowercase,
// trim, and strip characters illegal in spreadsheet output.
func (c *Cleaner) Clean(s string) string {
	s = emailPattern.ReplaceAllString(s, " ")
	s = urlPattern.ReplaceAllString(s, " ")
	s = tagPattern.ReplaceAllString(s, " ")
	s = nonTextPattern.ReplaceAllString(s, " ")
	s = multiNewline.ReplaceAllString(s, "\n")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(strings.ToLower(s))
	return illegalChars.ReplaceAllString(s, "")
}

// CleanBody is the second-pass variant for already-extracted text: it cuts
// any leading header block, filters quoted/metadata/signature lines with the
// shared rule set, then runs Clean.
func (c *Cleaner) CleanBody(raw string) string {
	if raw == "" {
		return ""
	}
	body := BodyAfterHeaders(NormalizeNewlines(raw))
	return c.Clean(c.rules.FilterLines(body))
}

// SanitizeFormula neutralizes spreadsheet formula injection: a value whose
// first character is one of = + - @ gets a leading apostrophe so spreadsheet
// tools treat it as literal text.
func SanitizeFormula(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

// StripIllegal removes control characters that XLSX writers reject.
func StripIllegal(s string) string {
	return illegalChars.ReplaceAllString(s, "")
}
