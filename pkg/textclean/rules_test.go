package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		line     string
		expected LineKind
	}{
		{"From: alice@example.com", LineHeader},
		{"newsgroups: alt.test,comp.misc", LineHeader},
		{"Subject: Re: hello", LineHeader},
		{"Lines: 45", LineHeader},
		{"Archive-name: faq/part1", LineHeader},
		{"> quoted text", LineQuote},
		{"  | forwarded text", LineQuote},
		{"alice@example.com writes:", LineReplyMarker},
		{"On Monday Bob wrote:", LineReplyMarker},
		{"In article <1993Apr6.1234@host.edu>", LineReplyMarker},
		{"--", LineSignatureBoundary},
		{"  --  ", LineSignatureBoundary},
		{"-----", LineSeparator},
		{"====", LineSeparator},
		{"Just a normal line of prose.", LineContent},
		{"Version 2 shipped without a colon", LineContent},
		{"", LineContent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, r.Classify(tt.line), "line: %q", tt.line)
	}
}

func TestFilterLines(t *testing.T) {
	r := DefaultRules()

	body := "From: alice@example.com\n" +
		"Real content line one.\n" +
		"> something quoted\n" +
		"bob@example.com writes:\n" +
		"More content.\n" +
		"-----\n" +
		"Even more content.\n" +
		"--\n" +
		"Signature Name\n" +
		"City, Country\n"
	assert.Equal(t, "Real content line one.\nMore content.\nEven more content.", r.FilterLines(body))
}

func TestFilterLinesStopsAtSignature(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, "keep", r.FilterLines("keep\n--\ndrop\ndrop too"))
}

func TestBodyAfterHeaders(t *testing.T) {
	assert.Equal(t, "body here", BodyAfterHeaders("From: a\nSubject: b\n\nbody here"))
	assert.Equal(t, "body", BodyAfterHeaders("header\n   \nbody"))
	assert.Equal(t, "no blank line at all", BodyAfterHeaders("no blank line at all"))
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", NormalizeNewlines("a\r\nb\rc"))
}
