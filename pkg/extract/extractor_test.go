package extract

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestExtractorEnvelopeWins(t *testing.T) {
	e := New(nil, 60, testLogger())

	body := "The quick brown fox jumps over the lazy dog again and again until done."
	raw := []byte("From: Alice <alice@example.com>\r\n" +
		"Subject: Fox report\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
		"\r\n" +
		body + "\r\n")

	res := e.Extract(raw)
	assert.Equal(t, body, res.Body)
	assert.Equal(t, "Fox report", res.Subject)
	assert.Equal(t, "alice@example.com", res.From)
}

func TestExtractorSkipsQuotedIntro(t *testing.T) {
	e := New(nil, 60, testLogger())

	reply := "My answer paragraph is long enough to pass the threshold easily, honest."
	raw := []byte("From: bob@example.com\r\n" +
		"Subject: Re: question\r\n" +
		"\r\n" +
		"> A quoted question that is itself long enough to pass the threshold.\r\n" +
		"\r\n" +
		reply + "\r\n")

	res := e.Extract(raw)
	assert.Equal(t, reply, res.Body)
}

func TestExtractorHeuristicFallback(t *testing.T) {
	e := New(nil, 60, testLogger())

	// No parseable header block at all; the raw-text heuristics take over.
	raw := []byte("This file carries no mail headers whatsoever and simply holds one long paragraph of prose for the fallback to find.")

	res := e.Extract(raw)
	require.NotEmpty(t, res.Body)
	assert.Contains(t, res.Body, "no mail headers whatsoever")
	assert.Empty(t, res.Subject)
	assert.Empty(t, res.From)
}

func TestExtractorNothingUsable(t *testing.T) {
	e := New(nil, 60, testLogger())

	res := e.Extract([]byte("From: a@b.c\r\nSubject: empty\r\n\r\n\r\n"))
	assert.Equal(t, Result{}, res)
}

func TestExtractorCutsSignatureInsideParagraph(t *testing.T) {
	e := New(nil, 60, testLogger())

	// No blank line before the signature marker: it sits inside the winning
	// paragraph and must still cut everything below it.
	raw := []byte("From: eve@example.com\r\n" +
		"Subject: signed\r\n" +
		"\r\n" +
		"Hello world, this is a long enough message body to pass the filter.\r\n" +
		"-- \r\n" +
		"Signature line\r\n")

	res := e.Extract(raw)
	assert.Equal(t, "Hello world, this is a long enough message body to pass the filter.", res.Body)
}

func TestExtractorDropsQuoteLinesInsideParagraph(t *testing.T) {
	e := New(nil, 60, testLogger())

	raw := []byte("From: bob@example.com\r\n" +
		"Subject: Re: inline quote\r\n" +
		"\r\n" +
		"A perfectly reasonable reply that easily clears the minimum length bar.\r\n" +
		"> the quoted line it answers\r\n")

	res := e.Extract(raw)
	assert.Equal(t, "A perfectly reasonable reply that easily clears the minimum length bar.", res.Body)
}

func TestExtractorLightPassDropsEmbeddedHeaders(t *testing.T) {
	e := New(nil, 20, testLogger())

	raw := []byte("From: carol@example.com\r\n" +
		"Subject: mixed paragraph\r\n" +
		"\r\n" +
		"Organization: Example University\r\n" +
		"The real content line of the winning paragraph.\r\n")

	res := e.Extract(raw)
	assert.Equal(t, "The real content line of the winning paragraph.", res.Body)
	assert.False(t, strings.Contains(res.Body, "Organization:"))
}
