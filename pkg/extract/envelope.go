package extract

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"github.com/jaytaylor/html2text"
	"github.com/mnako/letters"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Envelope is the structured view of a raw message blob. Text holds the
// text/plain parts joined with a blank line in document order; it is empty
// when the message has no usable plain-text content.
type Envelope struct {
	Text    string
	Subject string
	From    string
	Date    time.Time
}

// ParseEnvelope decodes raw bytes as a mail envelope. The second return is
// false only when the blob cannot be read as a structured message at all;
// a parsed message with no plain-text part yields ok with an empty Text.
// Parsing goes through letters first and falls back to a manual MIME walk,
// so one malformed layer does not lose the whole message.
func ParseEnvelope(raw []byte) (Envelope, bool) {
	if em, err := letters.ParseEmail(bytes.NewReader(raw)); err == nil {
		env := Envelope{
			Subject: em.Headers.Subject,
			Date:    em.Headers.Date,
		}
		if len(em.Headers.From) > 0 && em.Headers.From[0] != nil {
			env.From = em.Headers.From[0].Address
		}
		if t := strings.TrimSpace(em.Text); t != "" {
			env.Text = t
			return env, true
		}
		// A single-part HTML body still carries the author's text; convert
		// it. Multipart messages without a text/plain part stay empty so the
		// caller can fall back to the raw-text heuristics.
		if em.HTML != "" && !strings.HasPrefix(em.Headers.ContentType.ContentType, "multipart/") {
			if t, herr := html2text.FromString(em.HTML, html2text.Options{OmitLinks: true, TextOnly: true}); herr == nil {
				env.Text = strings.TrimSpace(t)
			}
		}
		return env, true
	}
	return parseManual(raw)
}

func parseManual(raw []byte) (Envelope, bool) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return Envelope{}, false
	}

	h := msg.Header
	env := Envelope{Subject: h.Get("Subject")}
	if d, derr := mail.ParseDate(h.Get("Date")); derr == nil {
		env.Date = d
	}
	if addr, aerr := mail.ParseAddress(h.Get("From")); aerr == nil {
		env.From = addr.Address
	}

	ctype, params, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err != nil {
		ctype = "text/plain"
	}

	if strings.HasPrefix(ctype, "multipart/") {
		env.Text = strings.Join(collectTextParts(msg.Body, params["boundary"]), "\n\n")
		return env, true
	}

	body := decodeBody(msg.Body, h.Get("Content-Transfer-Encoding"), params["charset"])
	if strings.HasPrefix(ctype, "text/html") {
		if t, herr := html2text.FromString(body, html2text.Options{OmitLinks: true, TextOnly: true}); herr == nil {
			body = t
		}
	}
	env.Text = strings.TrimSpace(body)
	return env, true
}

// collectTextParts walks a multipart body in document order, descending into
// nested multiparts, and returns the decoded text/plain parts. A corrupt
// boundary ends the walk with whatever was collected so far.
func collectTextParts(r io.Reader, boundary string) []string {
	var parts []string
	mr := multipart.NewReader(r, boundary)
	for {
		p, err := mr.NextPart()
		if err != nil {
			break
		}
		ctype, params, perr := mime.ParseMediaType(p.Header.Get("Content-Type"))
		if perr != nil {
			ctype = "text/plain"
		}
		switch {
		case strings.HasPrefix(ctype, "multipart/"):
			parts = append(parts, collectTextParts(p, params["boundary"])...)
		case strings.HasPrefix(ctype, "text/plain"):
			if t := strings.TrimSpace(decodeBody(p, p.Header.Get("Content-Transfer-Encoding"), params["charset"])); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return parts
}

func decodeBody(r io.Reader, cte, charset string) string {
	switch strings.ToLower(strings.TrimSpace(cte)) {
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	}
	// A truncated transfer encoding keeps whatever decoded cleanly.
	b, _ := io.ReadAll(r)
	return decodeCharset(b, charset)
}

func decodeCharset(b []byte, charset string) string {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return string(b)
	}
	if enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset)); err == nil && enc != nil {
		if out, derr := enc.NewDecoder().Bytes(b); derr == nil {
			return string(out)
		}
	}
	return DecodePermissive(b)
}

// DecodePermissive decodes bytes as ISO-8859-1. Every byte maps to a rune, so
// it never fails; garbage in becomes printable garbage out, which the line
// filters and the length threshold discard downstream.
func DecodePermissive(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
