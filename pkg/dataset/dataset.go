package dataset

import (
	"time"

	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

// Row is one line of the output table: one message, its source category, and
// the cleaned body text.
type Row struct {
	Filename string `json:"filename"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Record is the JSONL form of a row, carrying best-effort envelope metadata
// when the structured parse produced the body.
type Record struct {
	Row
	Subject string    `json:"subject,omitempty"`
	From    string    `json:"from,omitempty"`
	Date    time.Time `json:"date,omitzero"`
}

// sanitize neutralizes formula injection and strips spreadsheet-illegal
// control characters from every string field of a record.
func sanitize(rec Record) Record {
	rec.Filename = cleanField(rec.Filename)
	rec.Category = cleanField(rec.Category)
	rec.Text = cleanField(rec.Text)
	rec.Subject = cleanField(rec.Subject)
	rec.From = cleanField(rec.From)
	return rec
}

func cleanField(s string) string {
	return textclean.StripIllegal(textclean.SanitizeFormula(s))
}
