package dataset

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

// rowsFromTable maps a loaded header row plus data rows onto Rows. Column
// order is not assumed; a text column is required, filename and category are
// optional.
func rowsFromTable(header []string, data [][]string) ([]Row, error) {
	fileIdx, catIdx, textIdx := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "filename":
			fileIdx = i
		case "category":
			catIdx = i
		case "text":
			textIdx = i
		}
	}
	if textIdx == -1 {
		return nil, errors.New("input dataset has no text column")
	}

	cell := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return rec[idx]
	}

	rows := make([]Row, 0, len(data))
	for _, rec := range data {
		rows = append(rows, Row{
			Filename: cell(rec, fileIdx),
			Category: cell(rec, catIdx),
			Text:     cell(rec, textIdx),
		})
	}
	return rows, nil
}

// Reclean re-runs the line filter and full normalizer over an
// already-tabulated dataset, drops rows whose cleaned text falls below the
// length threshold, and re-sanitizes every string field. It supports a second
// cleaning pass over previously extracted data without re-parsing the
// original envelopes.
func Reclean(rows []Row, cleaner *textclean.Cleaner, minBodyLen int) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		text := cleaner.CleanBody(r.Text)
		if len(strings.TrimSpace(text)) < minBodyLen {
			continue
		}
		out = append(out, sanitize(Record{
			Row: Row{Filename: r.Filename, Category: r.Category, Text: text},
		}))
	}
	return out
}
