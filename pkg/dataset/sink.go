package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var tableHeader = []string{"filename", "category", "text"}

// Sink serializes an assembled dataset. Write failures are fatal for the run;
// a sink must not leave a partial file behind a nil error.
type Sink interface {
	Name() string
	Write(recs []Record) error
}

// CSVSink writes the flat three-column table.
type CSVSink struct {
	Path string
}

func (s CSVSink) Name() string { return "csv" }

func (s CSVSink) Write(recs []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return errors.Wrap(err, "creating csv file")
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(tableHeader); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, r := range recs {
		if err := w.Write([]string{r.Filename, r.Category, r.Text}); err != nil {
			return errors.Wrap(err, "writing csv row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flushing csv")
}

// XLSXSink writes the same table as a spreadsheet.
type XLSXSink struct {
	Path string
}

func (s XLSXSink) Name() string { return "xlsx" }

func (s XLSXSink) Write(recs []Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"filename", "category", "text"}); err != nil {
		return errors.Wrap(err, "writing xlsx header")
	}
	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "computing cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{r.Filename, r.Category, r.Text}); err != nil {
			return errors.Wrap(err, "writing xlsx row")
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	return errors.Wrap(f.SaveAs(s.Path), "saving xlsx")
}

// JSONLSink writes one record per line, including the envelope metadata the
// table sinks drop.
type JSONLSink struct {
	Path string
}

func (s JSONLSink) Name() string { return "jsonl" }

func (s JSONLSink) Write(recs []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return errors.Wrap(err, "creating jsonl file")
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range recs {
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encoding record")
		}
	}
	return errors.Wrap(w.Flush(), "flushing jsonl")
}

// LoadTable reads a previously written dataset, dispatching on the file
// extension. Only the three table columns are recovered.
func LoadTable(path string) ([]Row, error) {
	if filepath.Ext(path) == ".xlsx" {
		return LoadXLSX(path)
	}
	return LoadCSV(path)
}

func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening csv file")
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}
	if len(records) == 0 {
		return nil, nil
	}
	return rowsFromTable(records[0], records[1:])
}

func LoadXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening xlsx file")
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "reading xlsx rows")
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowsFromTable(rows[0], rows[1:])
}
