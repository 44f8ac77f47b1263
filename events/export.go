package events

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes records as CSV with a header row.
func ExportCSV(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("exporting events: %w", err)
	}
	return nil
}

// ImportCSV reads records written by ExportCSV. Every row must carry a
// valid type.
func ImportCSV(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("importing events: %w", err)
	}
	for i, rec := range records {
		if _, err := ParseKind(string(rec.Kind)); err != nil {
			return nil, fmt.Errorf("importing events: row %d: %w", i+1, err)
		}
	}
	return records, nil
}
