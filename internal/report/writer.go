package report

import (
	"fmt"
	"io"
)

// header is the fixed first line of the report.
const header = "Rating\tRank\tName\tYear\tWeight\tURL"

// Writer serializes report rows as tab-separated lines.
type Writer struct {
	w io.Writer
}

// NewWriter creates a report writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the column header line.
func (w *Writer) WriteHeader() error {
	_, err := fmt.Fprintln(w.w, header)
	return err
}

// WriteRow writes one report row. The weight renders out of the fixed
// 5.00 scale with two decimal places.
func (w *Writer) WriteRow(row Row) error {
	_, err := fmt.Fprintf(w.w, "%s\t%s\t%s\t%s\t%.2f/5.00\t%s\n",
		row.Rating, row.Game.Rank, row.Game.Name, row.Game.Year,
		row.Weight, row.URL)
	return err
}
