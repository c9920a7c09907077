package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"workforce-intel/models"
)

// ExportService serializes query result tables to delimited text for
// download. The output uses the same CSV dialect the loader reads, so an
// exported table round-trips through the loader's parser.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteCSV writes the table as CSV: one header row, then the data rows.
func (s *ExportService) WriteCSV(w io.Writer, t models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
