package storage

import (
	"fmt"

	"github.com/emon51/oneflare-scraper/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

type ExcelWriter struct {
	filename string
}

func NewExcelWriter(filename string) *ExcelWriter {
	return &ExcelWriter{filename: filename}
}

// WriteRecords writes the header row plus one row per record and saves the
// workbook, replacing any existing file at the path.
func (w *ExcelWriter) WriteRecords(records []models.BusinessRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	headers := models.Headers()
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		row := record.Row()
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(w.filename); err != nil {
		return fmt.Errorf("saving %s: %w", w.filename, err)
	}
	return nil
}
