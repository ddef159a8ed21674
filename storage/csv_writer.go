package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/emon51/oneflare-scraper/models"
)

type CSVWriter struct {
	filename string
}

func NewCSVWriter(filename string) *CSVWriter {
	return &CSVWriter{filename: filename}
}

func (w *CSVWriter) WriteRecords(records []models.BusinessRecord) error {
	file, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", w.filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(models.Headers()); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.Row()); err != nil {
			return fmt.Errorf("writing record for %s: %w", record.URL, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
