package storage

import (
	"path/filepath"
	"strings"

	"github.com/emon51/oneflare-scraper/models"
)

type Writer interface {
	WriteRecords(records []models.BusinessRecord) error
}

// ForPath picks the export format from the output path's extension:
// ".csv" gets the CSV writer, everything else is written as XLSX.
func ForPath(path string) Writer {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSVWriter(path)
	}
	return NewExcelWriter(path)
}
