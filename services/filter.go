package services

import (
	"strings"

	"github.com/emon51/oneflare-scraper/models"
)

type Filter struct{}

func NewFilter() *Filter {
	return &Filter{}
}

// CleanRecords trims every field, replaces blanks with the placeholder, and
// collapses duplicate profile URLs (first occurrence wins). Records without
// a profile URL are dropped; they cannot be traced back to a listing entry.
func (f *Filter) CleanRecords(records []models.BusinessRecord) []models.BusinessRecord {
	cleaned := make([]models.BusinessRecord, 0, len(records))
	seen := make(map[string]bool)

	for _, record := range records {
		record.URL = strings.TrimSpace(record.URL)
		if record.URL == "" || seen[record.URL] {
			continue
		}

		cleaned = append(cleaned, f.cleanRecord(record))
		seen[record.URL] = true
	}

	return cleaned
}

func (f *Filter) cleanRecord(record models.BusinessRecord) models.BusinessRecord {
	record.BusinessName = orPlaceholder(record.BusinessName)
	record.JobsCompleted = orPlaceholder(record.JobsCompleted)
	record.PhoneNumber = orPlaceholder(record.PhoneNumber)
	record.WebsiteURL = orPlaceholder(record.WebsiteURL)
	record.Address = orPlaceholder(record.Address)
	return record
}

func orPlaceholder(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.Placeholder
	}
	return value
}
