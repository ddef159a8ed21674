package services

import (
	"fmt"
	"strings"

	"github.com/emon51/oneflare-scraper/models"
	"github.com/emon51/oneflare-scraper/utils"
)

// Coverage summarizes how many records carried a real value (not the
// placeholder) for each exported field.
type Coverage struct {
	Total       int
	FieldCounts map[string]int
}

type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (rg *ReportGenerator) Generate(records []models.BusinessRecord) Coverage {
	cov := Coverage{
		Total:       len(records),
		FieldCounts: make(map[string]int),
	}

	headers := models.Headers()
	for _, record := range records {
		for i, value := range record.Row() {
			if value != models.Placeholder && strings.TrimSpace(value) != "" {
				cov.FieldCounts[headers[i]]++
			}
		}
	}

	return cov
}

func (rg *ReportGenerator) PrintReport(log *utils.Logger, cov Coverage) {
	log.Info(strings.Repeat("=", 60))
	log.Info("SCRAPE COVERAGE")
	log.Info(fmt.Sprintf("Total businesses: %d", cov.Total))

	for _, header := range models.Headers() {
		log.Info(fmt.Sprintf("  %-22s %d/%d", header, cov.FieldCounts[header], cov.Total))
	}

	log.Info(strings.Repeat("=", 60))
}
