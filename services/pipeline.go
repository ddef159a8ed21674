package services

import (
	"context"
	"fmt"

	"github.com/emon51/oneflare-scraper/config"
	"github.com/emon51/oneflare-scraper/models"
	"github.com/emon51/oneflare-scraper/scraper"
	"github.com/emon51/oneflare-scraper/storage"
	"github.com/emon51/oneflare-scraper/utils"
)

type Pipeline struct {
	cfg *config.Config
	log *utils.Logger
}

func NewPipeline(cfg *config.Config, log *utils.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Execute runs the complete scrape: load the category page, harvest profile
// links, visit each profile strictly in listing order, then clean and export
// the records. A profile that fails is logged and skipped; a category-page
// or export failure aborts the run.
func (p *Pipeline) Execute(ctx context.Context) ([]models.BusinessRecord, error) {
	s := scraper.NewScraper(p.cfg, p.log)

	if err := s.LoadCategory(ctx, p.cfg.CategoryURL); err != nil {
		return nil, fmt.Errorf("category page load failed: %w", err)
	}

	links, err := s.CollectLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("link collection failed: %w", err)
	}
	p.log.Info(fmt.Sprintf("Found %d business links", len(links)))
	if len(links) == 0 {
		p.log.Warn("No business links found; inspect selectors or delays")
	}

	records := p.scrapeProfiles(ctx, s, links)

	filter := NewFilter()
	cleaned := filter.CleanRecords(records)
	p.log.Info(fmt.Sprintf("Cleaned records: %d", len(cleaned)))

	if err := p.export(cleaned); err != nil {
		return nil, err
	}

	reportGen := NewReportGenerator()
	reportGen.PrintReport(p.log, reportGen.Generate(cleaned))

	return cleaned, nil
}

func (p *Pipeline) scrapeProfiles(ctx context.Context, s *scraper.Scraper, links []string) []models.BusinessRecord {
	records := make([]models.BusinessRecord, 0, len(links))

	for i, url := range links {
		p.log.Info(fmt.Sprintf("[%d/%d] Scraping %s", i+1, len(links), url))

		pageHTML, err := s.FetchProfile(ctx, url)
		if err != nil {
			p.log.Error(fmt.Sprintf("Failed to process %s", url), err)
			continue
		}

		record, err := scraper.Extract(pageHTML, url, p.cfg.Selectors)
		if err != nil {
			p.log.Error(fmt.Sprintf("Failed to parse %s", url), err)
			continue
		}

		records = append(records, record)
	}

	return records
}

func (p *Pipeline) export(records []models.BusinessRecord) error {
	writer := storage.ForPath(p.cfg.OutputFile)
	if err := writer.WriteRecords(records); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	p.log.Success(fmt.Sprintf("Saved %d records to %s", len(records), p.cfg.OutputFile))
	return nil
}
