package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emon51/oneflare-scraper/config"
	"github.com/emon51/oneflare-scraper/models"
)

var digitRun = regexp.MustCompile(`\d+`)

// Extract pulls the six business fields out of a rendered profile page.
// Fields that cannot be located, or that trim down to nothing, come back as
// the placeholder; extraction itself never fails.
func Extract(pageHTML, url string, sel config.Selectors) (models.BusinessRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return models.BusinessRecord{}, err
	}

	return models.BusinessRecord{
		BusinessName:  firstText(doc, sel.BusinessName),
		JobsCompleted: extractJobsCompleted(doc, sel.JobsBlurb),
		PhoneNumber:   firstText(doc, sel.PhoneReveal),
		WebsiteURL:    extractDetailByLabel(doc, sel.DetailRow, sel.WebsiteLabel),
		Address:       extractDetailByLabel(doc, sel.DetailRow, sel.AddressLabel),
		URL:           url,
	}, nil
}

func firstText(doc *goquery.Document, selector string) string {
	text := strings.TrimSpace(doc.Find(selector).First().Text())
	if text == "" {
		return models.Placeholder
	}
	return text
}

// extractJobsCompleted reduces the jobs blurb ("Completed 1,204 jobs on
// Oneflare") to its first digit run, with thousands separators stripped.
func extractJobsCompleted(doc *goquery.Document, selector string) string {
	text := firstText(doc, selector)
	if text == models.Placeholder {
		return text
	}
	match := digitRun.FindString(strings.ReplaceAll(text, ",", ""))
	if match == "" {
		return models.Placeholder
	}
	return match
}

// extractDetailByLabel scans the profile's detail rows for the first one
// containing the label ("Website:", "Address:") and returns the text after it.
func extractDetailByLabel(doc *goquery.Document, rowSelector, label string) string {
	value := models.Placeholder

	doc.Find(rowSelector).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		text := strings.TrimSpace(row.Text())
		if !strings.Contains(text, label) {
			return true
		}
		if v := strings.TrimSpace(strings.SplitN(text, label, 2)[1]); v != "" {
			value = v
		}
		return false
	})

	return value
}
