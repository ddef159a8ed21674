package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors locate the scraped elements. BusinessLinks is an XPath evaluated
// in-page on the category listing; the rest are CSS selectors applied to the
// rendered profile HTML. OneFlare's styled-component class names churn, so
// all of these can be overridden from a YAML file.
type Selectors struct {
	BusinessLinks string `yaml:"business_links"`
	BusinessName  string `yaml:"business_name"`
	JobsBlurb     string `yaml:"jobs_blurb"`
	PhoneReveal   string `yaml:"phone_reveal"`
	DetailRow     string `yaml:"detail_row"`
	WebsiteLabel  string `yaml:"website_label"`
	AddressLabel  string `yaml:"address_label"`
}

func DefaultSelectors() Selectors {
	return Selectors{
		BusinessLinks: `//section[4]//li/h3/a`,
		BusinessName:  `h1`,
		JobsBlurb:     `main > div > section:first-of-type section section:first-of-type p`,
		PhoneReveal:   `a[data-tooltip-content="Click to show number"]`,
		DetailRow:     `.sc-906e671e-5.bQwqNJ`,
		WebsiteLabel:  `Website:`,
		AddressLabel:  `Address:`,
	}
}

// LoadSelectors merges a YAML override file into base. Keys absent from the
// file keep their base value.
func LoadSelectors(path string, base Selectors) (Selectors, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading selectors file: %w", err)
	}
	if err := yaml.Unmarshal(b, &base); err != nil {
		return base, fmt.Errorf("parsing selectors file: %w", err)
	}
	return base, nil
}
