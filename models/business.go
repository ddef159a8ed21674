package models

// Placeholder is substituted for any field that cannot be located on a
// profile page. Exported records never carry an empty field.
const Placeholder = "N/A"

type BusinessRecord struct {
	BusinessName  string
	JobsCompleted string
	PhoneNumber   string
	WebsiteURL    string
	Address       string
	URL           string
}

// Headers returns the spreadsheet column headers in export order.
func Headers() []string {
	return []string{
		"Business Name",
		"Jobs Completed",
		"Phone Number",
		"Website URL",
		"Address",
		"Profile URL",
	}
}

// Row returns the record's fields in the same order as Headers.
func (r BusinessRecord) Row() []string {
	return []string{
		r.BusinessName,
		r.JobsCompleted,
		r.PhoneNumber,
		r.WebsiteURL,
		r.Address,
		r.URL,
	}
}
