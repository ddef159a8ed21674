package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/emon51/oneflare-scraper/models"
)

func sampleRecords() []models.BusinessRecord {
	return []models.BusinessRecord{
		{
			BusinessName:  "Arctic Air Co",
			JobsCompleted: "1204",
			PhoneNumber:   "0412 345 678",
			WebsiteURL:    "https://arcticair.example.com",
			Address:       "12 Chill St, Sydney NSW 2000",
			URL:           "https://example.com/b/one",
		},
		{
			BusinessName:  "Cool Breeze",
			JobsCompleted: "N/A",
			PhoneNumber:   "N/A",
			WebsiteURL:    "N/A",
			Address:       "N/A",
			URL:           "https://example.com/b/two",
		},
	}
}

func TestForPathPicksWriterByExtension(t *testing.T) {
	assert.IsType(t, &CSVWriter{}, ForPath("out.csv"))
	assert.IsType(t, &CSVWriter{}, ForPath("OUT.CSV"))
	assert.IsType(t, &ExcelWriter{}, ForPath("out.xlsx"))
	assert.IsType(t, &ExcelWriter{}, ForPath("out"))
}

func TestExcelWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "business_data.xlsx")
	records := sampleRecords()

	require.NoError(t, NewExcelWriter(path).WriteRecords(records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	require.Len(t, rows, len(records)+1)
	assert.Equal(t, models.Headers(), rows[0])
	assert.Equal(t, records[0].Row(), rows[1])
	assert.Equal(t, records[1].Row(), rows[2])
}

func TestExcelWriterOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "business_data.xlsx")
	records := sampleRecords()

	require.NoError(t, NewExcelWriter(path).WriteRecords(records))
	require.NoError(t, NewExcelWriter(path).WriteRecords(records[:1]))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	// Header plus exactly the second run's single record.
	assert.Len(t, rows, 2)
}

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "business_data.csv")
	records := sampleRecords()

	require.NoError(t, NewCSVWriter(path).WriteRecords(records))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, len(records)+1)
	assert.Equal(t, models.Headers(), rows[0])
	assert.Equal(t, records[0].Row(), rows[1])
}

func TestCSVWriterOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "business_data.csv")
	records := sampleRecords()

	require.NoError(t, NewCSVWriter(path).WriteRecords(records))
	require.NoError(t, NewCSVWriter(path).WriteRecords(records[:1]))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWriteRecordsEmptyStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, NewCSVWriter(path).WriteRecords(nil))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.Headers(), rows[0])
}
