package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alibaba-rfq-scraper/models"
)

func sampleRecords() []*models.RFQ {
	return []*models.RFQ{
		{RFQID: "1", Title: "LED strip", Country: "UAE", BuyerName: "Ahmed"},
		{RFQID: "2", Title: "Kitchen sink", Country: "UAE"},
		{RFQID: "3", Title: "Headphones", Country: "Saudi Arabia"},
		{Title: "Solar panel"},
	}
}

func TestSummaryCounts(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(sampleRecords(), models.SourceStatic, "2024-03-15 10:00:00")

	assert.Equal(t, 4, r.TotalRecords)
	assert.Equal(t, models.SourceStatic, r.Source)
	assert.Equal(t, 2, r.ByCountry["UAE"])
	assert.Equal(t, 1, r.ByCountry["Saudi Arabia"])
	assert.Len(t, r.ByCountry, 2)
}

func TestSummaryFieldCoverage(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(sampleRecords(), models.SourceStatic, "2024-03-15 10:00:00")

	assert.Equal(t, 4, r.FieldsFilled["Title"])
	assert.Equal(t, 3, r.FieldsFilled["RFQ ID"])
	assert.Equal(t, 1, r.FieldsFilled["Buyer Name"])
	assert.Zero(t, r.FieldsFilled["Inquiry URL"])
}

func TestSummarySampleIsFirstThree(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(sampleRecords(), models.SourceDemo, "2024-03-15 10:00:00")

	assert.Len(t, r.Sample, 3)
	assert.Equal(t, "LED strip", r.Sample[0].Title)
}

func TestSummaryEmptyInput(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(nil, models.SourceNone, "2024-03-15 10:00:00")

	assert.Zero(t, r.TotalRecords)
	assert.Empty(t, r.Sample)

	var buf bytes.Buffer
	svc.Print(&buf, r)
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "none")
	assert.NotContains(t, out, "entry 1")
}

func TestSummaryPrintShowsOnlyFilledFields(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(sampleRecords()[:1], models.SourceStatic, "2024-03-15 10:00:00")

	var buf bytes.Buffer
	svc.Print(&buf, r)
	out := buf.String()

	assert.Contains(t, strings.ToLower(out), "entry 1")
	assert.Contains(t, out, "LED strip")
	assert.Contains(t, out, "Ahmed")
	assert.Contains(t, out, "UAE")
}

func TestSummaryPrintWithoutSample(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(sampleRecords(), models.SourceDemo, "2024-03-15 10:00:00")
	r.Sample = nil

	var buf bytes.Buffer
	svc.Print(&buf, r)

	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "field coverage")
	assert.NotContains(t, out, "entry 1")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
