package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alibaba-rfq-scraper/models"
	"alibaba-rfq-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewDiscardLogger() }

func TestNormalizerCollapsesWhitespace(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RFQ{
		{Title: "  LED\n\tStrip   Lights ", Country: " UAE ", QuantityRequired: "10,000 meters", ScrapingDate: "2024-03-15 10:00:00"},
	}

	out := n.Normalize(raw, "ignored")

	require.Len(t, out, 1)
	assert.Equal(t, "LED Strip Lights", out[0].Title)
	assert.Equal(t, "UAE", out[0].Country)
	assert.Equal(t, "10,000 meters", out[0].QuantityRequired)
	assert.Equal(t, "2024-03-15 10:00:00", out[0].ScrapingDate)
	assert.Equal(t, "  LED\n\tStrip   Lights ", raw[0].Title, "input must not be modified")
}

func TestNormalizerFillsScrapingDate(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	out := n.Normalize([]*models.RFQ{{RFQID: "123456"}}, "2024-03-15 10:00:00")

	require.Len(t, out, 1)
	assert.Equal(t, "2024-03-15 10:00:00", out[0].ScrapingDate)
}

func TestNormalizerDropsUnidentifiable(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RFQ{
		nil,
		{Title: "   ", Country: "UAE"},
		{RFQID: "RFQ1"},
	}

	out := n.Normalize(raw, "2024-03-15 10:00:00")

	require.Len(t, out, 1)
	assert.Equal(t, "RFQ1", out[0].RFQID)
}

func TestNormalizerEmptyInput(t *testing.T) {
	out := NewNormalizer(newTestLogger()).Normalize(nil, "2024-03-15 10:00:00")
	assert.Empty(t, out)
}
