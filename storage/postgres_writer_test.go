package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alibaba-rfq-scraper/models"
)

func TestDBColumnsMatchModel(t *testing.T) {
	assert.Len(t, dbColumns, len(models.Columns))
}

func TestBuildInsert(t *testing.T) {
	records := testRecords()
	query, args := buildInsert(records)

	n := len(dbColumns)
	require.Len(t, args, len(records)*n)

	assert.Contains(t, query, "INSERT INTO rfq_listings (rfq_id, title,")
	assert.Contains(t, query, "ON CONFLICT (rfq_id, title, scraping_date) DO NOTHING")
	assert.Contains(t, query, "($1,$2,")
	assert.Contains(t, query, "$32)")
	assert.NotContains(t, query, "$33")

	assert.Equal(t, "RFQ001234", args[0])
	assert.Equal(t, "LED Strip Lights, 5050 SMD", args[1])
	assert.Equal(t, "", args[n])
	assert.Equal(t, "Deutschland", args[n+6])
	assert.Equal(t, "2024-03-15 10:00:00", args[2*n-1])

	assert.Equal(t, len(records), strings.Count(query, "($"))
}
