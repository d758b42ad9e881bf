package services

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"alibaba-rfq-scraper/models"
	"alibaba-rfq-scraper/utils"
)

const sampleSize = 3

// SummaryService computes and renders the end-of-run report.
type SummaryService struct {
	logger *utils.Logger
}

// NewSummaryService creates a SummaryService with the given logger.
func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate aggregates records into a RunSummary holding at most three sample
// entries.
func (s *SummaryService) Generate(records []*models.RFQ, source models.Source, scrapedAt string) *models.RunSummary {
	summary := &models.RunSummary{
		Source:       source,
		ScrapingDate: scrapedAt,
		ByCountry:    make(map[string]int),
		FieldsFilled: make(map[string]int),
	}

	summary.TotalRecords = len(records)

	for _, r := range records {
		if r.Country != "" {
			summary.ByCountry[r.Country]++
		}
		for i, v := range r.Row() {
			if v != "" {
				summary.FieldsFilled[models.Columns[i]]++
			}
		}
	}

	if len(records) > sampleSize {
		summary.Sample = records[:sampleSize]
	} else {
		summary.Sample = records
	}

	s.logger.Debug("[summary] %d records from %s, %d countries", summary.TotalRecords, source, len(summary.ByCountry))
	return summary
}

// Print renders the summary and the non-empty fields of the sample records.
// A summary with no Sample prints the overview and coverage tables only.
func (s *SummaryService) Print(w io.Writer, r *models.RunSummary) {
	overview := table.NewWriter()
	overview.SetOutputMirror(w)
	overview.SetTitle("ALIBABA RFQ SCRAPE SUMMARY")
	overview.AppendRows([]table.Row{
		{"Records", r.TotalRecords},
		{"Source", r.Source},
		{"Scraping date", r.ScrapingDate},
	})
	overview.Render()

	if r.TotalRecords == 0 {
		return
	}

	coverage := table.NewWriter()
	coverage.SetOutputMirror(w)
	coverage.SetTitle("Field coverage")
	coverage.AppendHeader(table.Row{"Field", "Filled", "%"})
	for _, col := range models.Columns {
		n := r.FieldsFilled[col]
		coverage.AppendRow(table.Row{col, n, fmt.Sprintf("%.0f", 100*float64(n)/float64(r.TotalRecords))})
	}
	coverage.Render()

	if len(r.ByCountry) > 0 {
		type countryCount struct {
			country string
			count   int
		}
		var counts []countryCount
		for c, n := range r.ByCountry {
			counts = append(counts, countryCount{c, n})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].count != counts[j].count {
				return counts[i].count > counts[j].count
			}
			return counts[i].country < counts[j].country
		})

		countries := table.NewWriter()
		countries.SetOutputMirror(w)
		countries.SetTitle("Records by country")
		for _, cc := range counts {
			countries.AppendRow(table.Row{truncate(cc.country, 28), cc.count})
		}
		countries.Render()
	}

	for i, rec := range r.Sample {
		sample := table.NewWriter()
		sample.SetOutputMirror(w)
		sample.SetTitle(fmt.Sprintf("Entry %d", i+1))
		for j, v := range rec.Row() {
			if v != "" {
				sample.AppendRow(table.Row{models.Columns[j], truncate(v, 60)})
			}
		}
		sample.Render()
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
