package services

import (
	"strings"
	"unicode"

	"alibaba-rfq-scraper/models"
	"alibaba-rfq-scraper/utils"
)

// Normalizer brings records into the fixed persisted schema.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize collapses whitespace in every field, stamps records lacking a
// ScrapingDate with scrapedAt and drops records that have neither a title nor
// an RFQ id. Input records are not modified.
func (n *Normalizer) Normalize(raw []*models.RFQ, scrapedAt string) []*models.RFQ {
	result := make([]*models.RFQ, 0, len(raw))

	for _, r := range raw {
		if r == nil {
			continue
		}

		row := r.Row()
		for i, v := range row {
			row[i] = normaliseText(v)
		}
		rec := models.FromRow(row)

		if !rec.Identifiable() {
			n.logger.Debug("[normalizer] Dropping record without title or RFQ id")
			continue
		}
		if rec.ScrapingDate == "" {
			rec.ScrapingDate = scrapedAt
		}

		result = append(result, rec)
	}

	if dropped := len(raw) - len(result); dropped > 0 {
		n.logger.Warn("[normalizer] Normalized %d → %d records (dropped %d)", len(raw), len(result), dropped)
	}
	return result
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
