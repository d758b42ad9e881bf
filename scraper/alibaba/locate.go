package alibaba

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxBlocks bounds how many candidate blocks a document can yield.
const MaxBlocks = 50

// blockSelectors are tried in order; the first one with any match wins and
// results are never merged across selectors.
var blockSelectors = []string{
	"[class*='rfq-item']",
	"[class*='item-card']",
	"[class*='rfq-card']",
	"[class*='list-item']",
	"[class*='search-item']",
	".item",
	".card",
	"li[class*='item']",
	"div[class*='item']",
	"tr[class*='item']",
}

const keywordScanSelector = "div[class], li[class], tr[class]"

var blockKeywords = []string{"rfq", "item", "card", "list", "search"}

// LocateBlocks returns the candidate listing blocks of doc in document order,
// at most MaxBlocks of them.
func LocateBlocks(doc *goquery.Document) *goquery.Selection {
	blocks, _ := locateBlocks(doc)
	return blocks
}

// locateBlocks also reports which strategy produced the blocks.
func locateBlocks(doc *goquery.Document) (*goquery.Selection, string) {
	for _, selector := range blockSelectors {
		if found := doc.Find(selector); found.Length() > 0 {
			return truncate(found), selector
		}
	}

	found := doc.Find(keywordScanSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return containsAny(strings.ToLower(class), blockKeywords)
	})
	return truncate(found), "keyword-scan"
}

func truncate(s *goquery.Selection) *goquery.Selection {
	if s.Length() > MaxBlocks {
		return s.Slice(0, MaxBlocks)
	}
	return s
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
