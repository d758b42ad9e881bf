package alibaba

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"alibaba-rfq-scraper/models"
	"alibaba-rfq-scraper/utils"
)

// Field fallback rules. Each list is evaluated in order and the first
// selector whose first match has non-empty text wins.
var (
	titleSelectors    = []string{"h1", "h2", "h3", "h4", ".title", "[class*='title']", "a[href*='rfq']"}
	buyerSelectors    = []string{".buyer", "[class*='buyer']", "[class*='user']", "[class*='supplier']"}
	timeSelectors     = []string{".time", "[class*='time']", "[class*='date']", "time"}
	quoteSelectors    = []string{".quote", "[class*='quote']", "[class*='reply']"}
	quantitySelectors = []string{".quantity", "[class*='quantity']", "[class*='qty']"}
	countrySelectors  = []string{".country", "[class*='country']", "[class*='location']"}
)

var (
	rfqIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)rfq[_-]?id[_-]?(\d+)`),
		regexp.MustCompile(`(?i)id[_-]?(\d+)`),
		regexp.MustCompile(`(?i)rfq[_-]?(\d+)`),
		regexp.MustCompile(`(\d{6,})`),
	}
	digitsRegexp = regexp.MustCompile(`\d+`)
)

var (
	avatarHints      = []string{"avatar", "user", "buyer"}
	emailVerifyHints = []string{"verified", "confirmed"}
	experiencedHints = []string{"experienced", "expert", "premium"}
	interactiveHints = []string{"interactive", "active", "responsive"}
)

const flagYes = "Yes"

// Extractor turns listing blocks into RFQ records.
type Extractor struct {
	base   *url.URL
	logger *utils.Logger
}

// NewExtractor creates an Extractor resolving relative links against baseURL.
func NewExtractor(baseURL string, logger *utils.Logger) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("extract: parse base url: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("extract: base url %q is not absolute", baseURL)
	}
	return &Extractor{base: base, logger: logger}, nil
}

// ExtractAll locates the candidate blocks of doc and extracts one record per
// block, skipping blocks that yield nothing. A failing block never stops the
// remaining ones.
func (e *Extractor) ExtractAll(doc *goquery.Document, scrapedAt string) []*models.RFQ {
	blocks, via := locateBlocks(doc)
	if blocks.Length() == 0 {
		e.logger.Warn("[extract] No candidate blocks found")
		return nil
	}
	e.logger.Info("[extract] Processing %d candidate blocks (matched by %s)", blocks.Length(), via)

	records := make([]*models.RFQ, 0, blocks.Length())
	blocks.Each(func(i int, node *goquery.Selection) {
		rec, err := e.safeExtract(node, scrapedAt)
		if err != nil {
			e.logger.Warn("[extract] Block %d skipped: %v", i, err)
			return
		}
		if rec != nil {
			records = append(records, rec)
		}
	})

	e.logger.Info("[extract] Retained %d of %d blocks", len(records), blocks.Length())
	return records
}

func (e *Extractor) safeExtract(node *goquery.Selection, scrapedAt string) (rec *models.RFQ, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	rec, _ = e.Extract(node, scrapedAt)
	return rec, nil
}

// Extract builds a record from one listing block. It reports false when the
// block has neither a title nor an RFQ id.
func (e *Extractor) Extract(node *goquery.Selection, scrapedAt string) (*models.RFQ, bool) {
	rec := &models.RFQ{ScrapingDate: scrapedAt}

	rec.Title = firstText(node, titleSelectors)
	rec.RFQID, rec.InquiryURL = e.findRFQID(node)
	rec.BuyerName = firstText(node, buyerSelectors)
	rec.BuyerImage = e.findBuyerImage(node)

	// Inquiry time and date share one source on the listings page.
	rec.InquiryTime = firstText(node, timeSelectors)
	rec.InquiryDate = rec.InquiryTime

	if quote := firstMatch(node, quoteSelectors); quote != nil {
		rec.QuotesLeft = digitsRegexp.FindString(strippedText(quote))
	}
	rec.QuantityRequired = firstText(node, quantitySelectors)
	rec.Country = firstText(node, countrySelectors)

	all := strings.ToLower(node.Text())
	if strings.Contains(all, "email") && containsAny(all, emailVerifyHints) {
		rec.EmailConfirmed = flagYes
	}
	if containsAny(all, experiencedHints) {
		rec.ExperiencedBuyer = flagYes
	}
	if containsAny(all, interactiveHints) {
		rec.InteractiveUser = flagYes
	}

	if !rec.Identifiable() {
		return nil, false
	}
	return rec, true
}

// findRFQID scans anchor hrefs in order, trying every id pattern on each
// href before moving on to the next one.
func (e *Extractor) findRFQID(node *goquery.Selection) (id, link string) {
	node.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return true
		}
		for _, re := range rfqIDPatterns {
			m := re.FindStringSubmatch(href)
			if m == nil {
				continue
			}
			id, link = m[1], e.resolve(href)
			return false
		}
		return true
	})
	return id, link
}

func (e *Extractor) findBuyerImage(node *goquery.Selection) string {
	var found string
	node.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := strings.TrimSpace(img.AttrOr("src", ""))
		if src == "" {
			src = strings.TrimSpace(img.AttrOr("data-src", ""))
		}
		if src == "" || !containsAny(strings.ToLower(src), avatarHints) {
			return true
		}
		found = e.resolve(src)
		return false
	})
	return found
}

// resolve makes ref absolute against the base URL. A ref that does not parse
// as a URL is joined textually so the link is never lost.
func (e *Extractor) resolve(ref string) string {
	if u, err := url.Parse(ref); err == nil {
		return e.base.ResolveReference(u).String()
	}

	switch {
	case strings.Contains(ref, "://"):
		return ref
	case strings.HasPrefix(ref, "//"):
		return e.base.Scheme + ":" + ref
	}
	origin := e.base.Scheme + "://" + e.base.Host
	if strings.HasPrefix(ref, "/") {
		return origin + ref
	}
	dir := e.base.Path[:strings.LastIndex(e.base.Path, "/")+1]
	if dir == "" {
		dir = "/"
	}
	return origin + dir + ref
}

// firstMatch returns the first element matched by the earliest selector that
// matches anything.
func firstMatch(node *goquery.Selection, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		if el := node.Find(selector).First(); el.Length() > 0 {
			return el
		}
	}
	return nil
}

func firstText(node *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		el := node.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		if text := cleanText(el.Text()); text != "" {
			return text
		}
	}
	return ""
}

// strippedText concatenates the trimmed text nodes under sel with no
// separator, so "<b>1</b> <b>5</b>" reads "15".
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(strings.TrimSpace(c.Text()))
			return
		}
		b.WriteString(strippedText(c))
	})
	return b.String()
}

// cleanText collapses all whitespace runs, non-breaking spaces included.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
