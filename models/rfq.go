package models

// TimeLayout is the format of RFQ.ScrapingDate.
const TimeLayout = "2006-01-02 15:04:05"

// Columns is the fixed header order of every persisted table.
var Columns = []string{
	"RFQ ID",
	"Title",
	"Buyer Name",
	"Buyer Image",
	"Inquiry Time",
	"Quotes Left",
	"Country",
	"Quantity Required",
	"Email Confirmed",
	"Experienced Buyer",
	"Complete Order via RFQ",
	"Typical Replies",
	"Interactive User",
	"Inquiry URL",
	"Inquiry Date",
	"Scraping Date",
}

// RFQ is one request-for-quote listing. Every field is kept as text so the
// marketplace formatting ("10,000 meters") survives untouched.
type RFQ struct {
	RFQID               string
	Title               string
	BuyerName           string
	BuyerImage          string
	InquiryTime         string
	QuotesLeft          string
	Country             string
	QuantityRequired    string
	EmailConfirmed      string
	ExperiencedBuyer    string
	CompleteOrderViaRFQ string
	TypicalReplies      string
	InteractiveUser     string
	InquiryURL          string
	InquiryDate         string
	ScrapingDate        string
}

// Row returns the record's values in Columns order.
func (r *RFQ) Row() []string {
	return []string{
		r.RFQID,
		r.Title,
		r.BuyerName,
		r.BuyerImage,
		r.InquiryTime,
		r.QuotesLeft,
		r.Country,
		r.QuantityRequired,
		r.EmailConfirmed,
		r.ExperiencedBuyer,
		r.CompleteOrderViaRFQ,
		r.TypicalReplies,
		r.InteractiveUser,
		r.InquiryURL,
		r.InquiryDate,
		r.ScrapingDate,
	}
}

// FromRow builds a record from values in Columns order. Missing trailing
// values are left empty.
func FromRow(row []string) *RFQ {
	v := make([]string, len(Columns))
	copy(v, row)
	return &RFQ{
		RFQID:               v[0],
		Title:               v[1],
		BuyerName:           v[2],
		BuyerImage:          v[3],
		InquiryTime:         v[4],
		QuotesLeft:          v[5],
		Country:             v[6],
		QuantityRequired:    v[7],
		EmailConfirmed:      v[8],
		ExperiencedBuyer:    v[9],
		CompleteOrderViaRFQ: v[10],
		TypicalReplies:      v[11],
		InteractiveUser:     v[12],
		InquiryURL:          v[13],
		InquiryDate:         v[14],
		ScrapingDate:        v[15],
	}
}

// Identifiable reports whether the record carries a title or an RFQ id.
func (r *RFQ) Identifiable() bool {
	return r.Title != "" || r.RFQID != ""
}

// Source names the fetch stage a run's records came from.
type Source string

const (
	SourceStatic  Source = "static"
	SourceDynamic Source = "dynamic"
	SourceDemo    Source = "demo"
	SourceNone    Source = "none"
)

// RunSummary holds the console report computed over one run's records.
type RunSummary struct {
	TotalRecords int
	Source       Source
	ScrapingDate string
	ByCountry    map[string]int
	FieldsFilled map[string]int
	Sample       []*RFQ
}
