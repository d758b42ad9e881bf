package alibaba

import "alibaba-rfq-scraper/models"

const demoBuyerImage = "https://s.alibaba.com/img/buyer/default_buyer.png"

// DemoRecords returns the fixed sample dataset used when live scraping is
// unavailable. Only ScrapingDate depends on the argument; every call builds
// fresh records so callers may mutate them.
func DemoRecords(scrapedAt string) []*models.RFQ {
	return []*models.RFQ{
		{
			RFQID:               "RFQ001234",
			Title:               "High Quality LED Strip Lights 5050 SMD",
			BuyerName:           "Ahmed Electronics Trading LLC",
			BuyerImage:          demoBuyerImage,
			InquiryTime:         "3 hours ago",
			QuotesLeft:          "12",
			Country:             "UAE",
			QuantityRequired:    "10,000 meters",
			EmailConfirmed:      "Yes",
			ExperiencedBuyer:    "Yes",
			CompleteOrderViaRFQ: "Yes",
			TypicalReplies:      "4 hours",
			InteractiveUser:     "Yes",
			InquiryURL:          demoDetailURL("RFQ001234"),
			InquiryDate:         "2024-03-15",
			ScrapingDate:        scrapedAt,
		},
		{
			RFQID:               "RFQ005678",
			Title:               "Stainless Steel Kitchen Sink 304 Grade",
			BuyerName:           "Dubai Construction Materials",
			BuyerImage:          demoBuyerImage,
			InquiryTime:         "1 day ago",
			QuotesLeft:          "8",
			Country:             "UAE",
			QuantityRequired:    "500 pieces",
			EmailConfirmed:      "Yes",
			ExperiencedBuyer:    "No",
			CompleteOrderViaRFQ: "Yes",
			TypicalReplies:      "24 hours",
			InteractiveUser:     "Yes",
			InquiryURL:          demoDetailURL("RFQ005678"),
			InquiryDate:         "2024-03-14",
			ScrapingDate:        scrapedAt,
		},
		{
			RFQID:               "RFQ009012",
			Title:               "Wireless Bluetooth Headphones with Noise Cancellation",
			BuyerName:           "Tech Solutions UAE",
			BuyerImage:          demoBuyerImage,
			InquiryTime:         "2 days ago",
			QuotesLeft:          "15",
			Country:             "UAE",
			QuantityRequired:    "2,000 pieces",
			EmailConfirmed:      "Yes",
			ExperiencedBuyer:    "Yes",
			CompleteOrderViaRFQ: "Yes",
			TypicalReplies:      "12 hours",
			InteractiveUser:     "Yes",
			InquiryURL:          demoDetailURL("RFQ009012"),
			InquiryDate:         "2024-03-13",
			ScrapingDate:        scrapedAt,
		},
		{
			RFQID:               "RFQ003456",
			Title:               "Solar Panel 300W Monocrystalline for Residential Use",
			BuyerName:           "Green Energy Emirates",
			BuyerImage:          demoBuyerImage,
			InquiryTime:         "5 hours ago",
			QuotesLeft:          "6",
			Country:             "UAE",
			QuantityRequired:    "1,000 pieces",
			EmailConfirmed:      "Yes",
			ExperiencedBuyer:    "Yes",
			CompleteOrderViaRFQ: "Yes",
			TypicalReplies:      "6 hours",
			InteractiveUser:     "Yes",
			InquiryURL:          demoDetailURL("RFQ003456"),
			InquiryDate:         "2024-03-15",
			ScrapingDate:        scrapedAt,
		},
		{
			RFQID:               "RFQ007890",
			Title:               "Industrial Grade Aluminum Sheets 6061-T6",
			BuyerName:           "Metal Works Trading",
			BuyerImage:          demoBuyerImage,
			InquiryTime:         "1 day ago",
			QuotesLeft:          "10",
			Country:             "UAE",
			QuantityRequired:    "50 tons",
			EmailConfirmed:      "No",
			ExperiencedBuyer:    "Yes",
			CompleteOrderViaRFQ: "Yes",
			TypicalReplies:      "48 hours",
			InteractiveUser:     "No",
			InquiryURL:          demoDetailURL("RFQ007890"),
			InquiryDate:         "2024-03-14",
			ScrapingDate:        scrapedAt,
		},
	}
}

func demoDetailURL(id string) string {
	return "https://sourcing.alibaba.com/rfq/rfq_detail.htm?rfqId=" + id
}
