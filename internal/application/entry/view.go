package entry

import "github.com/khanhnv2901/crowdrisk/internal/domain/entry"

// View is the JSON shape of an entry in exports and --format json output
type View struct {
	ID             int64   `json:"entry_id"`
	Cryptocurrency string  `json:"cryptocurrency"`
	RiskLevel      string  `json:"risk_level"`
	Reporter       string  `json:"reporter"`
	ReportDate     string  `json:"report_date"`
	Description    string  `json:"description"`
	MarketCap      float64 `json:"market_cap"`
	Volatility     float64 `json:"volatility_index"`
	Sentiment      *string `json:"crowd_sentiment"`
	RiskScore      float64 `json:"risk_score"`
}

// ToView converts an entry to its serializable form
func ToView(e *entry.Entry) View {
	v := View{
		ID:             e.ID(),
		Cryptocurrency: e.Cryptocurrency(),
		RiskLevel:      string(e.RiskLevel()),
		Reporter:       e.Reporter(),
		ReportDate:     e.ReportDate().Format(entry.DateLayout),
		Description:    e.Description(),
		MarketCap:      e.MarketCap(),
		Volatility:     e.Volatility(),
		RiskScore:      e.Score(),
	}
	if s := e.Sentiment(); s != entry.SentimentUnspecified {
		sentiment := string(s)
		v.Sentiment = &sentiment
	}
	return v
}
