package entry

import (
	"fmt"
	"strings"
	"time"

	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
)

// DateLayout is the calendar-date format used for report dates.
const DateLayout = "2006-01-02"

// RiskLevel is the severity a reporter assigns to an entry
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevels lists the levels in ascending severity.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// ParseRiskLevel accepts a level name in any case
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := riskLevelBase[level]; !ok {
		return "", fmt.Errorf("%w: %q", sharedErrors.ErrInvalidRiskLevel, s)
	}
	return level, nil
}

// Sentiment is the crowd mood attached to an entry. The zero value means
// no sentiment was reported.
type Sentiment string

const (
	SentimentUnspecified Sentiment = ""
	SentimentBullish     Sentiment = "bullish"
	SentimentNeutral     Sentiment = "neutral"
	SentimentBearish     Sentiment = "bearish"
)

// ParseSentiment accepts a sentiment name in any case; an empty string is
// SentimentUnspecified.
func ParseSentiment(s string) (Sentiment, error) {
	sentiment := Sentiment(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sentimentAdjustment[sentiment]; !ok {
		return "", fmt.Errorf("%w: %q", sharedErrors.ErrInvalidSentiment, s)
	}
	return sentiment, nil
}

// Entry is a crowd-reported risk assessment of a single cryptocurrency.
// It serves as an aggregate root; its score is derived, never assigned.
type Entry struct {
	id             int64
	cryptocurrency string
	riskLevel      RiskLevel
	reporter       string
	reportDate     time.Time
	description    string
	marketCap      float64
	volatility     float64
	sentiment      Sentiment
	score          float64
}

// Params carries the reporter-supplied fields of a new entry
type Params struct {
	Cryptocurrency string
	RiskLevel      RiskLevel
	Reporter       string
	ReportDate     time.Time
	Description    string
	MarketCap      float64
	Volatility     float64
	Sentiment      Sentiment
}

// New creates a new entry with validation and computes its risk score
func New(p Params) (*Entry, error) {
	cryptocurrency := strings.TrimSpace(p.Cryptocurrency)
	if cryptocurrency == "" {
		return nil, sharedErrors.ErrEmptyCryptocurrency
	}
	reporter := strings.TrimSpace(p.Reporter)
	if reporter == "" {
		return nil, sharedErrors.ErrEmptyReporter
	}
	if _, ok := riskLevelBase[p.RiskLevel]; !ok {
		return nil, fmt.Errorf("%w: %q", sharedErrors.ErrInvalidRiskLevel, p.RiskLevel)
	}
	if _, ok := sentimentAdjustment[p.Sentiment]; !ok {
		return nil, fmt.Errorf("%w: %q", sharedErrors.ErrInvalidSentiment, p.Sentiment)
	}
	if p.Volatility < 0 || p.Volatility > 100 {
		return nil, sharedErrors.ErrVolatilityOutOfRange
	}
	if p.MarketCap < 0 {
		return nil, fmt.Errorf("%w: market cap cannot be negative", sharedErrors.ErrInvalidInput)
	}

	reportDate := p.ReportDate
	if reportDate.IsZero() {
		reportDate = now().UTC()
	}

	e := &Entry{
		cryptocurrency: cryptocurrency,
		riskLevel:      p.RiskLevel,
		reporter:       reporter,
		reportDate:     truncateToDate(reportDate),
		description:    p.Description,
		marketCap:      p.MarketCap,
		volatility:     p.Volatility,
		sentiment:      p.Sentiment,
	}
	e.Rescore()
	return e, nil
}

// Reconstruct creates an entry from persisted data (for repository use).
// The stored score is taken as-is; writers call Rescore before persisting.
func Reconstruct(id int64, p Params, score float64) *Entry {
	return &Entry{
		id:             id,
		cryptocurrency: p.Cryptocurrency,
		riskLevel:      p.RiskLevel,
		reporter:       p.Reporter,
		reportDate:     truncateToDate(p.ReportDate),
		description:    p.Description,
		marketCap:      p.MarketCap,
		volatility:     p.Volatility,
		sentiment:      p.Sentiment,
		score:          score,
	}
}

// Rescore recomputes the risk score from the entry's level, volatility and
// sentiment.
func (e *Entry) Rescore() {
	e.score = CalculateScore(e.riskLevel, e.volatility, e.sentiment)
}

// WithID returns a copy of the entry carrying the store-assigned id.
func (e *Entry) WithID(id int64) *Entry {
	cp := *e
	cp.id = id
	return &cp
}

// Getters

func (e *Entry) ID() int64 {
	return e.id
}

func (e *Entry) Cryptocurrency() string {
	return e.cryptocurrency
}

func (e *Entry) RiskLevel() RiskLevel {
	return e.riskLevel
}

func (e *Entry) Reporter() string {
	return e.reporter
}

func (e *Entry) ReportDate() time.Time {
	return e.reportDate
}

func (e *Entry) Description() string {
	return e.description
}

func (e *Entry) MarketCap() float64 {
	return e.marketCap
}

func (e *Entry) Volatility() float64 {
	return e.volatility
}

func (e *Entry) Sentiment() Sentiment {
	return e.sentiment
}

func (e *Entry) Score() float64 {
	return e.score
}

// now is replaced in tests.
var now = time.Now

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
