package entry

import (
	"errors"
	"testing"
	"time"

	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
)

func validParams() Params {
	return Params{
		Cryptocurrency: "Bitcoin",
		RiskLevel:      RiskHigh,
		Reporter:       "alice",
		ReportDate:     time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
		Description:    "exchange outage",
		MarketCap:      1.2e12,
		Volatility:     25.5,
		Sentiment:      SentimentBearish,
	}
}

func TestNew_ComputesScore(t *testing.T) {
	e, err := New(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Score() != 87.65 {
		t.Fatalf("expected score 87.65, got %v", e.Score())
	}
	if e.ID() != 0 {
		t.Fatalf("new entries have no id, got %d", e.ID())
	}
	if got := e.ReportDate().Format(DateLayout); got != "2024-03-15" {
		t.Fatalf("expected date truncated to 2024-03-15, got %s", got)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{name: "empty cryptocurrency", mutate: func(p *Params) { p.Cryptocurrency = "  " }, want: sharedErrors.ErrEmptyCryptocurrency},
		{name: "empty reporter", mutate: func(p *Params) { p.Reporter = "" }, want: sharedErrors.ErrEmptyReporter},
		{name: "bad level", mutate: func(p *Params) { p.RiskLevel = "extreme" }, want: sharedErrors.ErrInvalidRiskLevel},
		{name: "bad sentiment", mutate: func(p *Params) { p.Sentiment = "euphoric" }, want: sharedErrors.ErrInvalidSentiment},
		{name: "negative volatility", mutate: func(p *Params) { p.Volatility = -1 }, want: sharedErrors.ErrVolatilityOutOfRange},
		{name: "volatility above 100", mutate: func(p *Params) { p.Volatility = 100.5 }, want: sharedErrors.ErrVolatilityOutOfRange},
		{name: "negative market cap", mutate: func(p *Params) { p.MarketCap = -1 }, want: sharedErrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := New(p)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNew_DefaultsReportDate(t *testing.T) {
	p := validParams()
	p.ReportDate = time.Time{}
	e, err := New(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ReportDate().IsZero() {
		t.Fatal("report date should default to today")
	}
}

func TestNew_DefaultReportDateIsUTC(t *testing.T) {
	t.Cleanup(func() { now = time.Now })
	// 23:30 at UTC-5 is already the next day in UTC.
	now = func() time.Time {
		return time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	}

	p := validParams()
	p.ReportDate = time.Time{}
	e, err := New(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.ReportDate().Format(DateLayout); got != "2024-03-02" {
		t.Fatalf("expected UTC date 2024-03-02, got %s", got)
	}
	if e.ReportDate().Location() != time.UTC {
		t.Fatalf("expected UTC location, got %s", e.ReportDate().Location())
	}
}

func TestReconstruct_RescoreIgnoresStoredScore(t *testing.T) {
	e := Reconstruct(7, validParams(), 1.5)
	if e.Score() != 1.5 {
		t.Fatalf("reconstruct keeps the stored score, got %v", e.Score())
	}
	e.Rescore()
	if e.Score() != 87.65 {
		t.Fatalf("expected rescored 87.65, got %v", e.Score())
	}
	if e.ID() != 7 {
		t.Fatalf("expected id 7, got %d", e.ID())
	}
}

func TestWithID_Copies(t *testing.T) {
	e, _ := New(validParams())
	stored := e.WithID(42)
	if stored.ID() != 42 || e.ID() != 0 {
		t.Fatalf("WithID must not mutate the receiver: %d / %d", stored.ID(), e.ID())
	}
}

func TestParseRiskLevel(t *testing.T) {
	for _, in := range []string{"low", "MEDIUM", " High ", "critical"} {
		if _, err := ParseRiskLevel(in); err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
		}
	}
	if _, err := ParseRiskLevel("severe"); !errors.Is(err, sharedErrors.ErrInvalidRiskLevel) {
		t.Errorf("expected ErrInvalidRiskLevel, got %v", err)
	}
}

func TestParseSentiment(t *testing.T) {
	tests := map[string]Sentiment{
		"":        SentimentUnspecified,
		"Bullish": SentimentBullish,
		"neutral": SentimentNeutral,
		"BEARISH": SentimentBearish,
	}
	for in, want := range tests {
		got, err := ParseSentiment(in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
	if _, err := ParseSentiment("panic"); !errors.Is(err, sharedErrors.ErrInvalidSentiment) {
		t.Errorf("expected ErrInvalidSentiment, got %v", err)
	}
}
