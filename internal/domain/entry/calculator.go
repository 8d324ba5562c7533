package entry

import (
	"github.com/shopspring/decimal"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

// Score weights.
const (
	VolatilityWeight = 0.3
	MaxVolatilityPts = 30
)

var riskLevelBase = map[RiskLevel]float64{
	RiskLow:      20,
	RiskMedium:   45,
	RiskHigh:     70,
	RiskCritical: 90,
}

var sentimentAdjustment = map[Sentiment]float64{
	SentimentUnspecified: 0,
	SentimentBullish:     -10,
	SentimentNeutral:     0,
	SentimentBearish:     10,
}

// CalculateScore derives the 0-100 entry score, rounded to two decimals.
func CalculateScore(level RiskLevel, volatility float64, sentiment Sentiment) float64 {
	volatilityPts := scoring.Clamp(volatility*VolatilityWeight, 0, MaxVolatilityPts)
	raw := scoring.ComputeScore(riskLevelBase[level], []scoring.Adjustment{
		scoring.Adjust(volatilityPts, true),
		scoring.Adjust(sentimentAdjustment[sentiment], true),
	}, scoring.Percent)
	return round2(raw)
}

// AverageScore returns the mean score of entries rounded to two decimals, or
// zero for an empty slice.
func AverageScore(entries []*Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Score()))
	}
	avg, _ := total.Div(decimal.NewFromInt(int64(len(entries)))).Round(2).Float64()
	return avg
}

func round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
