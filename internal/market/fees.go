package market

import (
	"fmt"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
	"github.com/khanhnv2901/crowdrisk/internal/shared/validation"
)

// Fee-to-value cutoffs.
const (
	LowFeeRatio  = 0.0001
	HighFeeRatio = 0.01
)

// CongestionLevel grades the absolute average fee.
type CongestionLevel string

const (
	CongestionLow      CongestionLevel = "LOW"
	CongestionModerate CongestionLevel = "MODERATE"
	CongestionHigh     CongestionLevel = "HIGH"
	CongestionCritical CongestionLevel = "CRITICAL"
)

// FeeData is a snapshot of a network's fee market.
type FeeData struct {
	Network       string  `json:"network" yaml:"network"`
	AvgFeeUSD     float64 `json:"avg_fee_usd" yaml:"avg_fee_usd" validate:"gte=0"`
	AvgTxValueUSD float64 `json:"avg_tx_value_usd" yaml:"avg_tx_value_usd" validate:"gte=0"`
}

// FeeMarketResult is the outcome of AnalyzeFeeMarketSecurity.
type FeeMarketResult struct {
	Network         string          `json:"network"`
	CurrentFeeUSD   float64         `json:"current_fee_usd"`
	FeeToValueRatio *float64        `json:"fee_to_value_ratio,omitempty"`
	CongestionLevel CongestionLevel `json:"congestion_level"`
	Findings        []string        `json:"findings"`
	Implications    []string        `json:"security_implications"`
	Notes           []string        `json:"notes"`
}

// AnalyzeFeeMarketSecurity grades the fee market. The fee-to-value findings
// are mutually exclusive; the congestion implications depend on the absolute
// fee only.
func AnalyzeFeeMarketSecurity(fees FeeData) (FeeMarketResult, error) {
	if err := validation.Struct(&fees); err != nil {
		return FeeMarketResult{}, fmt.Errorf("fee data: %w", err)
	}

	result := FeeMarketResult{
		Network:       orUnknown(fees.Network),
		CurrentFeeUSD: fees.AvgFeeUSD,
		Findings:      []string{},
		Notes:         []string{},
	}

	if fees.AvgTxValueUSD > 0 {
		ratio := fees.AvgFeeUSD / fees.AvgTxValueUSD
		result.FeeToValueRatio = &ratio
		result.Findings = scoring.Collect(
			scoring.When(ratio < LowFeeRatio,
				"Low fee-to-value ratio: cheap transactions enable dust attacks and spam congestion"),
			scoring.When(ratio > HighFeeRatio,
				"High fee-to-value ratio: fees may price out legitimate users"),
		)
	} else {
		result.Notes = append(result.Notes, NoTxValueNote)
	}

	result.CongestionLevel, result.Implications = congestion(fees.AvgFeeUSD)
	return result, nil
}

func congestion(fee float64) (CongestionLevel, []string) {
	switch {
	case fee < 0.01:
		return CongestionLow, []string{
			"Very low fees enable dust attacks and spam transactions",
			"Consider implementing rate limiting or minimum relay fees",
		}
	case fee < 1:
		return CongestionModerate, []string{
			"Moderate fees provide reasonable spam protection",
		}
	case fee < 10:
		return CongestionHigh, []string{
			"High fees may price out legitimate users",
			"Monitor for layer-2 scaling solutions",
		}
	default:
		return CongestionCritical, []string{
			"CRITICAL: Extremely high fees indicate network congestion",
			"Network may be under spam attack or needs scaling urgently",
		}
	}
}
