package cryptorisk

import (
	"fmt"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
	"github.com/khanhnv2901/crowdrisk/internal/shared/validation"
)

// Crowd risk thresholds.
const (
	LowMarketCapThreshold         = 10_000_000
	LowDevelopmentThreshold       = 100
	ManipulationVolumePerAddress  = 10_000
	InsufficientAddressDataFactor = "Insufficient address data: active address count is zero, volume per address not assessed"
)

// MarketDatum carries the market and adoption indicators of an asset.
// Hashrate and TotalStaked are optional economic-security signals.
type MarketDatum struct {
	Asset           string   `json:"asset" yaml:"asset"`
	MarketCap       float64  `json:"market_cap" yaml:"market_cap" validate:"gte=0"`
	Volume          float64  `json:"volume" yaml:"volume" validate:"gte=0"`
	ActiveAddresses int64    `json:"active_addresses" yaml:"active_addresses" validate:"gte=0"`
	GithubCommits   int64    `json:"github_commits" yaml:"github_commits" validate:"gte=0"`
	Hashrate        *float64 `json:"hashrate,omitempty" yaml:"hashrate,omitempty" validate:"omitempty,gte=0"`
	TotalStaked     *float64 `json:"total_staked,omitempty" yaml:"total_staked,omitempty" validate:"omitempty,gte=0"`
}

// HasEconomicSecuritySignal reports whether the datum carries a positive
// hashrate or staking figure.
func (m MarketDatum) HasEconomicSecuritySignal() bool {
	return (m.Hashrate != nil && *m.Hashrate > 0) || (m.TotalStaked != nil && *m.TotalStaked > 0)
}

// CrowdRiskResult is the outcome of CalculateCrowdRiskScore.
type CrowdRiskResult struct {
	Asset            string        `json:"asset"`
	MarketCapUSD     float64       `json:"market_cap_usd"`
	DailyVolumeUSD   float64       `json:"daily_volume_usd"`
	VolumePerAddress *float64      `json:"volume_per_address,omitempty"`
	CrowdRiskScore   float64       `json:"crowd_risk_score"`
	RiskLevel        scoring.Level `json:"risk_level"`
	RiskFactors      []string      `json:"risk_factors"`
	Recommendations  []string      `json:"recommendations"`
}

var crowdBoundaries = []scoring.Boundary{
	{Threshold: 8, Label: scoring.LevelCritical},
	{Threshold: 5, Label: scoring.LevelHigh},
	{Threshold: 3, Label: scoring.LevelMedium},
	{Threshold: 0, Label: scoring.LevelLow},
}

// CalculateCrowdRiskScore derives a 0-10 risk score from market indicators,
// treating thin markets and low scrutiny as signs of undiscovered weaknesses.
func CalculateCrowdRiskScore(datum MarketDatum) (CrowdRiskResult, error) {
	if err := validation.Struct(&datum); err != nil {
		return CrowdRiskResult{}, fmt.Errorf("market datum: %w", err)
	}

	result := CrowdRiskResult{
		Asset:          datum.Asset,
		MarketCapUSD:   datum.MarketCap,
		DailyVolumeUSD: datum.Volume,
	}

	lowCap := datum.MarketCap < LowMarketCapThreshold
	lowDev := datum.GithubCommits < LowDevelopmentThreshold
	noAddresses := datum.ActiveAddresses <= 0

	suspiciousVolume := false
	if !noAddresses {
		perAddress := datum.Volume / float64(datum.ActiveAddresses)
		result.VolumePerAddress = &perAddress
		suspiciousVolume = perAddress > ManipulationVolumePerAddress
	}

	noEconomicSignal := !datum.HasEconomicSecuritySignal()

	result.CrowdRiskScore = scoring.ComputeScore(0, []scoring.Adjustment{
		scoring.Adjust(3, lowCap),
		scoring.Adjust(2, lowDev),
		scoring.Adjust(2, suspiciousVolume),
		scoring.Adjust(3, noEconomicSignal),
	}, scoring.TenPoint)
	result.RiskLevel = scoring.DeriveLabel(result.CrowdRiskScore, crowdBoundaries)

	result.RiskFactors = scoring.Collect(
		scoring.When(lowCap, "Low market cap (<$10M) suggests limited security auditing"),
		scoring.When(lowDev, "Low development activity may indicate unpatched vulnerabilities"),
		scoring.When(noAddresses, InsufficientAddressDataFactor),
		scoring.When(suspiciousVolume, "High volume per active address may indicate market manipulation"),
		scoring.When(noEconomicSignal, "No economic security signal (hashrate or staking) supplied"),
	)

	high := result.RiskLevel.Rank() >= scoring.LevelHigh.Rank()
	medium := result.RiskLevel == scoring.LevelMedium
	result.Recommendations = scoring.Collect(
		scoring.When(high, "HIGH RISK: Exercise extreme caution with this asset"),
		scoring.When(high, "Verify cryptographic implementation through independent audit"),
		scoring.When(medium, "MEDIUM RISK: Additional due diligence recommended"),
		scoring.When(!high && !medium, "Risk metrics within acceptable ranges"),
	)

	return result, nil
}
