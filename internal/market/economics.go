// Package market assesses how market conditions affect the security posture
// of a blockchain network: attack economics, fee pressure, mempool state and
// the ability to rotate cryptographic algorithms.
package market

import (
	"fmt"

	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
	"github.com/khanhnv2901/crowdrisk/internal/shared/validation"
)

// Economic thresholds.
const (
	// RationalAttackRatio is the hourly attack cost to value secured ratio
	// below which renting majority hash power pays off.
	RationalAttackRatio = 0.0001
	LowStakingRatio     = 0.33
	HighStakingRatio    = 0.67
)

// NetworkEconomics describes the cost of securing a network. TotalStaked and
// TotalSupply are only present for proof-of-stake networks; a network with
// staking data may leave Hashrate and HashCost at zero.
type NetworkEconomics struct {
	Name              string   `json:"name" yaml:"name"`
	Hashrate          float64  `json:"hashrate" yaml:"hashrate" validate:"gte=0"`
	HashCost          float64  `json:"hash_cost" yaml:"hash_cost" validate:"gte=0"`
	TotalValueSecured float64  `json:"total_value_secured" yaml:"total_value_secured" validate:"gte=0"`
	TotalStaked       *float64 `json:"total_staked,omitempty" yaml:"total_staked,omitempty" validate:"omitempty,gte=0"`
	TotalSupply       *float64 `json:"total_supply,omitempty" yaml:"total_supply,omitempty" validate:"omitempty,gte=0"`
}

// AttackCostAnalysis holds the computed attack scenarios. Ratios are nil when
// their denominator was not available.
type AttackCostAnalysis struct {
	HourlyCost       float64  `json:"attack_cost_hourly"`
	DailyCost        float64  `json:"attack_cost_daily"`
	CostToValueRatio *float64 `json:"attack_cost_to_value_ratio,omitempty"`
	StakingRatio     *float64 `json:"staking_ratio,omitempty"`
}

// AttackCostResult is the outcome of AnalyzeNetworkSecurityEconomics.
type AttackCostResult struct {
	Network                 string             `json:"network"`
	AttackCostAnalysis      AttackCostAnalysis `json:"attack_cost_analysis"`
	SecurityRecommendations []string           `json:"security_recommendations"`
	Notes                   []string           `json:"notes"`
}

// Insufficient-data markers.
const (
	NoValueSecuredNote = "Insufficient data: total value secured is zero, attack cost to value ratio not computed"
	NoTxValueNote      = "Insufficient data: average transaction value is zero, fee to value ratio not computed"
	NoHashPowerNote    = "No hash power data: proof-of-work attack cost not computed"
)

// AnalyzeNetworkSecurityEconomics compares the cost of renting the network's
// hash power for an hour with the value that hash power secures.
func AnalyzeNetworkSecurityEconomics(network NetworkEconomics) (AttackCostResult, error) {
	if err := validation.Struct(&network); err != nil {
		return AttackCostResult{}, fmt.Errorf("network economics: %w", err)
	}

	proofOfWork := network.Hashrate > 0 && network.HashCost > 0
	proofOfStake := network.TotalStaked != nil && network.TotalSupply != nil &&
		*network.TotalStaked > 0 && *network.TotalSupply > 0
	if !proofOfWork && !proofOfStake {
		return AttackCostResult{}, fmt.Errorf("network economics: %w: hashrate and hash cost must be positive unless staking data is supplied",
			sharedErrors.ErrValidation)
	}

	result := AttackCostResult{
		Network:                 orUnknown(network.Name),
		SecurityRecommendations: []string{},
		Notes:                   []string{},
	}

	if proofOfWork {
		hourly := network.Hashrate * network.HashCost
		result.AttackCostAnalysis.HourlyCost = hourly
		result.AttackCostAnalysis.DailyCost = 24 * hourly

		if network.TotalValueSecured > 0 {
			ratio := hourly / network.TotalValueSecured
			result.AttackCostAnalysis.CostToValueRatio = &ratio
			if ratio < RationalAttackRatio {
				result.SecurityRecommendations = append(result.SecurityRecommendations,
					"CRITICAL: Attack economically rational. Hourly attack cost is negligible compared to the value secured")
			}
		} else {
			result.Notes = append(result.Notes, NoValueSecuredNote)
		}
	} else {
		result.Notes = append(result.Notes, NoHashPowerNote)
	}

	if proofOfStake {
		staking := *network.TotalStaked / *network.TotalSupply
		result.AttackCostAnalysis.StakingRatio = &staking
		switch {
		case staking < LowStakingRatio:
			result.SecurityRecommendations = append(result.SecurityRecommendations,
				"HIGH: Low staking ratio (<33%) increases centralization risk")
		case staking > HighStakingRatio:
			result.SecurityRecommendations = append(result.SecurityRecommendations,
				"High staking ratio (>67%) provides strong economic security")
		default:
			result.SecurityRecommendations = append(result.SecurityRecommendations,
				"Moderate staking ratio. Security depends on validator distribution")
		}
	}

	return result, nil
}

func orUnknown(name string) string {
	if name == "" {
		return "UNKNOWN"
	}
	return name
}
